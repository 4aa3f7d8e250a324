package app

import (
	"fmt"
	"net/http"

	"github.com/scoutlens/scoutlens/internal/config"
	"github.com/scoutlens/scoutlens/internal/infrastructure/repository/csvfile"
	"github.com/scoutlens/scoutlens/internal/interfaces/httpapi"
	"github.com/scoutlens/scoutlens/internal/platform/logging"
	"github.com/scoutlens/scoutlens/internal/platform/resilience"
	"github.com/scoutlens/scoutlens/internal/usecase"
)

// NewHTTPServer wires the CSV-backed repository, the services and the
// HTTP surface. The player table is loaded lazily on first access, so
// construction never touches the filesystem.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	playerRepo := csvfile.NewPlayerRepository(csvfile.Config{
		Path:               cfg.PlayersCSVPath,
		CohortTTL:          cfg.CacheTTL,
		WarmupWorkers:      cfg.DatasetWarmupWorkers,
		DisableCohortCache: !cfg.CacheEnabled,
		Breaker:            resilience.DefaultCircuitBreakerConfig(),
		Logger:             logger,
	})

	handler := httpapi.NewHandler(
		usecase.NewPlayerService(playerRepo),
		usecase.NewAnalysisService(playerRepo),
		usecase.NewComparisonService(playerRepo),
		usecase.NewSimilarityService(playerRepo),
		logger,
	)

	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
