package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/scoutlens/scoutlens/internal/platform/logging"
	"github.com/scoutlens/scoutlens/internal/usecase"
)

type Handler struct {
	playerService     *usecase.PlayerService
	analysisService   *usecase.AnalysisService
	comparisonService *usecase.ComparisonService
	similarityService *usecase.SimilarityService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	analysisService *usecase.AnalysisService,
	comparisonService *usecase.ComparisonService,
	similarityService *usecase.SimilarityService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:     playerService,
		analysisService:   analysisService,
		comparisonService: comparisonService,
		similarityService: similarityService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]any{"success": true, "status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type searchRequest struct {
	Query string `validate:"required"`
}

type playerNameRequest struct {
	Name string `validate:"required"`
}

// queryLimit parses an optional positive integer query parameter,
// falling back when absent or unusable.
func queryLimit(r *http.Request, key string, fallback int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
