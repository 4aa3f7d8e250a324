package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/scoutlens/scoutlens/internal/domain/comparison"
	"github.com/scoutlens/scoutlens/internal/domain/player"
	"github.com/scoutlens/scoutlens/internal/domain/scouting"
	"github.com/scoutlens/scoutlens/internal/domain/valuation"
)

// MarketValueReport is the valuation estimate plus its display form.
type MarketValueReport struct {
	valuation.Estimate
	Formatted string `json:"formatted"`
}

// ComparisonResult is the full two-player comparison sheet.
type ComparisonResult struct {
	Player1      player.Player                `json:"player1"`
	Player2      player.Player                `json:"player2"`
	Metrics      []comparison.Metric          `json:"metrics"`
	Summary      comparison.Summary           `json:"summary"`
	MarketValues map[string]MarketValueReport `json:"marketValues"`
}

// ComparisonService compares players and estimates market values.
type ComparisonService struct {
	playerRepo player.Repository
	valuation  valuation.Config
	now        func() time.Time
}

func NewComparisonService(playerRepo player.Repository) *ComparisonService {
	return &ComparisonService{
		playerRepo: playerRepo,
		valuation:  valuation.DefaultConfig(),
		now:        time.Now,
	}
}

// MarketValue estimates one player's transfer value.
func (s *ComparisonService) MarketValue(ctx context.Context, name string) (player.Player, MarketValueReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ComparisonService.MarketValue")
	defer span.End()

	p, err := s.resolvePlayer(ctx, name)
	if err != nil {
		return player.Player{}, MarketValueReport{}, err
	}

	return p, s.estimate(p), nil
}

// Compare builds the metric sheet for two players, each ranked against
// their own positional cohort, plus both market values.
func (s *ComparisonService) Compare(ctx context.Context, name1, name2 string) (ComparisonResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ComparisonService.Compare")
	defer span.End()

	p1, err := s.resolvePlayer(ctx, name1)
	if err != nil {
		return ComparisonResult{}, err
	}
	p2, err := s.resolvePlayer(ctx, name2)
	if err != nil {
		return ComparisonResult{}, err
	}

	cohort1, err := s.playerRepo.Cohort(ctx, p1.PrimaryPosition(), scouting.CohortMinMinutes)
	if err != nil {
		return ComparisonResult{}, fmt.Errorf("load cohort: %w", err)
	}
	cohort2, err := s.playerRepo.Cohort(ctx, p2.PrimaryPosition(), scouting.CohortMinMinutes)
	if err != nil {
		return ComparisonResult{}, fmt.Errorf("load cohort: %w", err)
	}

	metrics := comparison.Compare(p1, p2, cohort1, cohort2)

	return ComparisonResult{
		Player1: p1,
		Player2: p2,
		Metrics: metrics,
		Summary: comparison.Summarize(metrics),
		MarketValues: map[string]MarketValueReport{
			"player1": s.estimate(p1),
			"player2": s.estimate(p2),
		},
	}, nil
}

func (s *ComparisonService) estimate(p player.Player) MarketValueReport {
	est := valuation.EstimateValue(p, s.valuation, s.now())
	return MarketValueReport{
		Estimate:  est,
		Formatted: valuation.Format(est.Value),
	}
}

func (s *ComparisonService) resolvePlayer(ctx context.Context, name string) (player.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	p, found, err := s.playerRepo.FindByName(ctx, name)
	if err != nil {
		return player.Player{}, fmt.Errorf("find player by name: %w", err)
	}
	if !found {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, name)
	}
	return p, nil
}
