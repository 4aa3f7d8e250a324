package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/scoutlens/scoutlens/internal/domain/pitchmap"
	"github.com/scoutlens/scoutlens/internal/domain/player"
	"github.com/scoutlens/scoutlens/internal/domain/scouting"
)

// QuickStats is the per-match summary block attached to an analysis.
type QuickStats struct {
	GoalsPerGame   string  `json:"goalsPerGame"`
	AssistsPerGame string  `json:"assistsPerGame"`
	MinutesPlayed  float64 `json:"minutesPlayed"`
	Appearances    float64 `json:"appearances"`
	YellowCards    float64 `json:"yellowCards"`
	RedCards       float64 `json:"redCards"`
}

// Analysis is the full scouting profile for one player.
type Analysis struct {
	Player        player.Player       `json:"player"`
	Percentiles   map[string]int      `json:"percentiles"`
	Strengths     []string            `json:"strengths"`
	Weaknesses    []string            `json:"weaknesses"`
	PlayingStyle  string              `json:"playingStyle"`
	OverallRating int                 `json:"overallRating"`
	Progression   scouting.Progression `json:"progression"`
	Stats         QuickStats          `json:"stats"`
}

// WeaknessReport is the threshold-based weakness detection result.
type WeaknessReport struct {
	Player      player.Player `json:"player"`
	Position    string        `json:"position"`
	Weaknesses  []string      `json:"weaknesses"`
	Suggestions []string      `json:"suggestions"`
}

// HeatmapBundle groups the three synthesized zone sets.
type HeatmapBundle struct {
	General   []pitchmap.Point `json:"general"`
	Defensive []pitchmap.Point `json:"defensive"`
	Offensive []pitchmap.Point `json:"offensive"`
}

// PassMapReport pairs the synthesized lanes with the passing totals that
// scale them.
type PassMapReport struct {
	PassMap []pitchmap.PassEdge `json:"passMap"`
	Stats   PassStats           `json:"stats"`
}

type PassStats struct {
	TotalPasses       float64 `json:"totalPasses"`
	CompletedPasses   float64 `json:"completedPasses"`
	SuccessRate       float64 `json:"successRate"`
	ProgressivePasses float64 `json:"progressivePasses"`
}

// AnalysisService computes scouting profiles on top of the player table.
type AnalysisService struct {
	playerRepo player.Repository
}

func NewAnalysisService(playerRepo player.Repository) *AnalysisService {
	return &AnalysisService{playerRepo: playerRepo}
}

func (s *AnalysisService) cohortFor(ctx context.Context, p player.Player) ([]player.Player, error) {
	cohort, err := s.playerRepo.Cohort(ctx, p.PrimaryPosition(), scouting.CohortMinMinutes)
	if err != nil {
		return nil, fmt.Errorf("load cohort: %w", err)
	}
	return cohort, nil
}

// AnalyzePlayer builds the percentile profile, style label, rating,
// progression outlook and quick stats for a player.
func (s *AnalysisService) AnalyzePlayer(ctx context.Context, name string) (Analysis, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalysisService.AnalyzePlayer")
	defer span.End()

	p, err := s.resolvePlayer(ctx, name)
	if err != nil {
		return Analysis{}, err
	}

	cohort, err := s.cohortFor(ctx, p)
	if err != nil {
		return Analysis{}, err
	}

	percentiles := scouting.Percentiles(p, cohort)

	return Analysis{
		Player:        p,
		Percentiles:   percentiles,
		Strengths:     scouting.Strengths(percentiles),
		Weaknesses:    scouting.Weaknesses(percentiles),
		PlayingStyle:  scouting.PlayingStyle(percentiles),
		OverallRating: scouting.OverallRating(percentiles),
		Progression:   scouting.AnalyzeProgression(p, percentiles),
		Stats:         quickStats(p),
	}, nil
}

// PlayerWeaknesses runs the absolute-threshold weakness detection and its
// improvement suggestions.
func (s *AnalysisService) PlayerWeaknesses(ctx context.Context, name string) (WeaknessReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalysisService.PlayerWeaknesses")
	defer span.End()

	p, err := s.resolvePlayer(ctx, name)
	if err != nil {
		return WeaknessReport{}, err
	}

	weaknesses := scouting.DetectWeaknesses(p)
	messages := make([]string, len(weaknesses))
	for i, w := range weaknesses {
		messages[i] = w.Message
	}

	return WeaknessReport{
		Player:      p,
		Position:    p.Position,
		Weaknesses:  messages,
		Suggestions: scouting.ImprovementSuggestions(p, weaknesses),
	}, nil
}

// Heatmap synthesizes the three zone sets for a player.
func (s *AnalysisService) Heatmap(ctx context.Context, name string) (player.Player, HeatmapBundle, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalysisService.Heatmap")
	defer span.End()

	p, err := s.resolvePlayer(ctx, name)
	if err != nil {
		return player.Player{}, HeatmapBundle{}, err
	}

	return p, HeatmapBundle{
		General:   pitchmap.Heatmap(p),
		Defensive: pitchmap.DefensiveZones(p),
		Offensive: pitchmap.OffensiveZones(p),
	}, nil
}

// PassMap synthesizes passing lanes plus the totals behind them.
func (s *AnalysisService) PassMap(ctx context.Context, name string) (player.Player, PassMapReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalysisService.PassMap")
	defer span.End()

	p, err := s.resolvePlayer(ctx, name)
	if err != nil {
		return player.Player{}, PassMapReport{}, err
	}

	attempted := p.PassesAttempted.Or(0)
	completed := p.PassesCompleted.Or(0)
	rate := 0.0
	if attempted > 0 {
		rate = completed / attempted * 100
	}

	return p, PassMapReport{
		PassMap: pitchmap.PassMap(p),
		Stats: PassStats{
			TotalPasses:       attempted,
			CompletedPasses:   completed,
			SuccessRate:       rate,
			ProgressivePasses: p.ProgressivePasses.Or(0),
		},
	}, nil
}

func (s *AnalysisService) resolvePlayer(ctx context.Context, name string) (player.Player, error) {
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

func quickStats(p player.Player) QuickStats {
	minutes := p.Minutes.Or(0)
	goalsPerGame := "0.00"
	assistsPerGame := "0.00"
	if minutes > 0 {
		nineties := minutes / 90
		goalsPerGame = fmt.Sprintf("%.2f", p.Goals.Or(0)/nineties)
		assistsPerGame = fmt.Sprintf("%.2f", p.Assists.Or(0)/nineties)
	}

	return QuickStats{
		GoalsPerGame:   goalsPerGame,
		AssistsPerGame: assistsPerGame,
		MinutesPlayed:  minutes,
		Appearances:    p.MatchesPlayed.Or(0),
		YellowCards:    p.YellowCards.Or(0),
		RedCards:       p.RedCards.Or(0),
	}
}
