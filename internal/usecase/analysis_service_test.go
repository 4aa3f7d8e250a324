package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/scoutlens/scoutlens/internal/domain/player"
	"github.com/scoutlens/scoutlens/internal/domain/scouting"
)

func analysisFixture() *fakePlayerRepo {
	players := []player.Player{
		{
			Name: "Jean Dupont", Position: "FW", Team: "Paris FC", Competition: "fr Ligue 1",
			Age: player.Num(24), MatchesPlayed: player.Num(20), Minutes: player.Num(1800),
			Goals: player.Num(14), Assists: player.Num(3), ExpectedGoals: player.Num(11.2),
			ExpectedAssists: player.Num(2.1), Shots: player.Num(60), ShotsOnTarget: player.Num(28),
			GoalsPerShot: player.Num(0.23), PassCompletionPct: player.Num(78),
			PassesCompleted: player.Num(600), PassesAttempted: player.Num(769),
			ProgressivePasses: player.Num(40), DribbleSuccessPct: player.Num(55),
			Tackles: player.Num(10), Interceptions: player.Num(4),
			YellowCards: player.Num(3), RedCards: player.Num(0),
		},
	}
	// Pad the cohort so percentiles have something to rank against.
	for i := 0; i < 9; i++ {
		players = append(players, player.Player{
			Name: fmt.Sprintf("Forward %d", i), Position: "FW", Team: "Club", Competition: "fr Ligue 1",
			Age: player.Num(26), Minutes: player.Num(1500),
			Goals: player.Num(float64(i)), Assists: player.Num(1), ExpectedGoals: player.Num(float64(i)),
			Shots: player.Num(30), PassCompletionPct: player.Num(70),
		})
	}
	return &fakePlayerRepo{players: players}
}

func TestAnalyzePlayer(t *testing.T) {
	svc := NewAnalysisService(analysisFixture())

	analysis, err := svc.AnalyzePlayer(context.Background(), "Jean Dupont")
	if err != nil {
		t.Fatalf("AnalyzePlayer: %v", err)
	}

	if analysis.Player.Name != "Jean Dupont" {
		t.Fatalf("player = %q", analysis.Player.Name)
	}
	// 14 goals tops a cohort of 10, so the percentile is 9/10.
	if got := analysis.Percentiles["goals"]; got != 90 {
		t.Fatalf("goals percentile = %d, want 90", got)
	}
	if analysis.PlayingStyle == "" {
		t.Fatal("playing style is empty")
	}
	if analysis.OverallRating <= 0 || analysis.OverallRating > 100 {
		t.Fatalf("overall rating = %d", analysis.OverallRating)
	}
	// 14 goals over 1800 minutes is 0.70 per ninety.
	if analysis.Stats.GoalsPerGame != "0.70" {
		t.Fatalf("goalsPerGame = %q, want 0.70", analysis.Stats.GoalsPerGame)
	}
	if analysis.Stats.Appearances != 20 {
		t.Fatalf("appearances = %v", analysis.Stats.Appearances)
	}
	if analysis.Progression.Recommendation == "" {
		t.Fatal("progression recommendation is empty")
	}
}

func TestAnalyzePlayerValidation(t *testing.T) {
	svc := NewAnalysisService(analysisFixture())

	if _, err := svc.AnalyzePlayer(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.AnalyzePlayer(context.Background(), "Nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPlayerWeaknesses(t *testing.T) {
	repo := &fakePlayerRepo{players: []player.Player{{
		Name: "Rusty Striker", Position: "FW,MF", Team: "Club", Competition: "fr Ligue 1",
		Minutes: player.Num(1800), Goals: player.Num(1), ExpectedGoals: player.Num(4),
		Shots: player.Num(10), ShotsOnTarget: player.Num(3), GoalsPerShot: player.Num(0.02),
	}}}
	svc := NewAnalysisService(repo)

	report, err := svc.PlayerWeaknesses(context.Background(), "Rusty Striker")
	if err != nil {
		t.Fatalf("PlayerWeaknesses: %v", err)
	}

	if report.Position != "FW,MF" {
		t.Fatalf("position = %q", report.Position)
	}
	if len(report.Weaknesses) == 0 {
		t.Fatal("expected detected weaknesses")
	}
	for _, w := range report.Weaknesses {
		if w == scouting.BalancedProfile {
			t.Fatalf("unexpected balanced sentinel in %v", report.Weaknesses)
		}
	}
	if len(report.Suggestions) == 0 || len(report.Suggestions) > 3 {
		t.Fatalf("suggestions = %v", report.Suggestions)
	}
}

func TestHeatmapBundle(t *testing.T) {
	svc := NewAnalysisService(analysisFixture())

	p, bundle, err := svc.Heatmap(context.Background(), "Jean Dupont")
	if err != nil {
		t.Fatalf("Heatmap: %v", err)
	}
	if p.Name != "Jean Dupont" {
		t.Fatalf("player = %q", p.Name)
	}
	if len(bundle.General) == 0 {
		t.Fatal("general zones empty")
	}
	if len(bundle.Offensive) == 0 {
		t.Fatal("offensive zones empty for a scoring forward")
	}
}

func TestPassMapStats(t *testing.T) {
	svc := NewAnalysisService(analysisFixture())

	_, report, err := svc.PassMap(context.Background(), "Jean Dupont")
	if err != nil {
		t.Fatalf("PassMap: %v", err)
	}
	if report.Stats.TotalPasses != 769 || report.Stats.CompletedPasses != 600 {
		t.Fatalf("stats = %+v", report.Stats)
	}
	wantRate := 600.0 / 769 * 100
	if report.Stats.SuccessRate != wantRate {
		t.Fatalf("successRate = %v, want %v", report.Stats.SuccessRate, wantRate)
	}
	if len(report.PassMap) == 0 {
		t.Fatal("pass map empty")
	}
}
