package comparison

import (
	"testing"

	"github.com/scoutlens/scoutlens/internal/domain/player"
)

func forward(name string, goals, assists float64) player.Player {
	return player.Player{
		Name:            name,
		Position:        "FW",
		Minutes:         player.Num(900),
		NonPenaltyGoals: player.Num(goals),
		Assists:         player.Num(assists),
	}
}

func TestCompareMetricOrder(t *testing.T) {
	p1 := forward("One", 10, 2)
	p2 := forward("Two", 5, 6)
	cohort := []player.Player{p1, p2, forward("Other", 3, 3)}

	metrics := Compare(p1, p2, cohort, cohort)
	if len(metrics) != 12 {
		t.Fatalf("got %d metrics, want 12", len(metrics))
	}
	wantOrder := []string{
		"goals", "assists", "xG", "xAG", "shots", "shotAccuracy",
		"passCompletion", "progressivePasses", "tackles", "interceptions",
		"touches", "dribbleSuccess",
	}
	for i, name := range wantOrder {
		if metrics[i].Name != name {
			t.Fatalf("metrics[%d] = %s, want %s", i, metrics[i].Name, name)
		}
	}
}

func TestComparePercentilesAgainstOwnCohort(t *testing.T) {
	p1 := forward("One", 10, 2)
	p2 := forward("Two", 5, 6)
	cohort1 := []player.Player{p1, forward("A", 1, 1), forward("B", 2, 2), forward("C", 3, 3)}
	cohort2 := []player.Player{p2, forward("D", 8, 8), forward("E", 9, 9), forward("F", 12, 12)}

	metrics := Compare(p1, p2, cohort1, cohort2)
	goals := metrics[0]
	if goals.Player1Percentile != 75 {
		t.Fatalf("player1 goals percentile = %d, want 75", goals.Player1Percentile)
	}
	if goals.Player2Percentile != 0 {
		t.Fatalf("player2 goals percentile = %d, want 0", goals.Player2Percentile)
	}
}

func TestSummarizeAdvantages(t *testing.T) {
	metrics := []Metric{
		{DisplayName: "Buts (sans penalty)", Player1Percentile: 90, Player2Percentile: 40},
		{DisplayName: "Passes décisives", Player1Percentile: 30, Player2Percentile: 60},
		{DisplayName: "Tacles", Player1Percentile: 50, Player2Percentile: 50},
	}

	summary := Summarize(metrics)
	if len(summary.Player1Advantages) != 1 || summary.Player1Advantages[0] != "Buts (sans penalty)" {
		t.Fatalf("player1 advantages = %v", summary.Player1Advantages)
	}
	if len(summary.Player2Advantages) != 1 || summary.Player2Advantages[0] != "Passes décisives" {
		t.Fatalf("player2 advantages = %v", summary.Player2Advantages)
	}
	if summary.OverallWinner != "player1" {
		t.Fatalf("winner = %s, want player1 (delta 50 vs 30)", summary.OverallWinner)
	}
}

func TestSummarizeTie(t *testing.T) {
	metrics := []Metric{
		{DisplayName: "Buts (sans penalty)", Player1Percentile: 70, Player2Percentile: 70},
		{DisplayName: "Tacles", Player1Percentile: 20, Player2Percentile: 20},
	}

	summary := Summarize(metrics)
	if summary.OverallWinner != "tied" {
		t.Fatalf("winner = %s, want tied", summary.OverallWinner)
	}
	if len(summary.Player1Advantages) != 0 || len(summary.Player2Advantages) != 0 {
		t.Fatalf("advantages must be empty on identical profiles")
	}
}
