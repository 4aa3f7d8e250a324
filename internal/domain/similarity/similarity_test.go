package similarity

import (
	"testing"

	"github.com/scoutlens/scoutlens/internal/domain/player"
)

func striker(name string, age, minutes, goals, assists float64) player.Player {
	return player.Player{
		Name:     name,
		Position: "FW",
		Age:      player.Num(age),
		Minutes:  player.Num(minutes),
		Goals:    player.Num(goals),
		Assists:  player.Num(assists),
	}
}

func TestCandidatePoolFiltering(t *testing.T) {
	target := striker("Target", 24, 1800, 10, 4)
	all := []player.Player{
		target,
		striker("SamePos", 25, 1500, 8, 3),
		striker("TooOld", 28, 1500, 8, 3),
		striker("TooYoung", 20, 1500, 8, 3),
		striker("NoMinutes", 24, 60, 8, 3),
		{Name: "WingBack", Position: "DF,FW", Age: player.Num(24), Minutes: player.Num(1500)},
	}

	pool := CandidatePool(target, all)
	if len(pool) != 1 || pool[0].Name != "SamePos" {
		names := make([]string, len(pool))
		for i, p := range pool {
			names[i] = p.Name
		}
		t.Fatalf("pool = %v, want [SamePos]", names)
	}
}

func TestCandidatePoolPositionIsExactString(t *testing.T) {
	target := player.Player{Name: "T", Position: "FW,MF", Age: player.Num(24), Minutes: player.Num(1000)}
	all := []player.Player{
		{Name: "A", Position: "FW,MF", Age: player.Num(24), Minutes: player.Num(1000)},
		{Name: "B", Position: "FW", Age: player.Num(24), Minutes: player.Num(1000)},
	}

	pool := CandidatePool(target, all)
	if len(pool) != 1 || pool[0].Name != "A" {
		t.Fatalf("expected only the exact position string match, got %d", len(pool))
	}
}

func TestKNearestOrdering(t *testing.T) {
	target := striker("Target", 24, 1800, 10, 5)
	all := []player.Player{
		striker("Twin", 24, 1800, 10, 5),
		striker("Close", 24, 1800, 9, 4),
		striker("Far", 24, 1800, 1, 0),
		striker("Mid", 24, 1800, 6, 3),
	}

	got := KNearest(target, all, 3)
	if len(got) != 3 {
		t.Fatalf("got %d matches, want 3", len(got))
	}
	if got[0].Player.Name != "Twin" {
		t.Fatalf("nearest = %s, want Twin", got[0].Player.Name)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Distance < got[i-1].Distance {
			t.Fatalf("distances not ascending: %v then %v", got[i-1].Distance, got[i].Distance)
		}
	}
	if got[2].Player.Name != "Mid" {
		t.Fatalf("third = %s, want Mid with Far truncated", got[2].Player.Name)
	}
}

func TestKNearestEmptyPool(t *testing.T) {
	target := striker("Target", 24, 1800, 10, 5)
	all := []player.Player{target}

	if got := KNearest(target, all, 3); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestKNearestConstantFeatureNeutralized(t *testing.T) {
	// Every candidate has identical tackles so the feature range collapses;
	// the search must still complete without dividing by zero.
	a := striker("A", 24, 1000, 5, 2)
	b := striker("B", 24, 1000, 6, 2)
	target := striker("Target", 24, 1000, 5, 2)

	got := KNearest(target, []player.Player{a, b}, 1)
	if len(got) != 1 || got[0].Player.Name != "A" {
		t.Fatalf("got %v, want A", got)
	}
}
