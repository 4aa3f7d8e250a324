package pitchmap

import (
	"testing"

	"github.com/scoutlens/scoutlens/internal/domain/player"
)

func TestHeatmapArchetypes(t *testing.T) {
	cases := []struct {
		name       string
		position   string
		wantPoints int
		wantFirstX int
	}{
		{name: "goalkeeper hugs the box", position: "GK", wantPoints: 4, wantFirstX: 10},
		{name: "defender", position: "DF", wantPoints: 5, wantFirstX: 25},
		{name: "midfielder", position: "MF", wantPoints: 5, wantFirstX: 50},
		{name: "forward", position: "FW", wantPoints: 5, wantFirstX: 75},
		{name: "hybrid keeps keeper shape", position: "GK,DF", wantPoints: 4, wantFirstX: 10},
		{name: "forward-mid resolves to midfield", position: "FW,MF", wantPoints: 5, wantFirstX: 50},
		{name: "unknown falls back to midfield", position: "XX", wantPoints: 5, wantFirstX: 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := player.Player{Position: tc.position, Touches: player.Num(1000)}
			got := Heatmap(p)
			if len(got) != tc.wantPoints {
				t.Fatalf("got %d points, want %d", len(got), tc.wantPoints)
			}
			if got[0].X != tc.wantFirstX {
				t.Fatalf("first zone x = %d, want %d", got[0].X, tc.wantFirstX)
			}
		})
	}
}

func TestHeatmapIntensityBoosts(t *testing.T) {
	quiet := player.Player{Position: "FW", Goals: player.Num(3), Touches: player.Num(500)}
	if got := Heatmap(quiet); got[0].Intensity != 80 {
		t.Fatalf("quiet forward intensity = %d, want 80", got[0].Intensity)
	}

	prolific := player.Player{Position: "FW", Goals: player.Num(15), Touches: player.Num(500)}
	if got := Heatmap(prolific); got[0].Intensity != 95 {
		t.Fatalf("prolific forward intensity = %d, want 95", got[0].Intensity)
	}
}

func TestHeatmapActionShares(t *testing.T) {
	p := player.Player{Position: "GK", Touches: player.Num(999)}
	got := Heatmap(p)
	if got[0].Actions != 399 {
		t.Fatalf("main zone actions = %d, want floor(999*0.4)=399", got[0].Actions)
	}
}

func TestPassMapSuccessBars(t *testing.T) {
	p := player.Player{
		Position:          "MF",
		PassesAttempted:   player.Num(100),
		PassesCompleted:   player.Num(82),
		ProgressivePasses: player.Num(40),
	}

	got := PassMap(p)
	if len(got) != 5 {
		t.Fatalf("got %d edges, want 5", len(got))
	}
	// 82% clears the 80 and 75 bars but not the 85 back-pass bar.
	if !got[0].Success || got[2].Success || !got[3].Success {
		t.Fatalf("success flags = %v %v %v, want true false true", got[0].Success, got[2].Success, got[3].Success)
	}
	if got[3].Frequency != 32 {
		t.Fatalf("progressive lane frequency = %d, want floor(40*0.8)=32", got[3].Frequency)
	}
}

func TestPassMapNoAttempts(t *testing.T) {
	p := player.Player{Position: "FW"}
	for _, edge := range PassMap(p) {
		if edge.Success {
			t.Fatalf("zero attempts must not mark lanes successful")
		}
		if edge.Frequency != 0 {
			t.Fatalf("zero attempts must yield zero frequency, got %d", edge.Frequency)
		}
	}
}

func TestDefensiveZonesThresholds(t *testing.T) {
	none := player.Player{Tackles: player.Num(10), Interceptions: player.Num(5)}
	if got := DefensiveZones(none); len(got) != 0 {
		t.Fatalf("expected no zones below thresholds, got %d", len(got))
	}

	both := player.Player{Tackles: player.Num(40), Interceptions: player.Num(20)}
	got := DefensiveZones(both)
	if len(got) != 6 {
		t.Fatalf("got %d zones, want 6", len(got))
	}
	if got[0].Actions != 40 || got[3].Actions != 20 {
		t.Fatalf("zone actions = %d and %d, want raw counts", got[0].Actions, got[3].Actions)
	}
}

func TestOffensiveZonesGoalImpact(t *testing.T) {
	p := player.Player{Shots: player.Num(50), Goals: player.Num(12), ProgressivePasses: player.Num(10)}
	got := OffensiveZones(p)
	if len(got) != 6 {
		t.Fatalf("got %d zones, want 6", len(got))
	}
	if got[3].Actions != 60 {
		t.Fatalf("goal zone actions = %d, want 12*5", got[3].Actions)
	}
}
