// Package pitchmap synthesizes illustrative pitch visualizations from
// season totals. Coordinates are fixed position archetypes scaled by
// aggregate volumes, not measured tracking data, and must be presented as
// synthetic.
package pitchmap

import (
	"math"

	"github.com/scoutlens/scoutlens/internal/domain/player"
)

// Point is one activity zone on a 100x100 pitch grid.
type Point struct {
	X         int `json:"x"`
	Y         int `json:"y"`
	Intensity int `json:"intensity"`
	Actions   int `json:"actions"`
}

// Coord is a pitch grid coordinate.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PassEdge is one synthesized passing lane between two zones.
type PassEdge struct {
	From      Coord `json:"from"`
	To        Coord `json:"to"`
	Frequency int   `json:"frequency"`
	Success   bool  `json:"success"`
}

func share(total float64, fraction float64) int {
	return int(math.Floor(total * fraction))
}

// archetype picks the zone archetype for a raw position string. The GK
// check runs first so hybrid strings such as "GK,DF" keep the keeper
// shape; anything unrecognized falls back to the midfield archetype.
func archetype(p player.Player) player.Position {
	switch {
	case p.HasPosition(player.PositionGoalkeeper):
		return player.PositionGoalkeeper
	case p.HasPosition(player.PositionDefender):
		return player.PositionDefender
	case p.HasPosition(player.PositionMidfielder):
		return player.PositionMidfielder
	case p.HasPosition(player.PositionForward):
		return player.PositionForward
	default:
		return player.PositionMidfielder
	}
}

// Heatmap synthesizes activity zones for the player's position archetype,
// with touch counts spread across the zones.
func Heatmap(p player.Player) []Point {
	touches := p.Touches.Or(0)

	switch archetype(p) {
	case player.PositionGoalkeeper:
		return []Point{
			{X: 10, Y: 50, Intensity: 90, Actions: share(touches, 0.4)},
			{X: 15, Y: 45, Intensity: 70, Actions: share(touches, 0.2)},
			{X: 15, Y: 55, Intensity: 70, Actions: share(touches, 0.2)},
			{X: 20, Y: 50, Intensity: 50, Actions: share(touches, 0.1)},
		}
	case player.PositionDefender:
		central := 70
		if p.Tackles.Or(0) > 20 {
			central = 85
		}
		return []Point{
			{X: 25, Y: 50, Intensity: central, Actions: share(touches, 0.3)},
			{X: 30, Y: 40, Intensity: 75, Actions: share(touches, 0.25)},
			{X: 30, Y: 60, Intensity: 75, Actions: share(touches, 0.25)},
			{X: 35, Y: 50, Intensity: 60, Actions: share(touches, 0.15)},
			{X: 45, Y: 50, Intensity: 40, Actions: share(touches, 0.05)},
		}
	case player.PositionForward:
		goalZone := 80
		if p.Goals.Or(0) > 10 {
			goalZone = 95
		}
		return []Point{
			{X: 75, Y: 50, Intensity: goalZone, Actions: share(touches, 0.35)},
			{X: 70, Y: 40, Intensity: 75, Actions: share(touches, 0.25)},
			{X: 70, Y: 60, Intensity: 75, Actions: share(touches, 0.25)},
			{X: 85, Y: 50, Intensity: 85, Actions: share(touches, 0.1)},
			{X: 60, Y: 50, Intensity: 55, Actions: share(touches, 0.05)},
		}
	default:
		hub := 75
		if p.ProgressivePasses.Or(0) > 50 {
			hub = 90
		}
		return []Point{
			{X: 50, Y: 50, Intensity: hub, Actions: share(touches, 0.4)},
			{X: 45, Y: 40, Intensity: 70, Actions: share(touches, 0.2)},
			{X: 45, Y: 60, Intensity: 70, Actions: share(touches, 0.2)},
			{X: 60, Y: 50, Intensity: 65, Actions: share(touches, 0.15)},
			{X: 35, Y: 50, Intensity: 50, Actions: share(touches, 0.05)},
		}
	}
}

// PassMap synthesizes passing lanes for the position archetype. Edge
// frequency is a fixed fraction of attempted or progressive passes, and
// success reflects whether the completion rate clears the lane's bar.
func PassMap(p player.Player) []PassEdge {
	attempted := p.PassesAttempted.Or(0)
	progressive := p.ProgressivePasses.Or(0)
	rate := 0.0
	if attempted > 0 {
		rate = p.PassesCompleted.Or(0) / attempted * 100
	}

	switch archetype(p) {
	case player.PositionGoalkeeper:
		return []PassEdge{
			{From: Coord{10, 50}, To: Coord{25, 40}, Frequency: share(attempted, 0.3), Success: rate > 70},
			{From: Coord{10, 50}, To: Coord{25, 60}, Frequency: share(attempted, 0.3), Success: rate > 70},
			{From: Coord{10, 50}, To: Coord{45, 50}, Frequency: share(attempted, 0.4), Success: rate > 70},
		}
	case player.PositionDefender:
		return []PassEdge{
			{From: Coord{25, 50}, To: Coord{45, 50}, Frequency: share(attempted, 0.4), Success: rate > 80},
			{From: Coord{25, 50}, To: Coord{35, 30}, Frequency: share(attempted, 0.2), Success: rate > 75},
			{From: Coord{25, 50}, To: Coord{35, 70}, Frequency: share(attempted, 0.2), Success: rate > 75},
			{From: Coord{25, 50}, To: Coord{60, 50}, Frequency: share(progressive, 0.6), Success: rate > 70},
		}
	case player.PositionForward:
		return []PassEdge{
			{From: Coord{75, 50}, To: Coord{85, 45}, Frequency: share(attempted, 0.3), Success: rate > 70},
			{From: Coord{75, 50}, To: Coord{85, 55}, Frequency: share(attempted, 0.3), Success: rate > 70},
			{From: Coord{75, 50}, To: Coord{60, 50}, Frequency: share(attempted, 0.25), Success: rate > 80},
			{From: Coord{75, 50}, To: Coord{70, 30}, Frequency: share(attempted, 0.15), Success: rate > 65},
		}
	default:
		return []PassEdge{
			{From: Coord{50, 50}, To: Coord{70, 40}, Frequency: share(attempted, 0.25), Success: rate > 80},
			{From: Coord{50, 50}, To: Coord{70, 60}, Frequency: share(attempted, 0.25), Success: rate > 80},
			{From: Coord{50, 50}, To: Coord{30, 50}, Frequency: share(attempted, 0.2), Success: rate > 85},
			{From: Coord{50, 50}, To: Coord{75, 50}, Frequency: share(progressive, 0.8), Success: rate > 75},
			{From: Coord{50, 50}, To: Coord{85, 50}, Frequency: share(progressive, 0.3), Success: rate > 60},
		}
	}
}

// DefensiveZones synthesizes defensive hot spots from tackle and
// interception volume, empty when neither clears its floor.
func DefensiveZones(p player.Player) []Point {
	tackles := p.Tackles.Or(0)
	interceptions := p.Interceptions.Or(0)

	zones := []Point{}
	if tackles > 15 {
		zones = append(zones,
			Point{X: 40, Y: 50, Intensity: 80, Actions: int(tackles)},
			Point{X: 35, Y: 40, Intensity: 60, Actions: share(tackles, 0.4)},
			Point{X: 35, Y: 60, Intensity: 60, Actions: share(tackles, 0.4)},
		)
	}
	if interceptions > 10 {
		zones = append(zones,
			Point{X: 45, Y: 50, Intensity: 70, Actions: int(interceptions)},
			Point{X: 50, Y: 45, Intensity: 50, Actions: share(interceptions, 0.5)},
			Point{X: 50, Y: 55, Intensity: 50, Actions: share(interceptions, 0.5)},
		)
	}
	return zones
}

// OffensiveZones synthesizes attacking hot spots from shot, goal and
// progressive pass volume. Goal actions are inflated for visual impact.
func OffensiveZones(p player.Player) []Point {
	shots := p.Shots.Or(0)
	goals := p.Goals.Or(0)
	progressive := p.ProgressivePasses.Or(0)

	zones := []Point{}
	if shots > 20 {
		zones = append(zones,
			Point{X: 80, Y: 50, Intensity: 90, Actions: int(shots)},
			Point{X: 75, Y: 45, Intensity: 70, Actions: share(shots, 0.4)},
			Point{X: 75, Y: 55, Intensity: 70, Actions: share(shots, 0.4)},
		)
	}
	if goals > 5 {
		zones = append(zones,
			Point{X: 85, Y: 50, Intensity: 95, Actions: int(goals) * 5},
			Point{X: 82, Y: 48, Intensity: 80, Actions: int(goals) * 3},
			Point{X: 82, Y: 52, Intensity: 80, Actions: int(goals) * 3},
		)
	}
	if progressive > 30 {
		zones = append(zones,
			Point{X: 70, Y: 40, Intensity: 75, Actions: int(progressive)},
			Point{X: 70, Y: 60, Intensity: 75, Actions: int(progressive)},
			Point{X: 65, Y: 50, Intensity: 65, Actions: share(progressive, 0.6)},
		)
	}
	return zones
}
