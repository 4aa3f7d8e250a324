// Package similarity ranks players by statistical closeness to a target
// using a nearest-neighbor search over a small normalized feature vector.
package similarity

import (
	"math"
	"sort"

	"github.com/scoutlens/scoutlens/internal/domain/player"
)

const (
	// MaxAgeGap bounds the age window around the target.
	MaxAgeGap = 3
	// MinMinutes excludes players with too little game time to compare.
	MinMinutes = 90
	// DefaultK is the number of neighbors returned when unspecified.
	DefaultK = 3
)

// Features fixes the vector compared between players.
var Features = []func(player.Player) float64{
	func(p player.Player) float64 { return p.Goals.Or(0) },
	func(p player.Player) float64 { return p.Assists.Or(0) },
	func(p player.Player) float64 { return p.ExpectedGoals.Or(0) },
	func(p player.Player) float64 { return p.ExpectedAssists.Or(0) },
	func(p player.Player) float64 { return p.DribblesCompleted.Or(0) },
	func(p player.Player) float64 { return p.Tackles.Or(0) },
}

// Match pairs a candidate with its distance to the target.
type Match struct {
	Player   player.Player `json:"player"`
	Distance float64       `json:"distance"`
}

// CandidatePool filters the table to players comparable to the target:
// identical position string, within MaxAgeGap years, at least MinMinutes
// played and not carrying the target's name. A missing age counts as zero
// for the window check rather than excluding the player.
func CandidatePool(target player.Player, all []player.Player) []player.Player {
	var pool []player.Player
	for _, c := range all {
		if c.Name == target.Name {
			continue
		}
		if c.Position != target.Position {
			continue
		}
		if math.Abs(c.Age.Or(0)-target.Age.Or(0)) > MaxAgeGap {
			continue
		}
		if c.Minutes.Or(0) < MinMinutes {
			continue
		}
		pool = append(pool, c)
	}
	return pool
}

// KNearest returns the k candidates closest to the target in feature
// space, ascending by distance. Features are min-max normalized over the
// candidate pool; a feature constant across the pool contributes nothing.
// An empty pool yields an empty result.
func KNearest(target player.Player, all []player.Player, k int) []Match {
	if k <= 0 {
		k = DefaultK
	}

	pool := CandidatePool(target, all)
	if len(pool) == 0 {
		return []Match{}
	}

	mins := make([]float64, len(Features))
	maxs := make([]float64, len(Features))
	for i, feature := range Features {
		mins[i] = math.Inf(1)
		maxs[i] = math.Inf(-1)
		for _, c := range pool {
			v := feature(c)
			mins[i] = math.Min(mins[i], v)
			maxs[i] = math.Max(maxs[i], v)
		}
	}

	normalize := func(i int, v float64) float64 {
		if maxs[i] == mins[i] {
			return 0
		}
		return (v - mins[i]) / (maxs[i] - mins[i])
	}

	matches := make([]Match, 0, len(pool))
	for _, c := range pool {
		sum := 0.0
		for i, feature := range Features {
			d := normalize(i, feature(target)) - normalize(i, feature(c))
			sum += d * d
		}
		matches = append(matches, Match{Player: c, Distance: math.Sqrt(sum)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches
}
