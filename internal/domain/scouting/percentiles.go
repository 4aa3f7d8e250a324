package scouting

import (
	"math"

	"github.com/scoutlens/scoutlens/internal/domain/player"
)

// CohortMinMinutes is the playing-time floor for percentile cohorts.
// Players below it have too little game time to rank meaningfully.
const CohortMinMinutes = 90

// TrackedStat is one statistic ranked by the percentile engine.
type TrackedStat struct {
	Key         string
	DisplayName string
	Value       func(player.Player) float64
}

// TrackedStats fixes the ranked statistics and their presentation order.
var TrackedStats = []TrackedStat{
	{Key: "goals", DisplayName: "Buts", Value: func(p player.Player) float64 { return p.Goals.Or(0) }},
	{Key: "assists", DisplayName: "Passes décisives", Value: func(p player.Player) float64 { return p.Assists.Or(0) }},
	{Key: "xG", DisplayName: "Expected Goals", Value: func(p player.Player) float64 { return p.ExpectedGoals.Or(0) }},
	{Key: "xAG", DisplayName: "Expected Assists", Value: func(p player.Player) float64 { return p.ExpectedAssists.Or(0) }},
	{Key: "shots", DisplayName: "Tirs", Value: func(p player.Player) float64 { return p.Shots.Or(0) }},
	{Key: "passCompletion", DisplayName: "Précision des passes", Value: func(p player.Player) float64 { return p.PassCompletionPct.Or(0) }},
	{Key: "tackles", DisplayName: "Tacles", Value: func(p player.Player) float64 { return p.Tackles.Or(0) }},
	{Key: "interceptions", DisplayName: "Interceptions", Value: func(p player.Player) float64 { return p.Interceptions.Or(0) }},
	{Key: "progressivePasses", DisplayName: "Passes progressives", Value: func(p player.Player) float64 { return p.ProgressivePasses.Or(0) }},
	{Key: "dribbleSuccess", DisplayName: "Dribbles réussis", Value: func(p player.Player) float64 { return p.DribbleSuccessPct.Or(0) }},
}

// PercentileOf ranks value against cohortValues as a strict rank
// percentile: the share of values strictly below, rounded to 0..100.
// Cohorts below two members cannot be ranked and yield zero.
func PercentileOf(value float64, cohortValues []float64) int {
	if len(cohortValues) < 2 {
		return 0
	}

	below := 0
	for _, v := range cohortValues {
		if v < value {
			below++
		}
	}

	return int(math.Round(float64(below) / float64(len(cohortValues)) * 100))
}

// Percentiles computes the target's percentile for every tracked statistic
// against the given positional cohort. A cohort below two members returns
// an empty map so callers can tell "unknown" apart from "0th percentile".
func Percentiles(target player.Player, cohort []player.Player) map[string]int {
	if len(cohort) < 2 {
		return map[string]int{}
	}

	out := make(map[string]int, len(TrackedStats))
	values := make([]float64, len(cohort))
	for _, stat := range TrackedStats {
		for i, member := range cohort {
			values[i] = stat.Value(member)
		}
		out[stat.Key] = PercentileOf(stat.Value(target), values)
	}

	return out
}

// Strengths lists display names of statistics at or above the 80th
// percentile, in tracked order.
func Strengths(percentiles map[string]int) []string {
	return displayNamesWhere(percentiles, func(p int) bool { return p >= 80 })
}

// Weaknesses lists display names of statistics at or below the 20th
// percentile, in tracked order.
func Weaknesses(percentiles map[string]int) []string {
	return displayNamesWhere(percentiles, func(p int) bool { return p <= 20 })
}

func displayNamesWhere(percentiles map[string]int, match func(int) bool) []string {
	out := []string{}
	for _, stat := range TrackedStats {
		if p, ok := percentiles[stat.Key]; ok && match(p) {
			out = append(out, stat.DisplayName)
		}
	}
	return out
}

// PlayingStyle labels the player from their percentile profile. The first
// matching branch wins.
func PlayingStyle(percentiles map[string]int) string {
	switch {
	case percentiles["goals"] > 80 && percentiles["shots"] > 70:
		return "Finisseur élite"
	case percentiles["assists"] > 80 && percentiles["progressivePasses"] > 70:
		return "Créateur de jeu"
	case percentiles["tackles"] > 80 && percentiles["interceptions"] > 70:
		return "Défenseur solide"
	case percentiles["dribbleSuccess"] > 80:
		return "Dribbleur technique"
	default:
		return "Joueur polyvalent"
	}
}

// OverallRating compresses the mean percentile toward the center, so a
// perfectly average profile rates 50 and the extremes pull in slightly.
// An empty percentile map rates the neutral 50.
func OverallRating(percentiles map[string]int) int {
	if len(percentiles) == 0 {
		return 50
	}

	sum := 0
	for _, p := range percentiles {
		sum += p
	}
	mean := float64(sum) / float64(len(percentiles))

	return int(math.Round(50 + (mean-50)*0.8))
}
