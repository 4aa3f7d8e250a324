// Package comparison builds side-by-side metric sheets for two players.
// Percentiles come from each player's own positional cohort, so cross
// comparison is an approximation when the positions differ.
package comparison

import (
	"github.com/scoutlens/scoutlens/internal/domain/player"
	"github.com/scoutlens/scoutlens/internal/domain/scouting"
)

// Format discriminants understood by the frontend renderer.
const (
	FormatDecimal    = "decimal"
	FormatPercentage = "percentage"
	FormatInteger    = "integer"
)

// Metric is one compared statistic with both raw values and percentiles.
type Metric struct {
	Name              string  `json:"name"`
	DisplayName       string  `json:"displayName"`
	Player1Value      float64 `json:"player1Value"`
	Player2Value      float64 `json:"player2Value"`
	Player1Percentile int     `json:"player1Percentile"`
	Player2Percentile int     `json:"player2Percentile"`
	Unit              string  `json:"unit,omitempty"`
	Format            string  `json:"format,omitempty"`
}

// Summary attributes per-metric advantages and an overall winner.
type Summary struct {
	Player1Advantages []string `json:"player1Advantages"`
	Player2Advantages []string `json:"player2Advantages"`
	OverallWinner     string   `json:"overallWinner"`
}

// MetricSpec declares one compared statistic.
type MetricSpec struct {
	Name        string
	DisplayName string
	Unit        string
	Format      string
	Value       func(player.Player) float64
}

// MetricSpecs fixes the compared statistics and their order.
var MetricSpecs = []MetricSpec{
	{Name: "goals", DisplayName: "Buts (sans penalty)", Format: FormatDecimal, Value: func(p player.Player) float64 { return p.NonPenaltyGoals.Or(0) }},
	{Name: "assists", DisplayName: "Passes décisives", Format: FormatDecimal, Value: func(p player.Player) float64 { return p.Assists.Or(0) }},
	{Name: "xG", DisplayName: "Expected Goals", Format: FormatDecimal, Value: func(p player.Player) float64 { return p.ExpectedGoals.Or(0) }},
	{Name: "xAG", DisplayName: "Expected Assists", Format: FormatDecimal, Value: func(p player.Player) float64 { return p.ExpectedAssists.Or(0) }},
	{Name: "shots", DisplayName: "Tirs", Format: FormatInteger, Value: func(p player.Player) float64 { return p.Shots.Or(0) }},
	{Name: "shotAccuracy", DisplayName: "Précision des tirs", Unit: "%", Format: FormatPercentage, Value: func(p player.Player) float64 { return p.ShotOnTargetPct.Or(0) }},
	{Name: "passCompletion", DisplayName: "Réussite des passes", Unit: "%", Format: FormatPercentage, Value: func(p player.Player) float64 { return p.PassCompletionPct.Or(0) }},
	{Name: "progressivePasses", DisplayName: "Passes progressives", Format: FormatInteger, Value: func(p player.Player) float64 { return p.ProgressivePasses.Or(0) }},
	{Name: "tackles", DisplayName: "Tacles", Format: FormatInteger, Value: func(p player.Player) float64 { return p.Tackles.Or(0) }},
	{Name: "interceptions", DisplayName: "Interceptions", Format: FormatInteger, Value: func(p player.Player) float64 { return p.Interceptions.Or(0) }},
	{Name: "touches", DisplayName: "Touches de balle", Format: FormatInteger, Value: func(p player.Player) float64 { return p.Touches.Or(0) }},
	{Name: "dribbleSuccess", DisplayName: "Réussite des dribbles", Unit: "%", Format: FormatPercentage, Value: func(p player.Player) float64 { return p.DribbleSuccessPct.Or(0) }},
}

// Compare builds the metric sheet for two players, ranking each against
// their own positional cohort.
func Compare(p1, p2 player.Player, cohort1, cohort2 []player.Player) []Metric {
	metrics := make([]Metric, 0, len(MetricSpecs))
	values1 := make([]float64, len(cohort1))
	values2 := make([]float64, len(cohort2))

	for _, spec := range MetricSpecs {
		for i, m := range cohort1 {
			values1[i] = spec.Value(m)
		}
		for i, m := range cohort2 {
			values2[i] = spec.Value(m)
		}

		metrics = append(metrics, Metric{
			Name:              spec.Name,
			DisplayName:       spec.DisplayName,
			Player1Value:      spec.Value(p1),
			Player2Value:      spec.Value(p2),
			Player1Percentile: scouting.PercentileOf(spec.Value(p1), values1),
			Player2Percentile: scouting.PercentileOf(spec.Value(p2), values2),
			Unit:              spec.Unit,
			Format:            spec.Format,
		})
	}

	return metrics
}

// Summarize attributes each metric to the player with the strictly higher
// percentile and accumulates percentile deltas as a score. Ties count for
// neither side; equal scores yield "tied".
func Summarize(metrics []Metric) Summary {
	summary := Summary{
		Player1Advantages: []string{},
		Player2Advantages: []string{},
	}

	score1, score2 := 0, 0
	for _, m := range metrics {
		switch {
		case m.Player1Percentile > m.Player2Percentile:
			summary.Player1Advantages = append(summary.Player1Advantages, m.DisplayName)
			score1 += m.Player1Percentile - m.Player2Percentile
		case m.Player2Percentile > m.Player1Percentile:
			summary.Player2Advantages = append(summary.Player2Advantages, m.DisplayName)
			score2 += m.Player2Percentile - m.Player1Percentile
		}
	}

	switch {
	case score1 > score2:
		summary.OverallWinner = "player1"
	case score2 > score1:
		summary.OverallWinner = "player2"
	default:
		summary.OverallWinner = "tied"
	}

	return summary
}
