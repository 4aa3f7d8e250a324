// Package valuation estimates a transfer market value from a season
// snapshot. The pipeline is deterministic: base value, league, performance,
// age and playtime multipliers, no randomness and no external lookups.
package valuation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/scoutlens/scoutlens/internal/domain/player"
)

// Trend classifies the expected direction of a player's market value.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendStable  Trend = "stable"
	TrendFalling Trend = "falling"
)

// Estimate is the valuation output for one player.
type Estimate struct {
	Value      int64  `json:"value"`
	Currency   string `json:"currency"`
	Trend      Trend  `json:"trend"`
	LastUpdate string `json:"lastUpdate"`
}

// LeagueMultiplier maps a competition-name marker to a value factor.
type LeagueMultiplier struct {
	Marker     string
	Multiplier float64
}

// AgeBracket applies Multiplier to players up to MaxAge inclusive.
type AgeBracket struct {
	MaxAge     float64
	Multiplier float64
}

// PlaytimeBand applies Multiplier above MinMinutesPerMatch exclusive.
type PlaytimeBand struct {
	MinMinutesPerMatch float64
	Multiplier         float64
}

// Config holds the valuation reference tables. Ordered slices fix match
// precedence for substring league markers and bracket lookups.
type Config struct {
	BaseValue         float64
	LeagueMultipliers []LeagueMultiplier
	DefaultLeague     float64
	AgeBrackets       []AgeBracket
	DefaultAge        float64
	PlaytimeBands     []PlaytimeBand
	DefaultPlaytime   float64
}

// DefaultConfig returns the reference tables for the big European leagues.
func DefaultConfig() Config {
	return Config{
		BaseValue: 1_000_000,
		LeagueMultipliers: []LeagueMultiplier{
			{Marker: "Premier League", Multiplier: 2.5},
			{Marker: "La Liga", Multiplier: 2.3},
			{Marker: "Bundesliga", Multiplier: 2.0},
			{Marker: "Serie A", Multiplier: 1.8},
			{Marker: "Ligue 1", Multiplier: 1.6},
			{Marker: "Champions Lg", Multiplier: 3.0},
		},
		DefaultLeague: 1.2,
		AgeBrackets: []AgeBracket{
			{MaxAge: 21, Multiplier: 1.8},
			{MaxAge: 24, Multiplier: 1.5},
			{MaxAge: 27, Multiplier: 1.2},
			{MaxAge: 30, Multiplier: 1.0},
			{MaxAge: 32, Multiplier: 0.8},
		},
		DefaultAge: 0.6,
		PlaytimeBands: []PlaytimeBand{
			{MinMinutesPerMatch: 80, Multiplier: 1.2},
			{MinMinutesPerMatch: 60, Multiplier: 1.0},
			{MinMinutesPerMatch: 30, Multiplier: 0.8},
		},
		DefaultPlaytime: 0.6,
	}
}

func (c Config) leagueMultiplier(competition string) float64 {
	for _, lm := range c.LeagueMultipliers {
		if strings.Contains(competition, lm.Marker) {
			return lm.Multiplier
		}
	}
	return c.DefaultLeague
}

func (c Config) ageMultiplier(age float64) float64 {
	for _, b := range c.AgeBrackets {
		if age <= b.MaxAge {
			return b.Multiplier
		}
	}
	return c.DefaultAge
}

func (c Config) playtimeMultiplier(minutesPerMatch float64) float64 {
	for _, b := range c.PlaytimeBands {
		if minutesPerMatch > b.MinMinutesPerMatch {
			return b.Multiplier
		}
	}
	return c.DefaultPlaytime
}

// performanceMultiplier accumulates position-specific bonuses on top of a
// 1.0 floor. Forwards step through an exclusive goal-rate ladder while
// midfielder bonuses stack, so both assist thresholds can apply at once.
func performanceMultiplier(p player.Player) float64 {
	matches := p.MatchesPlayed.Or(0)
	goalsPerGame := 0.0
	assistsPerGame := 0.0
	if matches > 0 {
		goalsPerGame = p.Goals.Or(0) / matches
		assistsPerGame = p.Assists.Or(0) / matches
	}

	multiplier := 1.0
	switch {
	case p.HasPosition(player.PositionForward):
		switch {
		case goalsPerGame > 0.8:
			multiplier += 2.0
		case goalsPerGame > 0.6:
			multiplier += 1.5
		case goalsPerGame > 0.4:
			multiplier += 1.0
		case goalsPerGame > 0.2:
			multiplier += 0.5
		}
		if assistsPerGame > 0.3 {
			multiplier += 0.5
		}
	case p.HasPosition(player.PositionMidfielder):
		if goalsPerGame > 0.3 {
			multiplier += 1.0
		}
		if assistsPerGame > 0.4 {
			multiplier += 1.5
		}
		if assistsPerGame > 0.2 {
			multiplier += 0.8
		}
		if p.PassCompletionPct.Or(0) > 90 {
			multiplier += 0.5
		}
	case p.HasPosition(player.PositionDefender):
		if p.Tackles.Or(0) > 30 {
			multiplier += 0.8
		}
		if p.Interceptions.Or(0) > 15 {
			multiplier += 0.6
		}
		if p.Clearances.Or(0) > 40 {
			multiplier += 0.4
		}
		if goalsPerGame > 0.1 {
			multiplier += 1.0
		}
	}

	return multiplier
}

// EstimateValue runs the full valuation pipeline for one player. The same
// record always yields the same value and trend; now only stamps
// LastUpdate.
func EstimateValue(p player.Player, cfg Config, now time.Time) Estimate {
	age := p.Age.Or(25)
	performance := performanceMultiplier(p)

	value := cfg.BaseValue
	value *= cfg.leagueMultiplier(p.Competition)
	value *= performance
	value *= cfg.ageMultiplier(age)
	value *= cfg.playtimeMultiplier(p.MinutesPerMatch())

	trend := TrendStable
	if age <= 23 && performance > 1.5 {
		trend = TrendRising
	} else if age >= 31 || performance < 0.8 {
		trend = TrendFalling
	}

	return Estimate{
		Value:      int64(math.Round(value)),
		Currency:   "EUR",
		Trend:      trend,
		LastUpdate: now.UTC().Format("2006-01-02"),
	}
}

// Format renders a value as €X.XM, €XK or €X for display.
func Format(value int64) string {
	switch {
	case value >= 1_000_000:
		return fmt.Sprintf("€%.1fM", float64(value)/1_000_000)
	case value >= 1_000:
		return fmt.Sprintf("€%.0fK", float64(value)/1_000)
	default:
		return fmt.Sprintf("€%d", value)
	}
}
