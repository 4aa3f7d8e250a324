package player

import (
	"math"
	"strconv"
	"strings"
)

// Position is one of the four recognized position tags.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DF"
	PositionMidfielder Position = "MF"
	PositionForward    Position = "FW"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// ParsePositions splits a raw source position string such as "FW,MF" into
// recognized tags, preserving source order and dropping anything unknown.
func ParsePositions(raw string) []Position {
	var out []Position
	for _, part := range strings.Split(raw, ",") {
		tag := Position(strings.ToUpper(strings.TrimSpace(part)))
		if _, ok := AllPositions[tag]; ok {
			out = append(out, tag)
		}
	}
	return out
}

// Stat is a numeric statistic that may be absent in the source data.
// Absent or non-finite values marshal as JSON null.
type Stat struct {
	Value float64
	Valid bool
}

func Num(v float64) Stat {
	return Stat{Value: v, Valid: true}
}

// Or returns the statistic value, or def when the statistic is absent.
func (s Stat) Or(def float64) float64 {
	if !s.Valid {
		return def
	}
	return s.Value
}

func (s Stat) MarshalJSON() ([]byte, error) {
	if !s.Valid || math.IsNaN(s.Value) || math.IsInf(s.Value, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, s.Value, 'f', -1, 64), nil
}

func (s *Stat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Stat{}
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*s = Num(v)
	return nil
}

// Player is one season snapshot row from the source table.
type Player struct {
	Rank        Stat   `json:"rank"`
	Name        string `json:"name"`
	Nation      string `json:"nation"`
	Position    string `json:"position"`
	Team        string `json:"team"`
	Competition string `json:"competition"`
	Age         Stat   `json:"age"`
	BirthYear   Stat   `json:"birthYear"`

	MatchesPlayed  Stat `json:"matchesPlayed"`
	Starts         Stat `json:"starts"`
	Minutes        Stat `json:"minutes"`
	NinetiesPlayed Stat `json:"ninetiesPlayed"`

	Goals                   Stat `json:"goals"`
	Assists                 Stat `json:"assists"`
	GoalsPlusAssists        Stat `json:"goalsPlusAssists"`
	NonPenaltyGoals         Stat `json:"nonPenaltyGoals"`
	PenaltyGoals            Stat `json:"penaltyGoals"`
	PenaltyAttempts         Stat `json:"penaltyAttempts"`
	ExpectedGoals           Stat `json:"expectedGoals"`
	NonPenaltyExpectedGoals Stat `json:"nonPenaltyExpectedGoals"`
	ExpectedAssists         Stat `json:"expectedAssists"`

	YellowCards Stat `json:"yellowCards"`
	RedCards    Stat `json:"redCards"`

	ProgressiveCarries         Stat `json:"progressiveCarries"`
	ProgressivePasses          Stat `json:"progressivePasses"`
	ProgressivePassesReceived  Stat `json:"progressivePassesReceived"`

	Shots                Stat `json:"shots"`
	ShotsOnTarget        Stat `json:"shotsOnTarget"`
	ShotOnTargetPct      Stat `json:"shotOnTargetPct"`
	ShotsPer90           Stat `json:"shotsPer90"`
	ShotsOnTargetPer90   Stat `json:"shotsOnTargetPer90"`
	GoalsPerShot         Stat `json:"goalsPerShot"`
	GoalsPerShotOnTarget Stat `json:"goalsPerShotOnTarget"`
	AvgShotDistance      Stat `json:"avgShotDistance"`
	FreeKicks            Stat `json:"freeKicks"`

	Tackles       Stat `json:"tackles"`
	Interceptions Stat `json:"interceptions"`
	Clearances    Stat `json:"clearances"`

	PassCompletionPct       Stat `json:"passCompletionPct"`
	PassesCompleted         Stat `json:"passesCompleted"`
	PassesAttempted         Stat `json:"passesAttempted"`
	TotalPassDistance       Stat `json:"totalPassDistance"`
	ProgressivePassDistance Stat `json:"progressivePassDistance"`

	Touches           Stat `json:"touches"`
	DribbleSuccessPct Stat `json:"dribbleSuccessPct"`
	DribblesCompleted Stat `json:"dribblesCompleted"`
	DribbleTackledPct Stat `json:"dribbleTackledPct"`
	DribblesTackled   Stat `json:"dribblesTackled"`
	Carries           Stat `json:"carries"`

	AerialsWon    Stat `json:"aerialsWon"`
	AerialsWonPct Stat `json:"aerialsWonPct"`
}

// Positions returns the recognized tags from the raw position string.
func (p Player) Positions() []Position {
	return ParsePositions(p.Position)
}

// PrimaryPosition picks the first recognized tag from the position string.
// Unrecognized or empty positions fall back to midfielder, the neutral
// branch every engine already defaults to.
func (p Player) PrimaryPosition() Position {
	if tags := p.Positions(); len(tags) > 0 {
		return tags[0]
	}
	return PositionMidfielder
}

// HasPosition reports whether the position string carries the given tag.
func (p Player) HasPosition(tag Position) bool {
	for _, t := range p.Positions() {
		if t == tag {
			return true
		}
	}
	return false
}

// MinutesPerMatch returns average minutes per appearance, zero when the
// player has no recorded matches.
func (p Player) MinutesPerMatch() float64 {
	matches := p.MatchesPlayed.Or(0)
	if matches <= 0 {
		return 0
	}
	return p.Minutes.Or(0) / matches
}
