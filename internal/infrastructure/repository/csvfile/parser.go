package csvfile

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/scoutlens/scoutlens/internal/domain/player"
)

// parseLine splits one table line on commas outside double quotes. A
// quote toggles quoted mode, a doubled quote inside quoted mode escapes a
// literal quote. Fields are trimmed and stripped of one wrapping quote
// pair.
func parseLine(line string) []string {
	var fields []string
	var current strings.Builder

	inQuotes := false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, cleanField(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	fields = append(fields, cleanField(current.String()))

	return fields
}

func cleanField(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s
}

// toStat coerces a raw field into a nullable numeric. Blank and the
// literal null markers some exports emit become absent; so does anything
// that fails to parse fully as a number, since a typed column cannot
// carry free text.
func toStat(raw string) player.Stat {
	if raw == "" || raw == "null" || raw == "undefined" {
		return player.Stat{}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return player.Stat{}
	}
	return player.Num(v)
}

// parseTable zips every non-blank data line against the header row.
// Unknown columns are ignored so the loader tolerates wider exports.
func parseTable(content string) ([]player.Player, error) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, errors.New("players table has no header row")
	}
	headers := parseLine(lines[0])

	players := make([]player.Player, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := parseLine(line)
		var p player.Player
		for i, header := range headers {
			value := ""
			if i < len(values) {
				value = values[i]
			}
			setField(&p, strings.TrimSpace(header), value)
		}
		players = append(players, p)
	}

	return players, nil
}

func setField(p *player.Player, header, value string) {
	switch header {
	case "Rk":
		p.Rank = toStat(value)
	case "Player":
		p.Name = value
	case "Nation":
		p.Nation = value
	case "Pos":
		p.Position = value
	case "Squad":
		p.Team = value
	case "Comp":
		p.Competition = value
	case "Age":
		p.Age = toStat(value)
	case "Born":
		p.BirthYear = toStat(value)
	case "MP":
		p.MatchesPlayed = toStat(value)
	case "Starts":
		p.Starts = toStat(value)
	case "Min":
		p.Minutes = toStat(value)
	case "90s":
		p.NinetiesPlayed = toStat(value)
	case "Gls":
		p.Goals = toStat(value)
	case "Ast":
		p.Assists = toStat(value)
	case "G+A":
		p.GoalsPlusAssists = toStat(value)
	case "G-PK":
		p.NonPenaltyGoals = toStat(value)
	case "PK":
		p.PenaltyGoals = toStat(value)
	case "PKatt":
		p.PenaltyAttempts = toStat(value)
	case "CrdY":
		p.YellowCards = toStat(value)
	case "CrdR":
		p.RedCards = toStat(value)
	case "xG":
		p.ExpectedGoals = toStat(value)
	case "npxG":
		p.NonPenaltyExpectedGoals = toStat(value)
	case "xAG":
		p.ExpectedAssists = toStat(value)
	case "PrgC":
		p.ProgressiveCarries = toStat(value)
	case "PrgP":
		p.ProgressivePasses = toStat(value)
	case "PrgR":
		p.ProgressivePassesReceived = toStat(value)
	case "Sh":
		p.Shots = toStat(value)
	case "SoT":
		p.ShotsOnTarget = toStat(value)
	case "SoT%":
		p.ShotOnTargetPct = toStat(value)
	case "Sh/90":
		p.ShotsPer90 = toStat(value)
	case "SoT/90":
		p.ShotsOnTargetPer90 = toStat(value)
	case "G/Sh":
		p.GoalsPerShot = toStat(value)
	case "G/SoT":
		p.GoalsPerShotOnTarget = toStat(value)
	case "Dist":
		p.AvgShotDistance = toStat(value)
	case "FK":
		p.FreeKicks = toStat(value)
	case "Tkl":
		p.Tackles = toStat(value)
	case "Int":
		p.Interceptions = toStat(value)
	case "Clr":
		p.Clearances = toStat(value)
	case "Cmp%":
		p.PassCompletionPct = toStat(value)
	case "Cmp":
		p.PassesCompleted = toStat(value)
	case "Att":
		p.PassesAttempted = toStat(value)
	case "TotDist":
		p.TotalPassDistance = toStat(value)
	case "PrgDist":
		p.ProgressivePassDistance = toStat(value)
	case "Touches":
		p.Touches = toStat(value)
	case "Succ%":
		p.DribbleSuccessPct = toStat(value)
	case "Succ":
		p.DribblesCompleted = toStat(value)
	case "Tkld%":
		p.DribbleTackledPct = toStat(value)
	case "Tkld":
		p.DribblesTackled = toStat(value)
	case "Carries":
		p.Carries = toStat(value)
	case "Won":
		p.AerialsWon = toStat(value)
	case "Won%":
		p.AerialsWonPct = toStat(value)
	}
}
