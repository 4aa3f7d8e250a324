package scouting

import "github.com/scoutlens/scoutlens/internal/domain/player"

// WeaknessKind groups weaknesses by the training theme they call for, so
// suggestions key off a structured code instead of message text.
type WeaknessKind int

const (
	WeaknessOther WeaknessKind = iota
	WeaknessPlayingTime
	WeaknessShooting
	WeaknessCreation
	WeaknessDefending
)

// Weakness is one detected shortfall with its user-facing description.
type Weakness struct {
	Kind    WeaknessKind `json:"-"`
	Message string       `json:"message"`
}

// BalancedProfile is the sentinel returned when no weakness triggers.
// Callers receive it as a one-element list, never an empty one.
const BalancedProfile = "Profil équilibré"

const maxWeaknesses = 4

type weaknessRule struct {
	kind      WeaknessKind
	message   string
	threshold float64
	value     func(player.Player) float64
	// perNinety scales counting stats to a 90-minute basis before the
	// threshold check. Percentages and ratios are compared raw.
	perNinety bool
}

// Threshold tables per primary position. Order fixes message precedence
// when more than maxWeaknesses rules trigger.
var weaknessRules = map[player.Position][]weaknessRule{
	player.PositionForward: {
		{WeaknessShooting, "Efficacité devant le but limitée", 5, func(p player.Player) float64 { return p.Goals.Or(0) }, true},
		{WeaknessShooting, "Peu de situations dangereuses créées", 3.0, func(p player.Player) float64 { return p.ExpectedGoals.Or(0) }, true},
		{WeaknessShooting, "Volume de tirs insuffisant", 30, func(p player.Player) float64 { return p.Shots.Or(0) }, true},
		{WeaknessShooting, "Précision des tirs à améliorer", 15, func(p player.Player) float64 { return p.ShotsOnTarget.Or(0) }, true},
		{WeaknessShooting, "Efficacité des tirs faible", 0.1, func(p player.Player) float64 { return p.GoalsPerShot.Or(0) }, false},
	},
	player.PositionMidfielder: {
		{WeaknessCreation, "Manque de créativité dans la dernière passe", 3, func(p player.Player) float64 { return p.Assists.Or(0) }, true},
		{WeaknessCreation, "Contribution offensive limitée", 2.0, func(p player.Player) float64 { return p.ExpectedAssists.Or(0) }, true},
		{WeaknessCreation, "Manque de passes progressives", 20, func(p player.Player) float64 { return p.ProgressivePasses.Or(0) }, true},
		{WeaknessCreation, "Précision des passes à améliorer", 80, func(p player.Player) float64 { return p.PassCompletionPct.Or(0) }, false},
		{WeaknessDefending, "Contribution défensive limitée", 15, func(p player.Player) float64 { return p.Tackles.Or(0) }, true},
	},
	player.PositionDefender: {
		{WeaknessDefending, "Contribution défensive limitée", 25, func(p player.Player) float64 { return p.Tackles.Or(0) }, true},
		{WeaknessDefending, "Lecture du jeu défensive faible", 20, func(p player.Player) float64 { return p.Interceptions.Or(0) }, true},
		{WeaknessDefending, "Manque d'interventions défensives", 30, func(p player.Player) float64 { return p.Clearances.Or(0) }, true},
		{WeaknessCreation, "Précision des passes à améliorer", 85, func(p player.Player) float64 { return p.PassCompletionPct.Or(0) }, false},
		{WeaknessDefending, "Duels aériens insuffisants", 60, func(p player.Player) float64 { return p.AerialsWonPct.Or(0) }, false},
	},
	player.PositionGoalkeeper: {
		{WeaknessCreation, "Précision des passes à améliorer", 70, func(p player.Player) float64 { return p.PassCompletionPct.Or(0) }, false},
		{WeaknessCreation, "Distribution limitée", 1000, func(p player.Player) float64 { return p.TotalPassDistance.Or(0) }, true},
	},
}

// DetectWeaknesses evaluates the player's primary-position threshold table
// on a per-90-minute basis, plus contextual finishing and last-pass checks.
// At most maxWeaknesses findings are returned; a clean sheet yields the
// BalancedProfile sentinel.
func DetectWeaknesses(p player.Player) []Weakness {
	minutes := p.Minutes.Or(0)
	if minutes < CohortMinMinutes {
		return []Weakness{{Kind: WeaknessPlayingTime, Message: "Temps de jeu insuffisant"}}
	}

	factor := 90 / minutes
	var out []Weakness
	for _, rule := range weaknessRules[p.PrimaryPosition()] {
		value := rule.value(p)
		if rule.perNinety {
			value *= factor
		}
		if value < rule.threshold {
			out = append(out, Weakness{Kind: rule.kind, Message: rule.message})
		}
	}

	if p.HasPosition(player.PositionForward) {
		if p.Goals.Or(0)*factor < p.ExpectedGoals.Or(0)*factor*0.8 {
			out = append(out, Weakness{Kind: WeaknessShooting, Message: "Finition en-dessous des attentes"})
		}
	}
	if p.HasPosition(player.PositionMidfielder) {
		if p.Assists.Or(0)*factor < p.ExpectedAssists.Or(0)*factor*0.7 {
			out = append(out, Weakness{Kind: WeaknessCreation, Message: "Dernière passe perfectible"})
		}
	}

	if len(out) == 0 {
		return []Weakness{{Kind: WeaknessOther, Message: BalancedProfile}}
	}
	if len(out) > maxWeaknesses {
		out = out[:maxWeaknesses]
	}
	return out
}

var kindSuggestions = map[WeaknessKind]string{
	WeaknessPlayingTime: "Gagner en régularité pour obtenir plus de temps de jeu",
	WeaknessShooting:    "Travailler la finition et le placement dans la surface",
	WeaknessCreation:    "Améliorer la vision de jeu et la précision des passes",
	WeaknessDefending:   "Renforcer le pressing et les duels",
}

var positionSuggestions = map[player.Position]string{
	player.PositionForward:    "Varier les types de courses et améliorer le jeu dos au but",
	player.PositionMidfielder: "Equilibrer contribution offensive et défensive",
	player.PositionDefender:   "Améliorer la relance et le jeu aérien",
}

// ImprovementSuggestions maps detected weaknesses to training suggestions
// keyed by weakness kind, appends the position-specific one, dedupes and
// caps the list at three.
func ImprovementSuggestions(p player.Player, weaknesses []Weakness) []string {
	var out []string
	seen := map[string]struct{}{}
	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, w := range weaknesses {
		add(kindSuggestions[w.Kind])
	}
	add(positionSuggestions[p.PrimaryPosition()])

	if len(out) > 3 {
		out = out[:3]
	}
	if out == nil {
		out = []string{}
	}
	return out
}
