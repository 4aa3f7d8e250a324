package scouting

import (
	"fmt"
	"math"
	"strings"

	"github.com/scoutlens/scoutlens/internal/domain/player"
)

// ProgressionArea is one development axis identified for a player.
type ProgressionArea struct {
	Domain         string `json:"domain"`
	CurrentLevel   string `json:"currentLevel"`
	Potential      string `json:"potential"`
	Timeline       string `json:"timeline"`
	Recommendation string `json:"recommendation"`
}

// ProgressionTimeline buckets areas by expected horizon. Areas with a
// horizon outside the three named windows appear only in the flat list.
type ProgressionTimeline struct {
	ShortTerm  []ProgressionArea `json:"shortTerm"`
	MediumTerm []ProgressionArea `json:"mediumTerm"`
	LongTerm   []ProgressionArea `json:"longTerm"`
}

// MarketOutlook projects value growth if the identified areas convert.
type MarketOutlook struct {
	Current       int64 `json:"current"`
	Projected     int64 `json:"projected"`
	PotentialGain int64 `json:"potentialGain"`
}

// Progression is the full development outlook for a player.
type Progression struct {
	Areas          []ProgressionArea   `json:"progressionAreas"`
	Timeline       ProgressionTimeline `json:"timeline"`
	MarketValue    MarketOutlook       `json:"marketValue"`
	RiskFactors    []string            `json:"riskFactors"`
	Recommendation string              `json:"recommendation"`
}

const (
	potentialVeryHigh = "Très élevé"
	potentialHigh     = "Élevé"
	potentialMedium   = "Moyen"
)

var bigClubs = []string{
	"Arsenal", "Manchester City", "Liverpool", "Chelsea",
	"Real Madrid", "Barcelona", "Bayern Munich", "PSG",
}

var prestigiousClubs = []string{
	"Arsenal", "Manchester City", "Liverpool", "Chelsea", "Tottenham",
	"Real Madrid", "Barcelona", "Atletico Madrid", "Bayern Munich",
	"PSG", "Manchester United", "Juventus", "AC Milan", "Inter Milan",
}

func teamMatchesAny(team string, clubs []string) bool {
	for _, club := range clubs {
		if strings.Contains(team, club) {
			return true
		}
	}
	return false
}

// AnalyzeProgression derives development areas, a horizon timeline, a
// market outlook and risk factors from the season snapshot. Percentiles
// must come from the player's own positional cohort.
func AnalyzeProgression(p player.Player, percentiles map[string]int) Progression {
	age := p.Age.Or(25)
	minutes := p.Minutes.Or(0)
	matches := p.MatchesPlayed.Or(0)
	goals := p.Goals.Or(0)
	assists := p.Assists.Or(0)

	var areas []ProgressionArea

	if p.HasPosition(player.PositionForward) || p.HasPosition(player.PositionMidfielder) {
		goalsPerGame := 0.0
		if matches > 0 {
			goalsPerGame = goals / matches
		}
		if goalsPerGame < 0.3 && percentiles["xG"] > 60 {
			areas = append(areas, ProgressionArea{
				Domain:         "Finition et efficacité",
				CurrentLevel:   fmt.Sprintf("%.2f but/match (peut mieux faire)", goalsPerGame),
				Potential:      potentialVeryHigh,
				Timeline:       "3-6 mois",
				Recommendation: "Travail spécifique de finition, exercices devant le but, analyse vidéo des occasions manquées",
			})
		}

		assistsPerGame := 0.0
		if matches > 0 {
			assistsPerGame = assists / matches
		}
		if assistsPerGame < 0.25 && percentiles["progressivePasses"] < 70 {
			areas = append(areas, ProgressionArea{
				Domain:         "Création et passes décisives",
				CurrentLevel:   fmt.Sprintf("%.2f passe/match", assistsPerGame),
				Potential:      potentialHigh,
				Timeline:       "6-12 mois",
				Recommendation: "Améliorer la vision de jeu, travail sur les centres et passes dans la surface",
			})
		}
	}

	if minutes < 2000 && age < 26 {
		areas = append(areas, ProgressionArea{
			Domain:         "Temps de jeu et titularisation",
			CurrentLevel:   fmt.Sprintf("%.0f minutes cette saison", minutes),
			Potential:      potentialHigh,
			Timeline:       "6-18 mois",
			Recommendation: "Améliorer la condition physique, montrer plus de polyvalence tactique",
		})
	}

	if age < 24 {
		areas = append(areas, ProgressionArea{
			Domain:         "Développement physique et maturité",
			CurrentLevel:   fmt.Sprintf("%.0f ans - En développement", age),
			Potential:      potentialVeryHigh,
			Timeline:       "12-24 mois",
			Recommendation: "Programme physique adapté, gain en puissance et endurance",
		})
	}

	if !teamMatchesAny(p.Team, bigClubs) && age < 27 {
		areas = append(areas, ProgressionArea{
			Domain:         "Progression vers un club de top niveau",
			CurrentLevel:   fmt.Sprintf("Actuellement à %s", p.Team),
			Potential:      potentialHigh,
			Timeline:       "12-36 mois",
			Recommendation: "Maintenir le niveau, viser les compétitions européennes",
		})
	}

	if percentiles["tackles"] < 40 && !p.HasPosition(player.PositionGoalkeeper) {
		areas = append(areas, ProgressionArea{
			Domain:         "Contribution défensive",
			CurrentLevel:   "Faible implication défensive",
			Potential:      potentialMedium,
			Timeline:       "6-12 mois",
			Recommendation: "Améliorer le pressing et le repli défensif",
		})
	}

	current := estimatePotentialValue(p, percentiles)
	projected := projectValue(current, age, areas)

	return Progression{
		Areas:          areas,
		Timeline:       bucketByTimeline(areas),
		MarketValue:    MarketOutlook{Current: current, Projected: projected, PotentialGain: projected - current},
		RiskFactors:    identifyRiskFactors(p),
		Recommendation: progressionRecommendation(p),
	}
}

func bucketByTimeline(areas []ProgressionArea) ProgressionTimeline {
	tl := ProgressionTimeline{
		ShortTerm:  []ProgressionArea{},
		MediumTerm: []ProgressionArea{},
		LongTerm:   []ProgressionArea{},
	}
	for _, area := range areas {
		switch area.Timeline {
		case "3-6 mois":
			tl.ShortTerm = append(tl.ShortTerm, area)
		case "6-12 mois":
			tl.MediumTerm = append(tl.MediumTerm, area)
		case "12-24 mois":
			tl.LongTerm = append(tl.LongTerm, area)
		}
	}
	return tl
}

// estimatePotentialValue is the percentile-driven valuation used only for
// the progression outlook. It is intentionally separate from the
// transfer-market estimator in the valuation package.
func estimatePotentialValue(p player.Player, percentiles map[string]int) int64 {
	age := p.Age.Or(25)
	goals := p.Goals.Or(0)
	assists := p.Assists.Or(0)
	minutes := p.Minutes.Or(0)

	avg := 0.0
	if len(percentiles) > 0 {
		sum := 0
		for _, v := range percentiles {
			sum += v
		}
		avg = float64(sum) / float64(len(percentiles))
	}

	value := 5_000_000 * math.Max(0.3, avg/50)

	switch {
	case goals >= 15:
		value *= 1.8
	case goals >= 10:
		value *= 1.4
	case goals >= 5:
		value *= 1.2
	}

	switch {
	case assists >= 10:
		value *= 1.6
	case assists >= 5:
		value *= 1.3
	}

	switch {
	case minutes >= 2500:
		value *= 1.3
	case minutes >= 1800:
		value *= 1.1
	}

	switch {
	case age < 20:
		value *= 2.0
	case age < 23:
		value *= 1.7
	case age < 26:
		value *= 1.3
	case age < 30:
		value *= 1.0
	case age < 33:
		value *= 0.7
	default:
		value *= 0.4
	}

	league := p.Competition
	switch {
	case strings.Contains(league, "Premier League"):
		value *= 3.5
	case strings.Contains(league, "La Liga"), strings.Contains(league, "Serie A"), strings.Contains(league, "Bundesliga"):
		value *= 2.8
	case strings.Contains(league, "Ligue 1"):
		value *= 2.2
	case strings.Contains(league, "Primeira Liga"), strings.Contains(league, "Eredivisie"):
		value *= 1.8
	default:
		value *= 1.2
	}

	switch p.PrimaryPosition() {
	case player.PositionForward:
		value *= 1.4
	case player.PositionMidfielder:
		if goals >= 8 || assists >= 8 {
			value *= 1.3
		}
	case player.PositionDefender:
		if percentiles["tackles"] > 70 {
			value *= 1.1
		}
	}

	if teamMatchesAny(p.Team, prestigiousClubs) {
		value *= 1.5
	}

	return int64(math.Round(value/500_000)) * 500_000
}

func projectValue(current int64, age float64, areas []ProgressionArea) int64 {
	multiplier := 1.0
	for _, area := range areas {
		if area.Potential == potentialVeryHigh || area.Potential == potentialHigh {
			multiplier += 0.3
		}
	}

	switch {
	case age < 23:
		multiplier += 0.5
	case age < 26:
		multiplier += 0.2
	case age > 29:
		multiplier -= 0.1
	}

	return int64(math.Round(float64(current)*multiplier/100_000)) * 100_000
}

func identifyRiskFactors(p player.Player) []string {
	age := p.Age.Or(25)
	minutes := p.Minutes.Or(0)

	risks := []string{}
	if age > 29 {
		risks = append(risks, "Âge - Déclin physique potentiel")
	}
	if p.YellowCards.Or(0) > 8 {
		risks = append(risks, "Discipline - Cartons jaunes fréquents")
	}
	if p.RedCards.Or(0) > 1 {
		risks = append(risks, "Discipline - Cartons rouges")
	}
	if minutes < 1000 {
		risks = append(risks, "Temps de jeu limité cette saison")
	}
	if injuryRisk(age, minutes) > 0.3 {
		risks = append(risks, "Risque de blessure modéré")
	}
	return risks
}

// injuryRisk is a coarse heuristic from age and season load. Both very
// high and very low minute totals raise it.
func injuryRisk(age, minutes float64) float64 {
	risk := 0.0
	if age > 30 {
		risk += 0.2
	}
	if minutes > 2500 {
		risk += 0.1
	}
	if minutes < 500 {
		risk += 0.1
	}
	return math.Min(1, risk)
}

func progressionRecommendation(p player.Player) string {
	age := p.Age.Or(25)
	switch {
	case age < 21:
		return "Joueur en développement avec un potentiel élevé. Focus sur la formation complète et l'accumulation d'expérience."
	case age < 25:
		return fmt.Sprintf("Période critique pour %s. Développement ciblé des faiblesses identifiées et consolidation des forces.", p.PrimaryPosition())
	case age < 29:
		return "Joueur mature. Optimisation des performances et adaptation tactique selon les besoins de l'équipe."
	default:
		return "Joueur expérimenté. Gestion de la charge et valorisation de l'expérience pour guider les jeunes."
	}
}
