package engine

import (
	"math"

	"github.com/rotomet/rotomet/internal/model"
)

// ComputeZScores computes every population player's weighted z-score per
// active category and the aggregate total. A negative category weight flips
// the sign so a positive z always means "favorable under this league's
// rules"; the magnitude then scales the contribution. Per-category values
// are rounded to 2 decimals for display, but the total sums the unrounded
// values and rounds exactly once.
func ComputeZScores(cats []Category, pop []PopulationEntry, baselines map[string]Baseline, meta map[string]model.PlayerMeta) map[string]model.PlayerZScore {
	scores := make(map[string]model.PlayerZScore, len(pop))
	for i := range pop {
		entry := &pop[i]
		perCat := make(map[string]float64, len(cats))
		total := 0.0
		for _, cat := range cats {
			b, ok := baselines[cat.SettingKey]
			if !ok {
				continue
			}
			value := categoryValue(cat, &entry.Stats, b.LeagueAvgPct)
			rawZ := (value - b.Mean) / b.Std
			if cat.Weight < 0 {
				rawZ = -rawZ
			}
			z := rawZ * math.Abs(cat.Weight)
			perCat[cat.SettingKey] = round2(z)
			total += z
		}
		scores[entry.PlayerID] = model.PlayerZScore{
			PlayerID: entry.PlayerID,
			Name:     resolveName(entry.PlayerID, meta),
			Scores:   perCat,
			TotalZ:   round2(total),
		}
	}
	return scores
}

// Evaluate runs the full valuation pipeline: classify the scoring settings,
// build the qualifying population, compute baselines, and score every
// player. Empty settings or an empty population yield an empty map.
func Evaluate(settings model.ScoringSettings, rosters []model.Roster, stats map[string]model.StatRecord, meta map[string]model.PlayerMeta) map[string]model.PlayerZScore {
	cats := ActiveCategories(settings)
	if len(cats) == 0 {
		return map[string]model.PlayerZScore{}
	}
	pop := BuildPopulation(rosters, stats)
	baselines := ComputeBaselines(cats, pop)
	return ComputeZScores(cats, pop, baselines, meta)
}

func resolveName(playerID string, meta map[string]model.PlayerMeta) string {
	if m, ok := meta[playerID]; ok {
		return m.DisplayName()
	}
	return playerID
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
