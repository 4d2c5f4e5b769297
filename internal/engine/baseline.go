package engine

import (
	"math"

	"github.com/rotomet/rotomet/internal/model"
)

// Baseline is the normalization reference for one active category: the
// population mean and standard deviation of the category's per-player
// values, plus the league-wide make-rate for impact categories.
type Baseline struct {
	Category     Category
	Mean         float64
	Std          float64
	LeagueAvgPct float64
}

// ComputeBaselines computes one Baseline per active category over the
// qualifying population, keyed by settings key. Two settings keys resolving
// to the same stat get independent baselines, mirroring their independent
// weights. A zero standard deviation is floored to 1 so z-scores stay
// bounded; a zero-attempt impact category gets a 0 league make-rate.
func ComputeBaselines(cats []Category, pop []PopulationEntry) map[string]Baseline {
	baselines := make(map[string]Baseline, len(cats))
	for _, cat := range cats {
		leagueAvgPct := 0.0
		if cat.Kind == KindImpact {
			var made, attempted float64
			for i := range pop {
				m, a := pop[i].Stats.MadeAttempted(cat.StatKey)
				made += m
				attempted += a
			}
			if attempted > 0 {
				leagueAvgPct = made / attempted
			}
		}

		values := make([]float64, len(pop))
		for i := range pop {
			values[i] = categoryValue(cat, &pop[i].Stats, leagueAvgPct)
		}

		mean, std := meanStd(values)
		if std == 0 {
			std = 1
		}
		baselines[cat.SettingKey] = Baseline{
			Category:     cat,
			Mean:         mean,
			Std:          std,
			LeagueAvgPct: leagueAvgPct,
		}
	}
	return baselines
}

// categoryValue computes a player's comparable value for one category.
// Counting stats are per-game, ratios are used as-is, and impact stats are
// the per-game makes above league expectation at the player's volume.
func categoryValue(cat Category, rec *model.StatRecord, leagueAvgPct float64) float64 {
	switch cat.Kind {
	case KindImpact:
		if rec.GP <= 0 {
			return 0
		}
		made, attempted := rec.MadeAttempted(cat.StatKey)
		return made/rec.GP - (attempted/rec.GP)*leagueAvgPct
	case KindPureRatio:
		return rec.Value(cat.StatKey)
	default:
		if rec.GP <= 0 {
			return 0
		}
		return rec.Value(cat.StatKey) / rec.GP
	}
}

// meanStd returns the arithmetic mean and population standard deviation.
func meanStd(values []float64) (mean, std float64) {
	n := float64(len(values))
	if n == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= n

	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return mean, math.Sqrt(sumSq / n)
}
