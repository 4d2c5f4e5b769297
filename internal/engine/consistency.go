package engine

import (
	"math"

	"github.com/rotomet/rotomet/internal/model"
)

// EstimateConsistency buckets a player's season line into a volatility
// class. This is an explicit heuristic: the coefficient of variation comes
// from a usage-score lookup perturbed by the player's stat mix, not from a
// measured per-game log. High-usage players get tighter buckets because
// their role, and therefore their night-to-night output, is more stable.
func EstimateConsistency(rec model.StatRecord, th Thresholds) model.ConsistencyEstimate {
	if rec.GP <= 0 {
		return model.ConsistencyEstimate{Risk: model.RiskUnknown}
	}

	ppg := rec.Pts / rec.GP
	rpg := rec.Reb / rec.GP
	apg := rec.Ast / rec.GP
	usage := ppg + 0.5*rpg + 0.7*apg

	var cv float64
	switch {
	case usage > th.UsageHigh:
		cv = th.CVHighUsage
	case usage > th.UsageMid:
		cv = th.CVMidUsage
	case usage > th.UsageLow:
		cv = th.CVLowUsage
	default:
		cv = th.CVMinimal
	}
	cv += math.Abs(ppg-rpg-apg) / math.Max(usage, 1) * th.SkewScale

	risk := model.RiskLow
	switch {
	case cv > th.RiskHighCV:
		risk = model.RiskHigh
	case cv > th.RiskMediumCV:
		risk = model.RiskMedium
	}

	return model.ConsistencyEstimate{
		GamesPlayed: int(rec.GP),
		MeanPPG:     round2(ppg),
		StdDev:      round2(cv * ppg),
		CV:          round2(cv),
		Risk:        risk,
	}
}
