package engine

import (
	"testing"

	"github.com/rotomet/rotomet/internal/model"
)

// TestConsistency_NoGames: zero games played reports N/A with zeroed
// mean/std/cv instead of computing anything.
func TestConsistency_NoGames(t *testing.T) {
	est := EstimateConsistency(model.StatRecord{GP: 0, Pts: 100}, DefaultThresholds())
	if est.Risk != model.RiskUnknown {
		t.Errorf("risk: want %q, got %q", model.RiskUnknown, est.Risk)
	}
	if est.MeanPPG != 0 || est.StdDev != 0 || est.CV != 0 {
		t.Errorf("want zeroed estimate, got %+v", est)
	}
}

// TestConsistency_Buckets: usage score picks the base volatility bucket and
// the stat-mix perturbation nudges it before the risk cutoffs apply.
func TestConsistency_Buckets(t *testing.T) {
	cases := []struct {
		name     string
		rec      model.StatRecord
		wantRisk string
	}{
		{
			// 25 ppg / 5 rpg / 5 apg → usage 31 → cv 0.15 + 15/31×0.05 ≈ 0.17.
			name:     "high usage star",
			rec:      model.StatRecord{GP: 10, Pts: 250, Reb: 50, Ast: 50},
			wantRisk: model.RiskLow,
		},
		{
			// 6 ppg / 2 rpg / 1 apg → usage 7.7 → cv 0.35 + 3/7.7×0.05 ≈ 0.37.
			name:     "rotation player",
			rec:      model.StatRecord{GP: 10, Pts: 60, Reb: 20, Ast: 10},
			wantRisk: model.RiskMedium,
		},
		{
			// 4 ppg / 1 rpg / 1 apg → usage 5.2 → cv 0.5 + 2/5.2×0.05 ≈ 0.52.
			name:     "deep bench",
			rec:      model.StatRecord{GP: 10, Pts: 40, Reb: 10, Ast: 10},
			wantRisk: model.RiskHigh,
		},
	}
	for _, c := range cases {
		est := EstimateConsistency(c.rec, DefaultThresholds())
		if est.Risk != c.wantRisk {
			t.Errorf("%s: want risk %s, got %s (cv=%.3f)", c.name, c.wantRisk, est.Risk, est.CV)
		}
	}
}

// TestConsistency_Values: the reported mean is points per game and σ is
// cv × ppg.
func TestConsistency_Values(t *testing.T) {
	est := EstimateConsistency(model.StatRecord{GP: 10, Pts: 250, Reb: 50, Ast: 50}, DefaultThresholds())
	if est.GamesPlayed != 10 {
		t.Errorf("games: want 10, got %d", est.GamesPlayed)
	}
	if est.MeanPPG != 25.0 {
		t.Errorf("mean: want 25.0, got %f", est.MeanPPG)
	}
	if est.StdDev <= 0 || est.CV <= 0 {
		t.Errorf("positive estimate expected, got std=%f cv=%f", est.StdDev, est.CV)
	}
}
