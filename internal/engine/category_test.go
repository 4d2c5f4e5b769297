package engine

import (
	"testing"

	"github.com/rotomet/rotomet/internal/model"
)

// TestActiveCategories_Classification: settings keys resolve through the
// synonym table and land in the right computation kind.
func TestActiveCategories_Classification(t *testing.T) {
	cats := ActiveCategories(model.ScoringSettings{
		"pts":     1,
		"st":      2,
		"to":      -1,
		"fg_pct":  1.5,
		"ast_to":  1,
		"fg3_pct": 0.5,
	})

	want := map[string]struct {
		statKey string
		kind    CategoryKind
	}{
		"pts":     {model.StatPts, KindCounting},
		"st":      {model.StatStl, KindCounting},
		"to":      {model.StatTO, KindCounting},
		"fg_pct":  {model.StatCalcFG, KindImpact},
		"ast_to":  {model.StatAstTO, KindPureRatio},
		"fg3_pct": {model.StatCalc3PT, KindImpact},
	}
	if len(cats) != len(want) {
		t.Fatalf("expected %d categories, got %d: %+v", len(want), len(cats), cats)
	}
	for _, c := range cats {
		w, ok := want[c.SettingKey]
		if !ok {
			t.Errorf("unexpected category %q", c.SettingKey)
			continue
		}
		if c.StatKey != w.statKey {
			t.Errorf("%s: want stat key %q, got %q", c.SettingKey, w.statKey, c.StatKey)
		}
		if c.Kind != w.kind {
			t.Errorf("%s: want kind %v, got %v", c.SettingKey, w.kind, c.Kind)
		}
	}
}

// TestActiveCategories_Exclusions: zero weights, ignore-listed keys, and
// keys with no stat mapping are all absent from the output.
func TestActiveCategories_Exclusions(t *testing.T) {
	cats := ActiveCategories(model.ScoringSettings{
		"pts":          0,
		"dd":           3,
		"td":           5,
		"bonus_pts_40": 2,
		"mystery_stat": 4,
		"reb":          1,
	})
	if len(cats) != 1 {
		t.Fatalf("expected only reb to survive, got %+v", cats)
	}
	if cats[0].SettingKey != "reb" {
		t.Errorf("want reb, got %q", cats[0].SettingKey)
	}
}

// TestActiveCategories_Empty: no settings (or all-zero) is a valid league
// state yielding an empty list, not an error.
func TestActiveCategories_Empty(t *testing.T) {
	if got := ActiveCategories(model.ScoringSettings{}); len(got) != 0 {
		t.Errorf("empty settings: want no categories, got %+v", got)
	}
	if got := ActiveCategories(model.ScoringSettings{"pts": 0, "reb": 0}); len(got) != 0 {
		t.Errorf("all-zero settings: want no categories, got %+v", got)
	}
}

// TestActiveCategories_Ordered: output is sorted by settings key regardless
// of map iteration order.
func TestActiveCategories_Ordered(t *testing.T) {
	cats := ActiveCategories(model.ScoringSettings{"to": -1, "ast": 1, "pts": 1, "blk": 1})
	wantOrder := []string{"ast", "blk", "pts", "to"}
	for i, key := range wantOrder {
		if cats[i].SettingKey != key {
			t.Fatalf("position %d: want %q, got %q", i, key, cats[i].SettingKey)
		}
	}
}
