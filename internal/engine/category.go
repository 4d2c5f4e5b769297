package engine

import (
	"sort"

	"github.com/rotomet/rotomet/internal/model"
)

// CategoryKind is how a category's per-player value is computed.
type CategoryKind int

const (
	// KindCounting is a cumulative total divided by games played.
	KindCounting CategoryKind = iota
	// KindPureRatio is an already-averaged ratio used as-is.
	KindPureRatio
	// KindImpact is a percentage category evaluated as volume-weighted
	// make-rate impact rather than raw percentage.
	KindImpact
)

func (k CategoryKind) String() string {
	switch k {
	case KindPureRatio:
		return "ratio"
	case KindImpact:
		return "impact"
	default:
		return "counting"
	}
}

// Category is one active scoring category, resolved and classified once so
// downstream components never re-derive key mappings per player.
type Category struct {
	SettingKey string
	StatKey    string
	Weight     float64
	Kind       CategoryKind
}

// settingToStat resolves league settings keys to canonical stat keys.
// Percentage settings resolve to synthetic calculated_* keys.
var settingToStat = map[string]string{
	"pts":     model.StatPts,
	"reb":     model.StatReb,
	"trb":     model.StatReb,
	"ast":     model.StatAst,
	"stl":     model.StatStl,
	"st":      model.StatStl,
	"blk":     model.StatBlk,
	"blks":    model.StatBlk,
	"to":      model.StatTO,
	"tov":     model.StatTO,
	"fgm":     model.StatFGM,
	"fga":     model.StatFGA,
	"ftm":     model.StatFTM,
	"fta":     model.StatFTA,
	"fg3m":    model.StatFG3M,
	"tpm":     model.StatFG3M,
	"3pm":     model.StatFG3M,
	"fg3a":    model.StatFG3A,
	"tpa":     model.StatFG3A,
	"ast_to":  model.StatAstTO,
	"stl_to":  model.StatStlTO,
	"fg_pct":  model.StatCalcFG,
	"ft_pct":  model.StatCalcFT,
	"fg3_pct": model.StatCalc3PT,
	"3pt_pct": model.StatCalc3PT,
}

// ignoredSettings are settings keys that carry a weight but do not map to a
// tracked stat (bonus and multi-double style awards).
var ignoredSettings = map[string]struct{}{
	"dd":           {},
	"td":           {},
	"qd":           {},
	"bonus_pts_40": {},
	"bonus_pts_50": {},
	"bonus_reb_20": {},
	"bonus_ast_20": {},
}

// ratioStats are canonical keys already expressed as averaged ratios.
var ratioStats = map[string]struct{}{
	model.StatAstTO: {},
	model.StatStlTO: {},
}

// impactStats are the synthetic percentage keys.
var impactStats = map[string]struct{}{
	model.StatCalcFG:  {},
	model.StatCalcFT:  {},
	model.StatCalc3PT: {},
}

// ActiveCategories resolves a league's scoring settings into the ordered list
// of active categories. Zero-weight, ignored, and unresolvable keys are
// excluded; an empty result is a valid league state, not an error. Output is
// sorted by settings key so every downstream result is deterministic.
func ActiveCategories(settings model.ScoringSettings) []Category {
	cats := make([]Category, 0, len(settings))
	for key, weight := range settings {
		if weight == 0 {
			continue
		}
		if _, skip := ignoredSettings[key]; skip {
			continue
		}
		statKey, ok := settingToStat[key]
		if !ok {
			continue
		}
		cats = append(cats, Category{
			SettingKey: key,
			StatKey:    statKey,
			Weight:     weight,
			Kind:       classifyStat(statKey),
		})
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].SettingKey < cats[j].SettingKey })
	return cats
}

func classifyStat(statKey string) CategoryKind {
	if _, ok := impactStats[statKey]; ok {
		return KindImpact
	}
	if _, ok := ratioStats[statKey]; ok {
		return KindPureRatio
	}
	return KindCounting
}
