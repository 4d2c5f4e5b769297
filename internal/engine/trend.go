package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/rotomet/rotomet/internal/model"
)

// DetectTrends compares a season valuation run against a recent-window run
// and classifies each player's trajectory. Only players present in both
// score maps are considered; everyone else is skipped outright. The stat
// maps supply games-played counts for the confidence blend.
func DetectTrends(season, recent map[string]model.PlayerZScore, seasonStats, recentStats map[string]model.StatRecord, th Thresholds) model.TrendAnalysis {
	ids := make([]string, 0, len(season))
	for id := range season {
		if _, ok := recent[id]; ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	var analysis model.TrendAnalysis
	for _, id := range ids {
		s, r := season[id], recent[id]
		diff := r.TotalZ - s.TotalZ

		seasonGP := seasonStats[id].GP
		if seasonGP < 1 {
			seasonGP = 1
		}
		recentGP := recentStats[id].GP
		gamesConf := math.Min(100, recentGP/seasonGP*100)
		magConf := math.Min(100, math.Abs(diff)*th.MagnitudeScale)
		confidence := round2(th.GamesWeight*gamesConf + th.MagnitudeWeight*magConf)

		class, reason := classifyTrend(s.TotalZ, r.TotalZ, diff, th)

		rec := model.TrendRecord{
			PlayerID:       id,
			Name:           s.Name,
			SeasonZ:        s.TotalZ,
			RecentZ:        r.TotalZ,
			ZDifference:    round2(diff),
			Confidence:     confidence,
			Classification: class,
			Reason:         reason,
		}
		analysis.All = append(analysis.All, rec)

		switch class {
		case model.TrendBuyLow:
			analysis.BuyLow = append(analysis.BuyLow, rec)
		case model.TrendSellHigh:
			analysis.SellHigh = append(analysis.SellHigh, rec)
		case model.TrendBreakout:
			analysis.Breakouts = append(analysis.Breakouts, rec)
		case model.TrendDecline:
			analysis.Declines = append(analysis.Declines, rec)
		}
	}

	byConfidence := func(recs []model.TrendRecord) {
		sort.SliceStable(recs, func(i, j int) bool { return recs[i].Confidence > recs[j].Confidence })
	}
	byConfidence(analysis.All)
	byConfidence(analysis.BuyLow)
	byConfidence(analysis.SellHigh)
	sort.SliceStable(analysis.Breakouts, func(i, j int) bool {
		return analysis.Breakouts[i].RecentZ > analysis.Breakouts[j].RecentZ
	})
	sort.SliceStable(analysis.Declines, func(i, j int) bool {
		return analysis.Declines[i].RecentZ < analysis.Declines[j].RecentZ
	})
	return analysis
}

// classifyTrend applies the classification rules in priority order; the
// first matching rule wins.
func classifyTrend(seasonZ, recentZ, diff float64, th Thresholds) (string, string) {
	switch {
	case seasonZ > th.BuyLowSeasonMin && diff < th.BuyLowDiffMax:
		return model.TrendBuyLow,
			fmt.Sprintf("established producer (season z %.2f) in a cold stretch (recent z %.2f)", seasonZ, recentZ)
	case seasonZ < th.SellHighSeasonMax && diff > th.SellHighDiffMin:
		return model.TrendSellHigh,
			fmt.Sprintf("weak season baseline (z %.2f) running hot (recent z %.2f)", seasonZ, recentZ)
	case recentZ > seasonZ+th.BreakoutEdge && seasonZ < th.BreakoutSeasonMax:
		return model.TrendBreakout,
			fmt.Sprintf("recent z %.2f is %.2f above a modest season baseline", recentZ, diff)
	case recentZ < seasonZ-th.DeclineEdge && seasonZ > th.DeclineSeasonMin:
		return model.TrendDecline,
			fmt.Sprintf("recent z %.2f is %.2f below the season baseline", recentZ, -diff)
	default:
		return model.TrendNeutral, "recent production tracks the season baseline"
	}
}
