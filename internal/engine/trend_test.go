package engine

import (
	"testing"

	"github.com/rotomet/rotomet/internal/model"
)

// zEntry builds a PlayerZScore with just the fields trend detection reads.
func zEntry(id string, totalZ float64) model.PlayerZScore {
	return model.PlayerZScore{PlayerID: id, Name: id, TotalZ: totalZ}
}

// gpMap builds a stats map carrying only games played.
func gpMap(games map[string]float64) map[string]model.StatRecord {
	out := make(map[string]model.StatRecord, len(games))
	for id, gp := range games {
		out[id] = model.StatRecord{GP: gp}
	}
	return out
}

func detectOne(t *testing.T, seasonZ, recentZ float64) model.TrendRecord {
	t.Helper()
	season := map[string]model.PlayerZScore{"p1": zEntry("p1", seasonZ)}
	recent := map[string]model.PlayerZScore{"p1": zEntry("p1", recentZ)}
	a := DetectTrends(season, recent,
		gpMap(map[string]float64{"p1": 40}),
		gpMap(map[string]float64{"p1": 6}),
		DefaultThresholds())
	if len(a.All) != 1 {
		t.Fatalf("expected 1 trend record, got %d", len(a.All))
	}
	return a.All[0]
}

// TestTrend_BuyLow: season z 1.0 dropping to recent z −1.0 is a buy-low.
func TestTrend_BuyLow(t *testing.T) {
	rec := detectOne(t, 1.0, -1.0)
	if rec.Classification != model.TrendBuyLow {
		t.Errorf("want BUY_LOW, got %s", rec.Classification)
	}
	if rec.ZDifference != -2.0 {
		t.Errorf("zDifference: want -2.0, got %f", rec.ZDifference)
	}
}

// TestTrend_SellHigh: season z −1.0 spiking to recent z 1.0 is a sell-high.
func TestTrend_SellHigh(t *testing.T) {
	rec := detectOne(t, -1.0, 1.0)
	if rec.Classification != model.TrendSellHigh {
		t.Errorf("want SELL_HIGH, got %s", rec.Classification)
	}
}

// TestTrend_BreakoutAndDecline: the third and fourth rules fire only when
// the first two do not.
func TestTrend_BreakoutAndDecline(t *testing.T) {
	if rec := detectOne(t, 0.2, 1.5); rec.Classification != model.TrendBreakout {
		t.Errorf("modest baseline +1.3: want BREAKOUT, got %s", rec.Classification)
	}
	if rec := detectOne(t, 1.2, 0.1); rec.Classification != model.TrendDecline {
		t.Errorf("established baseline -1.1: want DECLINE, got %s", rec.Classification)
	}
	if rec := detectOne(t, 0.3, 0.5); rec.Classification != model.TrendNeutral {
		t.Errorf("small move: want NEUTRAL, got %s", rec.Classification)
	}
}

// TestTrend_SkipsMissingPlayers: a player present only in the season run
// yields no trend record at all.
func TestTrend_SkipsMissingPlayers(t *testing.T) {
	season := map[string]model.PlayerZScore{
		"p1": zEntry("p1", 1.0),
		"p2": zEntry("p2", 2.0),
	}
	recent := map[string]model.PlayerZScore{
		"p1": zEntry("p1", 1.1),
	}
	a := DetectTrends(season, recent,
		gpMap(map[string]float64{"p1": 40, "p2": 40}),
		gpMap(map[string]float64{"p1": 6}),
		DefaultThresholds())
	if len(a.All) != 1 {
		t.Fatalf("expected only p1, got %d records", len(a.All))
	}
	if a.All[0].PlayerID != "p1" {
		t.Errorf("want p1, got %s", a.All[0].PlayerID)
	}
}

// TestTrend_Confidence: 5 recent of 20 season games and a −2.0 swing blend
// to 0.6×25 + 0.4×20 = 23.
func TestTrend_Confidence(t *testing.T) {
	season := map[string]model.PlayerZScore{"p1": zEntry("p1", 1.0)}
	recent := map[string]model.PlayerZScore{"p1": zEntry("p1", -1.0)}
	a := DetectTrends(season, recent,
		gpMap(map[string]float64{"p1": 20}),
		gpMap(map[string]float64{"p1": 5}),
		DefaultThresholds())
	if got := a.All[0].Confidence; got != 23.0 {
		t.Errorf("confidence: want 23.0, got %f", got)
	}
}

// TestTrend_ConfidenceCaps: both components cap at 100 before blending.
func TestTrend_ConfidenceCaps(t *testing.T) {
	season := map[string]model.PlayerZScore{"p1": zEntry("p1", 20.0)}
	recent := map[string]model.PlayerZScore{"p1": zEntry("p1", -20.0)}
	a := DetectTrends(season, recent,
		gpMap(map[string]float64{"p1": 3}),
		gpMap(map[string]float64{"p1": 10}),
		DefaultThresholds())
	if got := a.All[0].Confidence; got != 100.0 {
		t.Errorf("confidence: want capped 100, got %f", got)
	}
}

// TestTrend_GroupSorting: buy-lows sort by descending confidence, breakouts
// by descending recent z, declines by ascending recent z.
func TestTrend_GroupSorting(t *testing.T) {
	season := map[string]model.PlayerZScore{
		"bl1": zEntry("bl1", 1.0),
		"bl2": zEntry("bl2", 1.0),
		"bo1": zEntry("bo1", 0.1),
		"bo2": zEntry("bo2", 0.1),
		"dc1": zEntry("dc1", 2.0),
		"dc2": zEntry("dc2", 2.0),
	}
	recent := map[string]model.PlayerZScore{
		"bl1": zEntry("bl1", -1.0), // diff -2.0
		"bl2": zEntry("bl2", -3.0), // diff -4.0 → higher magnitude confidence
		"bo1": zEntry("bo1", 1.5),
		"bo2": zEntry("bo2", 2.5),
		"dc1": zEntry("dc1", 0.9),
		"dc2": zEntry("dc2", 0.7), // diff -1.3 stays a decline, not a buy-low
	}
	games := map[string]float64{"bl1": 40, "bl2": 40, "bo1": 40, "bo2": 40, "dc1": 40, "dc2": 40}
	recentGames := map[string]float64{"bl1": 6, "bl2": 6, "bo1": 6, "bo2": 6, "dc1": 6, "dc2": 6}

	a := DetectTrends(season, recent, gpMap(games), gpMap(recentGames), DefaultThresholds())

	if len(a.BuyLow) != 2 || a.BuyLow[0].PlayerID != "bl2" {
		t.Errorf("buy-low order: want bl2 first (larger swing), got %+v", a.BuyLow)
	}
	if len(a.Breakouts) != 2 || a.Breakouts[0].PlayerID != "bo2" {
		t.Errorf("breakout order: want bo2 first (higher recent z), got %+v", a.Breakouts)
	}
	if len(a.Declines) != 2 || a.Declines[0].PlayerID != "dc2" {
		t.Errorf("decline order: want dc2 first (lowest recent z), got %+v", a.Declines)
	}
}
