// Package engine is the valuation-and-recommendation core: it turns a
// league's scoring settings and raw per-player stat totals into comparable
// weighted z-scores, then derives trend, streaming, and trade analyses from
// them. Everything in this package is pure computation over materialized
// inputs: no I/O and no retained state between calls.
package engine

// Thresholds is the single policy table for every tunable cutoff the derived
// analyses use. Components take it as an argument so the policy stays
// auditable and testable in isolation.
type Thresholds struct {
	// Trend classification cutoffs.
	BuyLowSeasonMin   float64 // season z above this makes a cold stretch a buy-low
	BuyLowDiffMax     float64 // z difference below this counts as a cold stretch
	SellHighSeasonMax float64 // season z below this makes a hot stretch a sell-high
	SellHighDiffMin   float64 // z difference above this counts as a hot stretch
	BreakoutEdge      float64 // recent z must clear season z by this much
	BreakoutSeasonMax float64 // breakouts only flagged off a modest baseline
	DeclineEdge       float64 // recent z must trail season z by this much
	DeclineSeasonMin  float64 // declines only flagged off an established baseline

	// Trend confidence blend.
	GamesWeight     float64 // weight of the sample-size component
	MagnitudeWeight float64 // weight of the z-difference component
	MagnitudeScale  float64 // z-difference units per confidence point

	// Streaming caps.
	FreeAgentPoolCap  int // free-agent pool size after the z-score sort
	PicksPerHole      int // recommendations offered per open slot
	MaxDayPicks       int // hard cap on recommendations per day
	RosterUpcoming    int // upcoming games shown for rostered players
	CandidateUpcoming int // upcoming games shown for pickup candidates

	// Consistency heuristic buckets.
	UsageHigh     float64 // usage score above this → tightest volatility
	UsageMid      float64
	UsageLow      float64
	CVHighUsage   float64 // base coefficient of variation per usage bucket
	CVMidUsage    float64
	CVLowUsage    float64
	CVMinimal     float64
	SkewScale     float64 // scale of the stat-mix perturbation
	RiskHighCV    float64 // cv above this → High risk
	RiskMediumCV  float64 // cv above this → Medium risk
}

// DefaultThresholds returns the standard policy table.
func DefaultThresholds() Thresholds {
	return Thresholds{
		BuyLowSeasonMin:   0.5,
		BuyLowDiffMax:     -1.5,
		SellHighSeasonMax: -0.5,
		SellHighDiffMin:   1.5,
		BreakoutEdge:      1.0,
		BreakoutSeasonMax: 0.5,
		DeclineEdge:       1.0,
		DeclineSeasonMin:  0.5,

		GamesWeight:     0.6,
		MagnitudeWeight: 0.4,
		MagnitudeScale:  10,

		FreeAgentPoolCap:  200,
		PicksPerHole:      2,
		MaxDayPicks:       5,
		RosterUpcoming:    2,
		CandidateUpcoming: 3,

		UsageHigh:    20,
		UsageMid:     12,
		UsageLow:     6,
		CVHighUsage:  0.15,
		CVMidUsage:   0.22,
		CVLowUsage:   0.35,
		CVMinimal:    0.5,
		SkewScale:    0.05,
		RiskHighCV:   0.4,
		RiskMediumCV: 0.25,
	}
}
