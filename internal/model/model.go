package model

// Stat windows tracked by the cache. Every analysis runs against exactly one
// window; trend detection compares the two.
const (
	WindowSeason = "season"
	WindowRecent = "recent"
)

// Canonical stat keys. Scoring-settings keys resolve to these via the
// classifier's synonym table.
const (
	StatPts   = "pts"
	StatReb   = "reb"
	StatAst   = "ast"
	StatStl   = "stl"
	StatBlk   = "blk"
	StatTO    = "to"
	StatFGM   = "fgm"
	StatFGA   = "fga"
	StatFTM   = "ftm"
	StatFTA   = "fta"
	StatFG3M  = "fg3m"
	StatFG3A  = "fg3a"
	StatAstTO = "ast_to"
	StatStlTO = "stl_to"

	// Synthetic keys for percentage categories evaluated as volume-weighted
	// impact rather than raw shooting percentage.
	StatCalcFG  = "calculated_fg"
	StatCalcFT  = "calculated_ft"
	StatCalc3PT = "calculated_3pt"
)

// ScoringSettings maps a league scoring category key to its signed weight.
// Zero-weight entries are inactive.
type ScoringSettings map[string]float64

// StatRecord holds one player's raw totals for a single stat window.
// All fields are totals except the ratio stats, which arrive pre-averaged.
type StatRecord struct {
	GP    float64
	Pts   float64
	Reb   float64
	Ast   float64
	Stl   float64
	Blk   float64
	TOV   float64
	FGM   float64
	FGA   float64
	FTM   float64
	FTA   float64
	FG3M  float64
	FG3A  float64
	AstTO float64
	StlTO float64
}

// Value returns the raw total for a canonical stat key. Unknown keys are 0.
func (s *StatRecord) Value(statKey string) float64 {
	switch statKey {
	case StatPts:
		return s.Pts
	case StatReb:
		return s.Reb
	case StatAst:
		return s.Ast
	case StatStl:
		return s.Stl
	case StatBlk:
		return s.Blk
	case StatTO:
		return s.TOV
	case StatFGM:
		return s.FGM
	case StatFGA:
		return s.FGA
	case StatFTM:
		return s.FTM
	case StatFTA:
		return s.FTA
	case StatFG3M:
		return s.FG3M
	case StatFG3A:
		return s.FG3A
	case StatAstTO:
		return s.AstTO
	case StatStlTO:
		return s.StlTO
	default:
		return 0
	}
}

// MadeAttempted returns the made/attempted totals backing a synthetic
// percentage key. Unknown keys return (0, 0).
func (s *StatRecord) MadeAttempted(statKey string) (made, attempted float64) {
	switch statKey {
	case StatCalcFG:
		return s.FGM, s.FGA
	case StatCalcFT:
		return s.FTM, s.FTA
	case StatCalc3PT:
		return s.FG3M, s.FG3A
	default:
		return 0, 0
	}
}

// StatRecordFromMap builds a StatRecord from a loosely-keyed provider stat
// line. Absent or non-mapped keys coerce to 0; it never fails.
func StatRecordFromMap(m map[string]float64) StatRecord {
	get := func(keys ...string) float64 {
		for _, k := range keys {
			if v, ok := m[k]; ok {
				return v
			}
		}
		return 0
	}
	return StatRecord{
		GP:    get("gp"),
		Pts:   get("pts"),
		Reb:   get("reb"),
		Ast:   get("ast"),
		Stl:   get("stl", "st"),
		Blk:   get("blk"),
		TOV:   get("to", "tov"),
		FGM:   get("fgm"),
		FGA:   get("fga"),
		FTM:   get("ftm"),
		FTA:   get("fta"),
		FG3M:  get("fg3m", "tpm", "3pm"),
		FG3A:  get("fg3a", "tpa", "3pa"),
		AstTO: get("ast_to"),
		StlTO: get("stl_to"),
	}
}

// Roster is one team in the league.
type Roster struct {
	RosterID  int
	OwnerID   string
	OwnerName string
	Players   []string
	Starters  []string
}

// PlayerSet returns the roster's player ids as a set.
func (r *Roster) PlayerSet() map[string]struct{} {
	set := make(map[string]struct{}, len(r.Players))
	for _, id := range r.Players {
		set[id] = struct{}{}
	}
	return set
}

// MatchupStarters is the starters list for one roster in the current
// matchup week, when the platform exposes it.
type MatchupStarters struct {
	RosterID int
	Starters []string
}

// PlayerMeta is directory data for one NBA player.
type PlayerMeta struct {
	PlayerID     string
	FullName     string
	FirstName    string
	LastName     string
	SearchName   string
	Team         string
	Position     string
	InjuryStatus string
}

// DisplayName resolves a printable name: full name, then first+last, then
// search name, then the raw player id.
func (p *PlayerMeta) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	if p.FirstName != "" || p.LastName != "" {
		if p.FirstName == "" {
			return p.LastName
		}
		if p.LastName == "" {
			return p.FirstName
		}
		return p.FirstName + " " + p.LastName
	}
	if p.SearchName != "" {
		return p.SearchName
	}
	return p.PlayerID
}

// LeagueInfo is the cached league configuration.
type LeagueInfo struct {
	LeagueID        string
	Name            string
	Season          string
	Scoring         ScoringSettings
	RosterPositions []string
	FetchedAt       string
}

// GameSummary is one scheduled NBA game.
type GameSummary struct {
	GameID   string
	Date     string // YYYY-MM-DD
	Tipoff   string // RFC 3339 when known
	HomeTeam string
	AwayTeam string
	Status   string
}

// ScheduleDay groups the games tipping off on one calendar date.
type ScheduleDay struct {
	Date         string // YYYY-MM-DD
	TeamsPlaying []string
	Games        []GameSummary
}

// ---- Analysis outputs ----

// PlayerZScore is one player's valuation under a league's scoring settings:
// a weighted z contribution per active category and the aggregate total.
type PlayerZScore struct {
	PlayerID string
	Name     string
	// Scores holds per-category weighted z values keyed by settings key,
	// rounded to 2 decimals for display.
	Scores map[string]float64
	// TotalZ is the sum of the unrounded per-category values, rounded once.
	TotalZ float64
}

// Trend classification labels.
const (
	TrendBuyLow   = "BUY_LOW"
	TrendSellHigh = "SELL_HIGH"
	TrendBreakout = "BREAKOUT"
	TrendDecline  = "DECLINE"
	TrendNeutral  = "NEUTRAL"
)

// TrendRecord classifies one player's recent trajectory against their
// season baseline.
type TrendRecord struct {
	PlayerID       string
	Name           string
	SeasonZ        float64
	RecentZ        float64
	ZDifference    float64
	Confidence     float64 // 0–100
	Classification string
	Reason         string
}

// TrendAnalysis bundles all trend records with the category-filtered,
// pre-sorted sublists consumers act on.
type TrendAnalysis struct {
	All       []TrendRecord
	BuyLow    []TrendRecord
	SellHigh  []TrendRecord
	Breakouts []TrendRecord
	Declines  []TrendRecord
}

// RosterDayPlayer is one of the target roster's players on a schedule day.
type RosterDayPlayer struct {
	PlayerID string
	Name     string
	Team     string
	TotalZ   float64
	Starter  bool
	Upcoming []GameSummary
}

// StreamCandidate is a recommended free-agent pickup for a schedule day.
type StreamCandidate struct {
	PlayerID string
	Name     string
	Team     string
	TotalZ   float64
	Reason   string
	Upcoming []GameSummary
}

// StreamingDayPlan is the lineup-gap analysis for one calendar date.
type StreamingDayPlan struct {
	Date            string
	Playing         []RosterDayPlayer
	Holes           int
	Recommendations []StreamCandidate
}

// StreamingPlan is the full multi-day streaming analysis for one roster.
type StreamingPlan struct {
	ActiveSlots int
	BenchSlots  int
	RosterSize  int
	Days        []StreamingDayPlan
}

// TradeRecommendation ranks one opposing player by the signed differential
// between a needed and a spare category.
type TradeRecommendation struct {
	PlayerID   string
	Name       string
	RosterID   int
	OwnerName  string
	NeedZ      float64
	SpareZ     float64
	TradeScore float64
}

// Consistency risk labels.
const (
	RiskHigh    = "High"
	RiskMedium  = "Medium"
	RiskLow     = "Low"
	RiskUnknown = "N/A"
)

// ConsistencyEstimate is a volatility bucket for one player's season line.
// It is a heuristic derived from usage, not a measured per-game deviation.
type ConsistencyEstimate struct {
	GamesPlayed int
	MeanPPG     float64
	StdDev      float64
	CV          float64
	Risk        string
}
