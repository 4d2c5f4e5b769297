package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotomet/rotomet/internal/engine"
	"github.com/rotomet/rotomet/internal/model"
	"github.com/rotomet/rotomet/internal/storage"
)

// engineThresholds applies any config-file overrides on top of the engine
// defaults.
func engineThresholds() engine.Thresholds {
	th := engine.DefaultThresholds()
	o := cfg.Thresholds
	if o.BuyLowDiff != nil {
		th.BuyLowDiffMax = *o.BuyLowDiff
	}
	if o.SellHighDiff != nil {
		th.SellHighDiffMin = *o.SellHighDiff
	}
	if o.BreakoutEdge != nil {
		th.BreakoutEdge = *o.BreakoutEdge
	}
	if o.DeclineEdge != nil {
		th.DeclineEdge = *o.DeclineEdge
	}
	if o.FreeAgentPoolCap != nil {
		th.FreeAgentPoolCap = *o.FreeAgentPoolCap
	}
	if o.MaxDayPicks != nil {
		th.MaxDayPicks = *o.MaxDayPicks
	}
	return th
}

// openDB opens the cache, creating its directory on first use.
func openDB() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return db, nil
}

// leagueData is everything most analysis commands need from the cache.
type leagueData struct {
	info    *model.LeagueInfo
	rosters []model.Roster
	meta    map[string]model.PlayerMeta
}

// loadLeagueData reads the cached league, rosters, and player directory.
func loadLeagueData(db *storage.DB) (*leagueData, error) {
	if leagueID == "" {
		return nil, fmt.Errorf("no league configured: pass --league or set league_id in %s", cfgPath)
	}
	info, err := db.GetLeague(leagueID)
	if err != nil {
		return nil, fmt.Errorf("load league: %w", err)
	}
	if info == nil {
		return nil, fmt.Errorf("league %s not cached yet, run 'rotomet fetch' first", leagueID)
	}
	rosters, err := db.GetRosters(leagueID)
	if err != nil {
		return nil, fmt.Errorf("load rosters: %w", err)
	}
	meta, err := db.GetPlayers()
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	return &leagueData{info: info, rosters: rosters, meta: meta}, nil
}

// windowScores loads one stat window and runs the valuation pipeline.
func windowScores(db *storage.DB, ld *leagueData, window string) (map[string]model.PlayerZScore, error) {
	stats, err := db.GetStats(ld.info.Season, window)
	if err != nil {
		return nil, fmt.Errorf("load %s stats: %w", window, err)
	}
	if len(stats) == 0 {
		return nil, fmt.Errorf("no %s stats cached for season %s, run 'rotomet fetch' first", window, ld.info.Season)
	}
	return engine.Evaluate(ld.info.Scoring, ld.rosters, stats, ld.meta), nil
}

// rankScores orders a valuation map by total z descending, ties by player id.
func rankScores(scores map[string]model.PlayerZScore) []model.PlayerZScore {
	out := make([]model.PlayerZScore, 0, len(scores))
	for _, s := range scores {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalZ != out[j].TotalZ {
			return out[i].TotalZ > out[j].TotalZ
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

// findRoster returns the roster with the given id, or nil.
func findRoster(rosters []model.Roster, rosterID int) *model.Roster {
	for i := range rosters {
		if rosters[i].RosterID == rosterID {
			return &rosters[i]
		}
	}
	return nil
}

// resolvePlayer finds a player by exact id, then by case-insensitive name
// match against the directory.
func resolvePlayer(meta map[string]model.PlayerMeta, query string) (model.PlayerMeta, error) {
	if p, ok := meta[query]; ok {
		return p, nil
	}
	q := strings.ToLower(query)
	var matches []model.PlayerMeta
	for _, p := range meta {
		if strings.ToLower(p.DisplayName()) == q || strings.Contains(strings.ToLower(p.DisplayName()), q) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return model.PlayerMeta{}, fmt.Errorf("no player matches %q", query)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, fmt.Sprintf("%s (%s)", m.DisplayName(), m.PlayerID))
			if len(names) == 5 {
				break
			}
		}
		return model.PlayerMeta{}, fmt.Errorf("%q is ambiguous: %s", query, strings.Join(names, ", "))
	}
}
