package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rotomet/rotomet/internal/model"
)

// benchSlotCodes are the roster slot designations excluded from active-slot
// counts, matched case-insensitively.
var benchSlotCodes = map[string]struct{}{
	"BN":  {},
	"IR":  {},
	"IR+": {},
	"NA":  {},
}

// IsBenchSlot reports whether a roster slot code is a bench designation.
func IsBenchSlot(slot string) bool {
	_, ok := benchSlotCodes[strings.ToUpper(slot)]
	return ok
}

// StreamingInput carries everything the planner needs, fully materialized.
type StreamingInput struct {
	RosterID int
	Rosters  []model.Roster
	// SlotTemplate is the league's roster position list (active + bench).
	SlotTemplate []string
	// Scores is the season valuation run.
	Scores map[string]model.PlayerZScore
	Meta   map[string]model.PlayerMeta
	// Days is the schedule window in chronological order.
	Days []model.ScheduleDay
	// TeamGames indexes each team's upcoming games sorted by tip-off.
	TeamGames map[string][]model.GameSummary
	// MatchupStarters is the current week's starters per roster when the
	// platform exposes it; the roster's own stored starters are the fallback.
	MatchupStarters []model.MatchupStarters
}

// PlanStreaming produces the day-by-day lineup-gap analysis and free-agent
// pickup recommendations for one roster across the schedule window.
func PlanStreaming(in StreamingInput, th Thresholds) model.StreamingPlan {
	var plan model.StreamingPlan
	for _, slot := range in.SlotTemplate {
		if IsBenchSlot(slot) {
			plan.BenchSlots++
		} else {
			plan.ActiveSlots++
		}
	}

	var target *model.Roster
	for i := range in.Rosters {
		if in.Rosters[i].RosterID == in.RosterID {
			target = &in.Rosters[i]
			break
		}
	}
	if target == nil {
		return plan
	}
	plan.RosterSize = len(target.Players)

	rostered := make(map[string]struct{})
	for _, r := range in.Rosters {
		for _, id := range r.Players {
			rostered[id] = struct{}{}
		}
	}

	pool := buildFreeAgentPool(in.Scores, in.Meta, rostered, th.FreeAgentPoolCap)
	starters := starterSet(target, in.MatchupStarters)

	for _, day := range in.Days {
		playingTeams := make(map[string]struct{}, len(day.TeamsPlaying))
		for _, t := range day.TeamsPlaying {
			playingTeams[t] = struct{}{}
		}

		dayPlan := model.StreamingDayPlan{Date: day.Date}
		for _, id := range target.Players {
			team := in.Meta[id].Team
			if _, plays := playingTeams[team]; !plays {
				continue
			}
			dayPlan.Playing = append(dayPlan.Playing, model.RosterDayPlayer{
				PlayerID: id,
				Name:     resolveName(id, in.Meta),
				Team:     team,
				TotalZ:   in.Scores[id].TotalZ,
				Starter:  starters[id],
				Upcoming: upcomingGames(in.TeamGames, team, day.Date, th.RosterUpcoming),
			})
		}
		sort.SliceStable(dayPlan.Playing, func(i, j int) bool {
			a, b := dayPlan.Playing[i], dayPlan.Playing[j]
			if a.Starter != b.Starter {
				return a.Starter
			}
			if a.TotalZ != b.TotalZ {
				return a.TotalZ > b.TotalZ
			}
			return a.PlayerID < b.PlayerID
		})

		dayPlan.Holes = plan.ActiveSlots - len(dayPlan.Playing)
		if dayPlan.Holes < 0 {
			dayPlan.Holes = 0
		}

		if dayPlan.Holes > 0 {
			dayPlan.Recommendations = recommendForDay(pool, playingTeams, in.TeamGames, day.Date, dayPlan.Holes, th)
		}
		plan.Days = append(plan.Days, dayPlan)
	}
	return plan
}

// buildFreeAgentPool collects unrostered players that have a valuation and a
// resolved team, ordered by total z descending and capped.
func buildFreeAgentPool(scores map[string]model.PlayerZScore, meta map[string]model.PlayerMeta, rostered map[string]struct{}, limit int) []model.StreamCandidate {
	var pool []model.StreamCandidate
	for id, z := range scores {
		if _, taken := rostered[id]; taken {
			continue
		}
		team := meta[id].Team
		if team == "" {
			continue
		}
		pool = append(pool, model.StreamCandidate{
			PlayerID: id,
			Name:     z.Name,
			Team:     team,
			TotalZ:   z.TotalZ,
		})
	}
	sort.Slice(pool, func(i, j int) bool {
		if pool[i].TotalZ != pool[j].TotalZ {
			return pool[i].TotalZ > pool[j].TotalZ
		}
		return pool[i].PlayerID < pool[j].PlayerID
	})
	if len(pool) > limit {
		pool = pool[:limit]
	}
	return pool
}

// recommendForDay returns the best same-day free agents for the open slots:
// at most PicksPerHole per hole, hard-capped at MaxDayPicks.
func recommendForDay(pool []model.StreamCandidate, playingTeams map[string]struct{}, teamGames map[string][]model.GameSummary, date string, holes int, th Thresholds) []model.StreamCandidate {
	limit := holes * th.PicksPerHole
	if limit > th.MaxDayPicks {
		limit = th.MaxDayPicks
	}

	var recs []model.StreamCandidate
	for _, cand := range pool {
		if len(recs) >= limit {
			break
		}
		if _, plays := playingTeams[cand.Team]; !plays {
			continue
		}
		cand.Upcoming = upcomingGames(teamGames, cand.Team, date, th.CandidateUpcoming)
		cand.Reason = fmt.Sprintf("%s play on %s; best available for %d open active slot(s)", cand.Team, date, holes)
		recs = append(recs, cand)
	}
	return recs
}

// upcomingGames returns up to n of a team's games on or after date.
func upcomingGames(teamGames map[string][]model.GameSummary, team, date string, n int) []model.GameSummary {
	var out []model.GameSummary
	for _, g := range teamGames[team] {
		if g.Date < date {
			continue
		}
		out = append(out, g)
		if len(out) == n {
			break
		}
	}
	return out
}

// starterSet resolves the roster's current starters: the live matchup
// starters when available, otherwise the roster's stored starters list.
func starterSet(target *model.Roster, matchups []model.MatchupStarters) map[string]bool {
	starters := make(map[string]bool)
	for _, m := range matchups {
		if m.RosterID != target.RosterID {
			continue
		}
		for _, id := range m.Starters {
			starters[id] = true
		}
		return starters
	}
	for _, id := range target.Starters {
		starters[id] = true
	}
	return starters
}
