package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/rotomet/rotomet/internal/engine"
	"github.com/rotomet/rotomet/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintLeagueSummary prints a one-line header for the cached league.
func PrintLeagueSummary(w io.Writer, info model.LeagueInfo, rosterCount, playerCount int) {
	fmt.Fprintf(w, "\nLeague: %s  |  Season: %s  |  Teams: %d  |  Players cached: %d  |  Fetched: %s\n\n",
		info.Name, info.Season, rosterCount, playerCount, info.FetchedAt)
}

// PrintValueBoard prints the ranked valuation table with one column per
// active category. Players on the focus roster are marked with ">".
func PrintValueBoard(w io.Writer, scores []model.PlayerZScore, cats []engine.Category, focus map[string]struct{}) {
	table := newTable(w)

	header := []any{" ", "#", "PLAYER"}
	for _, c := range cats {
		header = append(header, strings.ToUpper(c.SettingKey))
	}
	header = append(header, "TOTAL")
	table.Header(header...)

	for i, s := range scores {
		marker := " "
		if _, ok := focus[s.PlayerID]; ok {
			marker = ">"
		}
		row := []any{marker, strconv.Itoa(i + 1), s.Name}
		for _, c := range cats {
			row = append(row, fmt.Sprintf("%.2f", s.Scores[c.SettingKey]))
		}
		row = append(row, fmt.Sprintf("%.2f", s.TotalZ))
		table.Append(row...)
	}
	table.Render()
}

// PrintCategoryTable prints each active category with its classification,
// weight, and league baseline.
func PrintCategoryTable(w io.Writer, cats []engine.Category, baselines map[string]engine.Baseline) {
	table := newTable(w)
	table.Header("CATEGORY", "STAT", "KIND", "WEIGHT", "MEAN", "STD", "LG%")

	for _, c := range cats {
		b := baselines[c.SettingKey]
		lgPct := "-"
		if c.Kind == engine.KindImpact {
			lgPct = fmt.Sprintf("%.1f%%", b.LeagueAvgPct*100)
		}
		table.Append(
			c.SettingKey,
			c.StatKey,
			c.Kind.String(),
			fmt.Sprintf("%+.1f", c.Weight),
			fmt.Sprintf("%.2f", b.Mean),
			fmt.Sprintf("%.2f", b.Std),
			lgPct,
		)
	}
	table.Render()
}

// trendTable prints one trend group, at most limit rows.
func trendTable(w io.Writer, title string, recs []model.TrendRecord, limit int) {
	if len(recs) == 0 {
		return
	}
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	fmt.Fprintf(w, "\n%s\n", title)

	table := newTable(w)
	table.Header("PLAYER", "SEASON_Z", "RECENT_Z", "DIFF", "CONF", "REASON")
	for _, r := range recs {
		table.Append(
			r.Name,
			fmt.Sprintf("%.2f", r.SeasonZ),
			fmt.Sprintf("%.2f", r.RecentZ),
			fmt.Sprintf("%+.2f", r.ZDifference),
			fmt.Sprintf("%.0f%%", r.Confidence),
			r.Reason,
		)
	}
	table.Render()
}

// PrintTrendAnalysis prints the four actionable trend groups.
func PrintTrendAnalysis(w io.Writer, a model.TrendAnalysis, limit int) {
	if len(a.All) == 0 {
		fmt.Fprintln(w, "No players qualify for trend analysis (need both season and recent stats).")
		return
	}
	trendTable(w, "BUY LOW (strong season, cold stretch):", a.BuyLow, limit)
	trendTable(w, "SELL HIGH (weak season, hot stretch):", a.SellHigh, limit)
	trendTable(w, "BREAKOUTS (recent play clearing a modest baseline):", a.Breakouts, limit)
	trendTable(w, "DECLINES (established players trending down):", a.Declines, limit)
}

// PrintStreamingPlan prints the day-by-day lineup gaps and pickup
// recommendations.
func PrintStreamingPlan(w io.Writer, plan model.StreamingPlan) {
	fmt.Fprintf(w, "\nActive slots: %d  |  Bench slots: %d  |  Roster size: %d\n",
		plan.ActiveSlots, plan.BenchSlots, plan.RosterSize)

	for _, day := range plan.Days {
		fmt.Fprintf(w, "\n=== %s: %d playing, %d open slot(s) ===\n", day.Date, len(day.Playing), day.Holes)

		if len(day.Playing) > 0 {
			table := newTable(w)
			table.Header(" ", "PLAYER", "TEAM", "Z", "NEXT")
			for _, p := range day.Playing {
				marker := " "
				if p.Starter {
					marker = "*"
				}
				table.Append(marker, p.Name, p.Team, fmt.Sprintf("%.2f", p.TotalZ), upcomingStr(p.Upcoming))
			}
			table.Render()
		}

		if len(day.Recommendations) > 0 {
			fmt.Fprintln(w, "Stream targets:")
			table := newTable(w)
			table.Header("PLAYER", "TEAM", "Z", "NEXT", "WHY")
			for _, c := range day.Recommendations {
				table.Append(c.Name, c.Team, fmt.Sprintf("%.2f", c.TotalZ), upcomingStr(c.Upcoming), c.Reason)
			}
			table.Render()
		}
	}
}

func upcomingStr(games []model.GameSummary) string {
	if len(games) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(games))
	for _, g := range games {
		parts = append(parts, fmt.Sprintf("%s %s@%s", g.Date[5:], g.AwayTeam, g.HomeTeam))
	}
	return strings.Join(parts, ", ")
}

// PrintTradeTargets prints ranked trade candidates for a need/spare category
// pair.
func PrintTradeTargets(w io.Writer, recs []model.TradeRecommendation, needCat, spareCat string, limit int) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No valued players found on other rosters.")
		return
	}
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}

	table := newTable(w)
	table.Header("PLAYER", "OWNER",
		strings.ToUpper(needCat)+"_Z", strings.ToUpper(spareCat)+"_Z", "SCORE")
	for _, r := range recs {
		table.Append(
			r.Name,
			r.OwnerName,
			fmt.Sprintf("%.2f", r.NeedZ),
			fmt.Sprintf("%.2f", r.SpareZ),
			fmt.Sprintf("%+.2f", r.TradeScore),
		)
	}
	table.Render()
}

// PrintPlayerCard prints a single player's meta line, category values, and
// consistency estimate.
func PrintPlayerCard(w io.Writer, meta model.PlayerMeta, season, recent *model.PlayerZScore, cats []engine.Category, est model.ConsistencyEstimate) {
	name := meta.DisplayName()
	team := meta.Team
	if team == "" {
		team = "FA"
	}
	fmt.Fprintf(w, "\n%s  |  %s  |  %s", name, team, meta.Position)
	if meta.InjuryStatus != "" {
		fmt.Fprintf(w, "  |  %s", meta.InjuryStatus)
	}
	fmt.Fprintln(w)

	if season == nil {
		fmt.Fprintln(w, "No season valuation (no games played or not in the stat pool).")
	} else {
		table := newTable(w)
		header := []any{"WINDOW"}
		for _, c := range cats {
			header = append(header, strings.ToUpper(c.SettingKey))
		}
		header = append(header, "TOTAL")
		table.Header(header...)

		row := []any{"season"}
		for _, c := range cats {
			row = append(row, fmt.Sprintf("%.2f", season.Scores[c.SettingKey]))
		}
		row = append(row, fmt.Sprintf("%.2f", season.TotalZ))
		table.Append(row...)

		if recent != nil {
			row = []any{"recent"}
			for _, c := range cats {
				row = append(row, fmt.Sprintf("%.2f", recent.Scores[c.SettingKey]))
			}
			row = append(row, fmt.Sprintf("%.2f", recent.TotalZ))
			table.Append(row...)
		}
		table.Render()
	}

	fmt.Fprintf(w, "Consistency: risk %s", est.Risk)
	if est.Risk != model.RiskUnknown {
		fmt.Fprintf(w, "  (%.1f ppg, σ≈%.1f, cv %.2f over %d gp)",
			est.MeanPPG, est.StdDev, est.CV, est.GamesPlayed)
	}
	fmt.Fprintln(w)
}

// PrintRosterList prints every roster with owner and player counts.
func PrintRosterList(w io.Writer, rosters []model.Roster, scores map[string]model.PlayerZScore) {
	table := newTable(w)
	table.Header("ROSTER", "OWNER", "PLAYERS", "TEAM_Z")

	for _, r := range rosters {
		var teamZ float64
		for _, id := range r.Players {
			teamZ += scores[id].TotalZ
		}
		owner := r.OwnerName
		if owner == "" {
			owner = r.OwnerID
		}
		table.Append(
			strconv.Itoa(r.RosterID),
			owner,
			strconv.Itoa(len(r.Players)),
			fmt.Sprintf("%.2f", teamZ),
		)
	}
	table.Render()
}
