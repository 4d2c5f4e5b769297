package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rotomet/rotomet/internal/engine"
	"github.com/rotomet/rotomet/internal/model"
	"github.com/rotomet/rotomet/internal/report"
)

var (
	streamRoster int
	streamDays   int
)

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Day-by-day lineup gaps and free-agent stream targets",
	Long: `Walks the cached schedule day by day, shows which of your players
actually play, counts the open active slots, and suggests the best available
free agents with a game that day.`,
	Args: cobra.NoArgs,
	RunE: runStream,
}

func init() {
	streamCmd.Flags().IntVar(&streamRoster, "roster", 0, "roster id to plan for (required)")
	streamCmd.Flags().IntVar(&streamDays, "days", 7, "days of schedule to plan")
	_ = streamCmd.MarkFlagRequired("roster")
	rootCmd.AddCommand(streamCmd)
}

func runStream(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ld, err := loadLeagueData(db)
	if err != nil {
		return err
	}
	if findRoster(ld.rosters, streamRoster) == nil {
		return fmt.Errorf("roster %d not found in league %s", streamRoster, leagueID)
	}

	scores, err := windowScores(db, ld, model.WindowSeason)
	if err != nil {
		return err
	}

	start := time.Now().UTC()
	end := start.AddDate(0, 0, streamDays-1)
	games, err := db.GamesBetween(start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("load schedule: %w", err)
	}
	if len(games) == 0 {
		fmt.Println("No schedule cached for this window, run 'rotomet fetch' first.")
		return nil
	}

	starters, err := db.GetMatchupStarters(leagueID)
	if err != nil {
		return fmt.Errorf("load matchup starters: %w", err)
	}

	plan := engine.PlanStreaming(engine.StreamingInput{
		RosterID:        streamRoster,
		Rosters:         ld.rosters,
		SlotTemplate:    ld.info.RosterPositions,
		Scores:          scores,
		Meta:            ld.meta,
		Days:            scheduleDays(games),
		TeamGames:       teamGameIndex(games),
		MatchupStarters: starters,
	}, engineThresholds())

	report.PrintStreamingPlan(os.Stdout, plan)
	return nil
}

// scheduleDays groups date-ordered games into per-day schedule entries.
func scheduleDays(games []model.GameSummary) []model.ScheduleDay {
	var days []model.ScheduleDay
	index := make(map[string]int)
	for _, g := range games {
		i, ok := index[g.Date]
		if !ok {
			i = len(days)
			index[g.Date] = i
			days = append(days, model.ScheduleDay{Date: g.Date})
		}
		days[i].Games = append(days[i].Games, g)
		days[i].TeamsPlaying = appendTeam(days[i].TeamsPlaying, g.HomeTeam)
		days[i].TeamsPlaying = appendTeam(days[i].TeamsPlaying, g.AwayTeam)
	}
	return days
}

func appendTeam(teams []string, team string) []string {
	for _, t := range teams {
		if t == team {
			return teams
		}
	}
	return append(teams, team)
}

// teamGameIndex indexes date-ordered games by participating team.
func teamGameIndex(games []model.GameSummary) map[string][]model.GameSummary {
	out := make(map[string][]model.GameSummary)
	for _, g := range games {
		out[g.HomeTeam] = append(out[g.HomeTeam], g)
		out[g.AwayTeam] = append(out[g.AwayTeam], g)
	}
	return out
}
