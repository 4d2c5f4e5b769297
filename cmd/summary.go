package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rotomet/rotomet/internal/engine"
	"github.com/rotomet/rotomet/internal/model"
	"github.com/rotomet/rotomet/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show what the cache holds for the configured league",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ld, err := loadLeagueData(db)
	if err != nil {
		return err
	}
	playerCount, err := db.PlayerCount()
	if err != nil {
		return err
	}
	report.PrintLeagueSummary(os.Stdout, *ld.info, len(ld.rosters), playerCount)

	cats := engine.ActiveCategories(ld.info.Scoring)
	fmt.Printf("Active categories: %d of %d scoring settings\n", len(cats), len(ld.info.Scoring))

	for _, window := range []string{model.WindowSeason, model.WindowRecent} {
		has, err := db.HasStats(ld.info.Season, window)
		if err != nil {
			return err
		}
		state := "cached"
		if !has {
			state = "missing"
		}
		fmt.Printf("%s stats: %s\n", window, state)
	}
	return nil
}
