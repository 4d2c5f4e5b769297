package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rotomet/rotomet/internal/engine"
	"github.com/rotomet/rotomet/internal/model"
	"github.com/rotomet/rotomet/internal/report"
)

var trendLimit int

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Buy-low, sell-high, breakout, and decline signals",
	Long: `Compares each player's recent valuation against their season
baseline and flags actionable divergences. Requires both stat windows, so
fetch with --week first.`,
	Args: cobra.NoArgs,
	RunE: runTrend,
}

func init() {
	trendCmd.Flags().IntVar(&trendLimit, "limit", 10, "rows per group (0 = all)")
	rootCmd.AddCommand(trendCmd)
}

func runTrend(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ld, err := loadLeagueData(db)
	if err != nil {
		return err
	}

	seasonStats, err := db.GetStats(ld.info.Season, model.WindowSeason)
	if err != nil {
		return err
	}
	recentStats, err := db.GetStats(ld.info.Season, model.WindowRecent)
	if err != nil {
		return err
	}
	if len(seasonStats) == 0 || len(recentStats) == 0 {
		return fmt.Errorf("trend needs both stat windows, run 'rotomet fetch --week <n>' first")
	}

	seasonScores := engine.Evaluate(ld.info.Scoring, ld.rosters, seasonStats, ld.meta)
	recentScores := engine.Evaluate(ld.info.Scoring, ld.rosters, recentStats, ld.meta)

	analysis := engine.DetectTrends(seasonScores, recentScores, seasonStats, recentStats, engineThresholds())
	report.PrintTrendAnalysis(os.Stdout, analysis, trendLimit)
	return nil
}
