package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rotomet/rotomet/internal/engine"
	"github.com/rotomet/rotomet/internal/model"
	"github.com/rotomet/rotomet/internal/report"
)

var playerCmd = &cobra.Command{
	Use:   "player <id-or-name>",
	Short: "Valuation card and consistency estimate for one player",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayer,
}

func init() {
	rootCmd.AddCommand(playerCmd)
}

func runPlayer(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ld, err := loadLeagueData(db)
	if err != nil {
		return err
	}
	meta, err := resolvePlayer(ld.meta, args[0])
	if err != nil {
		return err
	}
	cats := engine.ActiveCategories(ld.info.Scoring)

	seasonStats, err := db.GetStats(ld.info.Season, model.WindowSeason)
	if err != nil {
		return err
	}
	recentStats, err := db.GetStats(ld.info.Season, model.WindowRecent)
	if err != nil {
		return err
	}

	seasonScores := engine.Evaluate(ld.info.Scoring, ld.rosters, seasonStats, ld.meta)
	recentScores := engine.Evaluate(ld.info.Scoring, ld.rosters, recentStats, ld.meta)

	var seasonZ, recentZ *model.PlayerZScore
	if s, ok := seasonScores[meta.PlayerID]; ok {
		seasonZ = &s
	}
	if s, ok := recentScores[meta.PlayerID]; ok {
		recentZ = &s
	}

	est := engine.EstimateConsistency(seasonStats[meta.PlayerID], engineThresholds())
	report.PrintPlayerCard(os.Stdout, meta, seasonZ, recentZ, cats, est)
	return nil
}
