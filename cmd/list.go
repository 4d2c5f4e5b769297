package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rotomet/rotomet/internal/model"
	"github.com/rotomet/rotomet/internal/report"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the league's rosters with aggregate team value",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ld, err := loadLeagueData(db)
	if err != nil {
		return err
	}
	scores, err := windowScores(db, ld, model.WindowSeason)
	if err != nil {
		return err
	}

	report.PrintRosterList(os.Stdout, ld.rosters, scores)
	return nil
}
