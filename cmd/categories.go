package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rotomet/rotomet/internal/engine"
	"github.com/rotomet/rotomet/internal/model"
	"github.com/rotomet/rotomet/internal/report"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the league's active categories and their baselines",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ld, err := loadLeagueData(db)
	if err != nil {
		return err
	}
	cats := engine.ActiveCategories(ld.info.Scoring)
	if len(cats) == 0 {
		fmt.Println("League has no active scoring categories.")
		return nil
	}

	stats, err := db.GetStats(ld.info.Season, model.WindowSeason)
	if err != nil {
		return err
	}
	pop := engine.BuildPopulation(ld.rosters, stats)
	baselines := engine.ComputeBaselines(cats, pop)

	fmt.Printf("\n%d active categories over a population of %d players\n", len(cats), len(pop))
	report.PrintCategoryTable(os.Stdout, cats, baselines)
	return nil
}
