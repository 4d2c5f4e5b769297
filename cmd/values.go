package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rotomet/rotomet/internal/engine"
	"github.com/rotomet/rotomet/internal/model"
	"github.com/rotomet/rotomet/internal/report"
)

var (
	valuesWindow string
	valuesLimit  int
	valuesRoster int
)

var valuesCmd = &cobra.Command{
	Use:   "values",
	Short: "Ranked player valuations under the league's scoring settings",
	Long: `Computes weighted z-scores for every rostered player with games
played and prints the ranked board. Players on --roster are marked with ">".`,
	Args: cobra.NoArgs,
	RunE: runValues,
}

func init() {
	valuesCmd.Flags().StringVar(&valuesWindow, "window", model.WindowSeason, "stat window: season or recent")
	valuesCmd.Flags().IntVar(&valuesLimit, "limit", 50, "rows to print (0 = all)")
	valuesCmd.Flags().IntVar(&valuesRoster, "roster", 0, "roster id to highlight")
	rootCmd.AddCommand(valuesCmd)
}

func runValues(cmd *cobra.Command, args []string) error {
	if valuesWindow != model.WindowSeason && valuesWindow != model.WindowRecent {
		return fmt.Errorf("invalid window %q: use season or recent", valuesWindow)
	}

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

	scores, err := windowScores(db, ld, valuesWindow)
	if err != nil {
		return err
	}
	ranked := rankScores(scores)
	if valuesLimit > 0 && len(ranked) > valuesLimit {
		ranked = ranked[:valuesLimit]
	}

	focus := map[string]struct{}{}
	if r := findRoster(ld.rosters, valuesRoster); r != nil {
		focus = r.PlayerSet()
	}

	fmt.Printf("\n%s window: %d valued players\n", valuesWindow, len(scores))
	report.PrintValueBoard(os.Stdout, ranked, cats, focus)
	return nil
}
