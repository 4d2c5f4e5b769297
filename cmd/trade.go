package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rotomet/rotomet/internal/engine"
	"github.com/rotomet/rotomet/internal/model"
	"github.com/rotomet/rotomet/internal/report"
)

var (
	tradeRoster int
	tradeNeed   string
	tradeSpare  string
	tradeLimit  int
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Rank trade targets by a need/spare category differential",
	Long: `Scores every player on every other roster as needZ - spareZ: how
much they help the category you lack minus how much they duplicate the one
you have covered.

Example:
  rotomet trade --roster 3 --need blk --spare ast`,
	Args: cobra.NoArgs,
	RunE: runTrade,
}

func init() {
	tradeCmd.Flags().IntVar(&tradeRoster, "roster", 0, "your roster id (required)")
	tradeCmd.Flags().StringVar(&tradeNeed, "need", "", "category you need (required)")
	tradeCmd.Flags().StringVar(&tradeSpare, "spare", "", "category you can give up (required)")
	tradeCmd.Flags().IntVar(&tradeLimit, "limit", 15, "rows to print (0 = all)")
	_ = tradeCmd.MarkFlagRequired("roster")
	_ = tradeCmd.MarkFlagRequired("need")
	_ = tradeCmd.MarkFlagRequired("spare")
	rootCmd.AddCommand(tradeCmd)
}

func runTrade(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ld, err := loadLeagueData(db)
	if err != nil {
		return err
	}
	if findRoster(ld.rosters, tradeRoster) == nil {
		return fmt.Errorf("roster %d not found in league %s", tradeRoster, leagueID)
	}

	need := strings.ToLower(tradeNeed)
	spare := strings.ToLower(tradeSpare)
	cats := engine.ActiveCategories(ld.info.Scoring)
	if !hasCategory(cats, need) {
		return fmt.Errorf("category %q is not active in this league", need)
	}
	if !hasCategory(cats, spare) {
		return fmt.Errorf("category %q is not active in this league", spare)
	}

	scores, err := windowScores(db, ld, model.WindowSeason)
	if err != nil {
		return err
	}

	recs := engine.ScoreTradeTargets(tradeRoster, ld.rosters, scores, need, spare)
	fmt.Printf("\nTargets that add %s without stacking %s:\n", need, spare)
	report.PrintTradeTargets(os.Stdout, recs, need, spare, tradeLimit)
	return nil
}

func hasCategory(cats []engine.Category, key string) bool {
	for _, c := range cats {
		if c.SettingKey == key {
			return true
		}
	}
	return false
}
