package cmd

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rotomet/rotomet/internal/engine"
	"github.com/rotomet/rotomet/internal/model"
)

var (
	exportWindow string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ranked valuation board as CSV",
	Long: `Writes the full valuation board to a CSV file (or stdout with
--out -) for spreadsheets and external tooling.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportWindow, "window", model.WindowSeason, "stat window: season or recent")
	exportCmd.Flags().StringVar(&exportOut, "out", "values.csv", "output path, or - for stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportWindow != model.WindowSeason && exportWindow != model.WindowRecent {
		return fmt.Errorf("invalid window %q: use season or recent", exportWindow)
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
	scores, err := windowScores(db, ld, exportWindow)
	if err != nil {
		return err
	}
	ranked := rankScores(scores)

	out := os.Stdout
	if exportOut != "-" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOut, err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	header := []string{"rank", "player_id", "player", "total_z"}
	for _, c := range cats {
		header = append(header, c.SettingKey+"_z")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, s := range ranked {
		row := []string{
			fmt.Sprintf("%d", i+1),
			s.PlayerID,
			s.Name,
			fmt.Sprintf("%.2f", s.TotalZ),
		}
		for _, c := range cats {
			row = append(row, fmt.Sprintf("%.2f", s.Scores[c.SettingKey]))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if exportOut != "-" {
		fmt.Printf("Wrote %d rows to %s\n", len(ranked), exportOut)
	}
	return nil
}
