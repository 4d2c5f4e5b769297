package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a raw SQL query against the cache database",
	Long: `Run an arbitrary SQL query against the cache database and print results as a table.

Schema overview:
  leagues(league_id, name, season, fetched_at)
  league_scoring(league_id, category, weight)
  league_positions(league_id, idx, position)
  rosters(league_id, roster_id, owner_id, owner_name)
  roster_players(league_id, roster_id, player_id, idx, is_starter)
  matchup_starters(league_id, roster_id, player_id)
  players(player_id, full_name, first_name, last_name, search_name, team, position, injury_status)
  player_stats(season, stat_window, player_id, gp, pts, reb, ast, stl, blk, tov,
    fgm, fga, ftm, fta, fg3m, fg3a, ast_to, stl_to)
  schedule_games(game_id, game_date, tipoff, home_team, away_team, status)

Note: player_id is stored as TEXT. Use quotes: WHERE player_id = '2199'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func init() {
	rootCmd.AddCommand(sqlCmd)
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("(no rows)")
		return nil
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))

	colsAny := make([]any, len(cols))
	for i, c := range cols {
		colsAny[i] = c
	}
	table.Header(colsAny...)

	for _, row := range rows {
		rowAny := make([]any, len(row))
		for i, v := range row {
			rowAny[i] = v
		}
		table.Append(rowAny...)
	}
	table.Render()
	fmt.Fprintf(os.Stdout, "\n(%d rows)\n", len(rows))
	return nil
}
