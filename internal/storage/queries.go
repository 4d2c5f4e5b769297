package storage

import (
	"database/sql"
	"fmt"

	"github.com/rotomet/rotomet/internal/model"
)

// UpsertLeague stores the league row plus its scoring weights and roster
// position template, replacing any previous snapshot for the same league.
func (db *DB) UpsertLeague(info model.LeagueInfo) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO leagues(league_id, name, season, fetched_at)
		VALUES (?, ?, ?, ?)`,
		info.LeagueID, info.Name, info.Season, info.FetchedAt)
	if err != nil {
		return fmt.Errorf("insert league: %w", err)
	}

	if _, err = tx.Exec("DELETE FROM league_scoring WHERE league_id = ?", info.LeagueID); err != nil {
		return err
	}
	for category, weight := range info.Scoring {
		if _, err = tx.Exec(`
			INSERT INTO league_scoring(league_id, category, weight) VALUES (?, ?, ?)`,
			info.LeagueID, category, weight); err != nil {
			return fmt.Errorf("insert scoring %s: %w", category, err)
		}
	}

	if _, err = tx.Exec("DELETE FROM league_positions WHERE league_id = ?", info.LeagueID); err != nil {
		return err
	}
	for i, pos := range info.RosterPositions {
		if _, err = tx.Exec(`
			INSERT INTO league_positions(league_id, idx, position) VALUES (?, ?, ?)`,
			info.LeagueID, i, pos); err != nil {
			return fmt.Errorf("insert position %s: %w", pos, err)
		}
	}
	return tx.Commit()
}

// GetLeague returns the cached league snapshot, or nil when none is stored.
func (db *DB) GetLeague(leagueID string) (*model.LeagueInfo, error) {
	var info model.LeagueInfo
	err := db.conn.QueryRow(`
		SELECT league_id, name, season, fetched_at
		FROM leagues WHERE league_id = ?`, leagueID).
		Scan(&info.LeagueID, &info.Name, &info.Season, &info.FetchedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	info.Scoring = model.ScoringSettings{}
	rows, err := db.conn.Query(`
		SELECT category, weight FROM league_scoring WHERE league_id = ?`, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var category string
		var weight float64
		if err := rows.Scan(&category, &weight); err != nil {
			return nil, err
		}
		info.Scoring[category] = weight
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	posRows, err := db.conn.Query(`
		SELECT position FROM league_positions WHERE league_id = ? ORDER BY idx`, leagueID)
	if err != nil {
		return nil, err
	}
	defer posRows.Close()
	for posRows.Next() {
		var pos string
		if err := posRows.Scan(&pos); err != nil {
			return nil, err
		}
		info.RosterPositions = append(info.RosterPositions, pos)
	}
	return &info, posRows.Err()
}

// UpsertRosters replaces every stored roster for the league in one transaction.
func (db *DB) UpsertRosters(leagueID string, rosters []model.Roster) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec("DELETE FROM rosters WHERE league_id = ?", leagueID); err != nil {
		return err
	}
	if _, err = tx.Exec("DELETE FROM roster_players WHERE league_id = ?", leagueID); err != nil {
		return err
	}

	rosterStmt, err := tx.Prepare(`
		INSERT INTO rosters(league_id, roster_id, owner_id, owner_name)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer rosterStmt.Close()

	playerStmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO roster_players(league_id, roster_id, player_id, idx, is_starter)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer playerStmt.Close()

	for _, r := range rosters {
		if _, err = rosterStmt.Exec(leagueID, r.RosterID, r.OwnerID, r.OwnerName); err != nil {
			return fmt.Errorf("insert roster %d: %w", r.RosterID, err)
		}
		starters := make(map[string]bool, len(r.Starters))
		for _, id := range r.Starters {
			starters[id] = true
		}
		for i, id := range r.Players {
			if _, err = playerStmt.Exec(leagueID, r.RosterID, id, i, boolInt(starters[id])); err != nil {
				return fmt.Errorf("insert roster %d player %s: %w", r.RosterID, id, err)
			}
		}
	}
	return tx.Commit()
}

// GetRosters returns the league's rosters ordered by roster id, with player
// lists in their stored order.
func (db *DB) GetRosters(leagueID string) ([]model.Roster, error) {
	rows, err := db.conn.Query(`
		SELECT roster_id, owner_id, owner_name
		FROM rosters WHERE league_id = ? ORDER BY roster_id`, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Roster
	index := make(map[int]int)
	for rows.Next() {
		var r model.Roster
		if err := rows.Scan(&r.RosterID, &r.OwnerID, &r.OwnerName); err != nil {
			return nil, err
		}
		index[r.RosterID] = len(out)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	playerRows, err := db.conn.Query(`
		SELECT roster_id, player_id, is_starter
		FROM roster_players WHERE league_id = ? ORDER BY roster_id, idx`, leagueID)
	if err != nil {
		return nil, err
	}
	defer playerRows.Close()
	for playerRows.Next() {
		var rosterID, starter int
		var playerID string
		if err := playerRows.Scan(&rosterID, &playerID, &starter); err != nil {
			return nil, err
		}
		i, ok := index[rosterID]
		if !ok {
			continue
		}
		out[i].Players = append(out[i].Players, playerID)
		if starter != 0 {
			out[i].Starters = append(out[i].Starters, playerID)
		}
	}
	return out, playerRows.Err()
}

// UpsertMatchupStarters replaces the league's current-week starters snapshot.
func (db *DB) UpsertMatchupStarters(leagueID string, matchups []model.MatchupStarters) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec("DELETE FROM matchup_starters WHERE league_id = ?", leagueID); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO matchup_starters(league_id, roster_id, player_id)
		VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, m := range matchups {
		for _, id := range m.Starters {
			if _, err = stmt.Exec(leagueID, m.RosterID, id); err != nil {
				return fmt.Errorf("insert matchup starter %s: %w", id, err)
			}
		}
	}
	return tx.Commit()
}

// GetMatchupStarters returns the stored current-week starters per roster.
func (db *DB) GetMatchupStarters(leagueID string) ([]model.MatchupStarters, error) {
	rows, err := db.conn.Query(`
		SELECT roster_id, player_id
		FROM matchup_starters WHERE league_id = ? ORDER BY roster_id, player_id`, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MatchupStarters
	index := make(map[int]int)
	for rows.Next() {
		var rosterID int
		var playerID string
		if err := rows.Scan(&rosterID, &playerID); err != nil {
			return nil, err
		}
		i, ok := index[rosterID]
		if !ok {
			i = len(out)
			index[rosterID] = i
			out = append(out, model.MatchupStarters{RosterID: rosterID})
		}
		out[i].Starters = append(out[i].Starters, playerID)
	}
	return out, rows.Err()
}

// UpsertPlayers bulk-inserts the player directory in a transaction.
func (db *DB) UpsertPlayers(players []model.PlayerMeta) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO players(
			player_id, full_name, first_name, last_name, search_name,
			team, position, injury_status
		) VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range players {
		_, err = stmt.Exec(
			p.PlayerID, p.FullName, p.FirstName, p.LastName, p.SearchName,
			p.Team, p.Position, p.InjuryStatus,
		)
		if err != nil {
			return fmt.Errorf("insert player %s: %w", p.PlayerID, err)
		}
	}
	return tx.Commit()
}

// GetPlayers returns the full player directory keyed by player id.
func (db *DB) GetPlayers() (map[string]model.PlayerMeta, error) {
	rows, err := db.conn.Query(`
		SELECT player_id, full_name, first_name, last_name, search_name,
		       team, position, injury_status
		FROM players`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]model.PlayerMeta)
	for rows.Next() {
		var p model.PlayerMeta
		if err := rows.Scan(
			&p.PlayerID, &p.FullName, &p.FirstName, &p.LastName, &p.SearchName,
			&p.Team, &p.Position, &p.InjuryStatus,
		); err != nil {
			return nil, err
		}
		out[p.PlayerID] = p
	}
	return out, rows.Err()
}

// PlayerCount returns how many directory rows are cached.
func (db *DB) PlayerCount() (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM players").Scan(&n)
	return n, err
}

// UpsertStats bulk-inserts one stat window for a season in a transaction.
func (db *DB) UpsertStats(season, window string, stats map[string]model.StatRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO player_stats(
			season, stat_window, player_id,
			gp, pts, reb, ast, stl, blk, tov,
			fgm, fga, ftm, fta, fg3m, fg3a, ast_to, stl_to
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for playerID, s := range stats {
		_, err = stmt.Exec(
			season, window, playerID,
			s.GP, s.Pts, s.Reb, s.Ast, s.Stl, s.Blk, s.TOV,
			s.FGM, s.FGA, s.FTM, s.FTA, s.FG3M, s.FG3A, s.AstTO, s.StlTO,
		)
		if err != nil {
			return fmt.Errorf("insert player_stats for %s: %w", playerID, err)
		}
	}
	return tx.Commit()
}

// GetStats returns one stat window for a season keyed by player id.
func (db *DB) GetStats(season, window string) (map[string]model.StatRecord, error) {
	rows, err := db.conn.Query(`
		SELECT player_id,
		       gp, pts, reb, ast, stl, blk, tov,
		       fgm, fga, ftm, fta, fg3m, fg3a, ast_to, stl_to
		FROM player_stats WHERE season = ? AND stat_window = ?`, season, window)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]model.StatRecord)
	for rows.Next() {
		var playerID string
		var s model.StatRecord
		if err := rows.Scan(
			&playerID,
			&s.GP, &s.Pts, &s.Reb, &s.Ast, &s.Stl, &s.Blk, &s.TOV,
			&s.FGM, &s.FGA, &s.FTM, &s.FTA, &s.FG3M, &s.FG3A, &s.AstTO, &s.StlTO,
		); err != nil {
			return nil, err
		}
		out[playerID] = s
	}
	return out, rows.Err()
}

// HasStats reports whether any rows are cached for a season's stat window.
func (db *DB) HasStats(season, window string) (bool, error) {
	var n int
	err := db.conn.QueryRow(`
		SELECT COUNT(1) FROM player_stats WHERE season = ? AND stat_window = ?`,
		season, window).Scan(&n)
	return n > 0, err
}

// UpsertGames bulk-inserts schedule games in a transaction.
func (db *DB) UpsertGames(games []model.GameSummary) error {
	if len(games) == 0 {
		return nil
	}
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO schedule_games(
			game_id, game_date, tipoff, home_team, away_team, status
		) VALUES (?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, g := range games {
		if _, err = stmt.Exec(g.GameID, g.Date, g.Tipoff, g.HomeTeam, g.AwayTeam, g.Status); err != nil {
			return fmt.Errorf("insert schedule_games %s: %w", g.GameID, err)
		}
	}
	return tx.Commit()
}

// GamesBetween returns the games with dates in [start, end], ordered by date.
func (db *DB) GamesBetween(start, end string) ([]model.GameSummary, error) {
	rows, err := db.conn.Query(`
		SELECT game_id, game_date, tipoff, home_team, away_team, status
		FROM schedule_games
		WHERE game_date >= ? AND game_date <= ?
		ORDER BY game_date, game_id`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.GameSummary
	for rows.Next() {
		var g model.GameSummary
		if err := rows.Scan(&g.GameID, &g.Date, &g.Tipoff, &g.HomeTeam, &g.AwayTeam, &g.Status); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
