// Package sleeper provides a minimal client for the public Sleeper fantasy API.
package sleeper

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// baseURL is the root endpoint for the Sleeper API. No authentication is
// required; all endpoints are public reads.
const baseURL = "https://api.sleeper.app/v1"

// Client is a minimal Sleeper API client.
type Client struct {
	base string
	http *http.Client
}

// NewClient returns a Sleeper API client.
func NewClient() *Client {
	return &Client{
		base: baseURL,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// League holds the fields we need from /league/{id}.
type League struct {
	LeagueID        string             `json:"league_id"`
	Name            string             `json:"name"`
	Season          string             `json:"season"`
	ScoringSettings map[string]float64 `json:"scoring_settings"`
	RosterPositions []string           `json:"roster_positions"`
}

// RosterEntry is one entry from /league/{id}/rosters.
type RosterEntry struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
}

// User is one entry from /league/{id}/users.
type User struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// Matchup is one entry from /league/{id}/matchups/{week}. Sleeper returns one
// row per roster; starters reflect the current lineup.
type Matchup struct {
	RosterID  int      `json:"roster_id"`
	MatchupID int      `json:"matchup_id"`
	Starters  []string `json:"starters"`
}

// PlayerInfo is one entry from the /players/nba directory.
type PlayerInfo struct {
	PlayerID       string `json:"player_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	FullName       string `json:"full_name"`
	SearchFullName string `json:"search_full_name"`
	Team           string `json:"team"`
	Position       string `json:"position"`
	InjuryStatus   string `json:"injury_status"`
	Active         bool   `json:"active"`
}

// get performs a GET request against the Sleeper API and JSON-decodes the
// response body into out.
func (c *Client) get(path string, out interface{}) error {
	log.Debug().Str("path", path).Msg("sleeper request")
	resp, err := c.http.Get(c.base + path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("GET %s: not found (check the league id)", path)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// GetLeague returns a league's settings.
func (c *Client) GetLeague(leagueID string) (*League, error) {
	var l League
	if err := c.get("/league/"+leagueID, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// GetRosters returns every roster in a league.
func (c *Client) GetRosters(leagueID string) ([]RosterEntry, error) {
	var out []RosterEntry
	if err := c.get("/league/"+leagueID+"/rosters", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUsers returns the league's members, used to attach owner display names
// to rosters.
func (c *Client) GetUsers(leagueID string) ([]User, error) {
	var out []User
	if err := c.get("/league/"+leagueID+"/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMatchups returns the matchup rows for one week.
func (c *Client) GetMatchups(leagueID string, week int) ([]Matchup, error) {
	var out []Matchup
	if err := c.get(fmt.Sprintf("/league/%s/matchups/%d", leagueID, week), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPlayers downloads the full NBA player directory keyed by player id.
// The payload is large (~5 MB); callers should cache it.
func (c *Client) GetPlayers() (map[string]PlayerInfo, error) {
	var out map[string]PlayerInfo
	if err := c.get("/players/nba", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSeasonStats returns season-to-date stat totals per player id. Stat keys
// are Sleeper's lowercase names (pts, reb, fga, ...).
func (c *Client) GetSeasonStats(season string) (map[string]map[string]float64, error) {
	var out map[string]map[string]float64
	if err := c.get("/stats/nba/regular/"+season, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetWeekStats returns one week's stat totals per player id.
func (c *Client) GetWeekStats(season string, week int) (map[string]map[string]float64, error) {
	var out map[string]map[string]float64
	if err := c.get(fmt.Sprintf("/stats/nba/regular/%s/%d", season, week), &out); err != nil {
		return nil, err
	}
	return out, nil
}
