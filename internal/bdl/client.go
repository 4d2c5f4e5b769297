// Package bdl provides a minimal client for the balldontlie NBA API, used to
// pull the game schedule.
package bdl

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

const baseURL = "https://api.balldontlie.io/v1"

// perPage is the API's maximum page size.
const perPage = 100

// Client is a minimal balldontlie API client.
type Client struct {
	base   string
	apiKey string
	http   *http.Client
}

// NewClient returns a balldontlie client authenticated with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		base:   baseURL,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Game holds the fields we need from the /games endpoint.
type Game struct {
	ID       int    `json:"id"`
	Date     string `json:"date"` // YYYY-MM-DD
	Status   string `json:"status"`
	HomeTeam Team   `json:"home_team"`
	Visitor  Team   `json:"visitor_team"`
}

// Team is the nested team object on a game.
type Team struct {
	Abbreviation string `json:"abbreviation"`
}

type gamesPage struct {
	Data []Game `json:"data"`
	Meta struct {
		NextCursor *int `json:"next_cursor"`
	} `json:"meta"`
}

// get performs an authenticated GET request and JSON-decodes the response
// into out.
func (c *Client) get(path string, out interface{}) error {
	log.Debug().Str("path", path).Msg("balldontlie request")
	req, err := http.NewRequest("GET", c.base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("GET %s: unauthorized (set a balldontlie API key)", path)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// GamesBetween returns every game with a date in [start, end], following the
// cursor until the range is exhausted. Dates are YYYY-MM-DD.
func (c *Client) GamesBetween(start, end string) ([]Game, error) {
	var out []Game
	cursor := 0
	for {
		params := url.Values{
			"start_date": {start},
			"end_date":   {end},
			"per_page":   {fmt.Sprintf("%d", perPage)},
		}
		if cursor > 0 {
			params.Set("cursor", fmt.Sprintf("%d", cursor))
		}

		var page gamesPage
		if err := c.get("/games?"+params.Encode(), &page); err != nil {
			return nil, err
		}
		out = append(out, page.Data...)

		if page.Meta.NextCursor == nil {
			return out, nil
		}
		cursor = *page.Meta.NextCursor
	}
}
