package sleeper

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient()
	c.base = srv.URL
	return c
}

func TestGetLeague(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/league/123" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"league_id": "123",
			"name": "Hoops",
			"season": "2026",
			"scoring_settings": {"pts": 1, "to": -1},
			"roster_positions": ["PG", "C", "BN"]
		}`))
	})

	l, err := c.GetLeague("123")
	if err != nil {
		t.Fatalf("GetLeague: %v", err)
	}
	if l.Name != "Hoops" || l.Season != "2026" {
		t.Errorf("league mismatch: %+v", l)
	}
	if l.ScoringSettings["to"] != -1 {
		t.Errorf("scoring mismatch: %+v", l.ScoringSettings)
	}
	if len(l.RosterPositions) != 3 {
		t.Errorf("positions mismatch: %+v", l.RosterPositions)
	}
}

func TestGetLeagueNotFound(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "null", http.StatusNotFound)
	})
	if _, err := c.GetLeague("nope"); err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestGetRosters(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"roster_id": 1, "owner_id": "u1", "players": ["p1", "p2"], "starters": ["p1"]},
			{"roster_id": 2, "owner_id": "u2", "players": null, "starters": null}
		]`))
	})

	rosters, err := c.GetRosters("123")
	if err != nil {
		t.Fatalf("GetRosters: %v", err)
	}
	if len(rosters) != 2 {
		t.Fatalf("expected 2 rosters, got %d", len(rosters))
	}
	if rosters[0].RosterID != 1 || len(rosters[0].Players) != 2 {
		t.Errorf("roster mismatch: %+v", rosters[0])
	}
	// Sleeper serializes empty rosters as null arrays.
	if rosters[1].Players != nil {
		t.Errorf("null players should decode to nil, got %+v", rosters[1].Players)
	}
}

func TestGetSeasonStats(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stats/nba/regular/2026" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"p1": {"gp": 40, "pts": 1000.5}, "p2": {"gp": 12}}`))
	})

	stats, err := c.GetSeasonStats("2026")
	if err != nil {
		t.Fatalf("GetSeasonStats: %v", err)
	}
	if stats["p1"]["pts"] != 1000.5 {
		t.Errorf("stats mismatch: %+v", stats["p1"])
	}
}
