package engine

import (
	"testing"

	"github.com/rotomet/rotomet/internal/model"
)

// tradeFixture: roster 1 requests, rosters 2 and 3 hold candidates. opp3 has
// no valuation and must be skipped.
func tradeFixture() ([]model.Roster, map[string]model.PlayerZScore) {
	rosters := []model.Roster{
		{RosterID: 1, OwnerName: "me", Players: []string{"mine1", "mine2"}},
		{RosterID: 2, OwnerName: "rival", Players: []string{"opp1", "opp2", "opp3"}},
		{RosterID: 3, OwnerName: "other", Players: []string{"opp4"}},
	}
	scores := map[string]model.PlayerZScore{
		"mine1": {PlayerID: "mine1", Name: "mine1", Scores: map[string]float64{"blk": 5}},
		"opp1":  {PlayerID: "opp1", Name: "opp1", Scores: map[string]float64{"blk": 2.0, "ast": 1.0}},
		"opp2":  {PlayerID: "opp2", Name: "opp2", Scores: map[string]float64{"blk": -0.5, "ast": 2.0}},
		"opp4":  {PlayerID: "opp4", Name: "opp4", Scores: map[string]float64{"blk": 1.0}},
	}
	return rosters, scores
}

// TestTradeTargets_Basic: every scored player on every other roster appears
// exactly once, scored needZ − spareZ and sorted non-increasing.
func TestTradeTargets_Basic(t *testing.T) {
	rosters, scores := tradeFixture()
	recs := ScoreTradeTargets(1, rosters, scores, "blk", "ast")

	if len(recs) != 3 {
		t.Fatalf("want 3 candidates (opp3 unscored, own players excluded), got %d", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].TradeScore > recs[i-1].TradeScore {
			t.Fatal("trade scores must be non-increasing")
		}
	}

	// opp1: 2.0 − 1.0 = 1.0; opp4: 1.0 − 0 = 1.0 (missing spare defaults 0);
	// opp2: −0.5 − 2.0 = −2.5. Tie between opp1/opp4 breaks on player id.
	if recs[0].PlayerID != "opp1" || recs[1].PlayerID != "opp4" || recs[2].PlayerID != "opp2" {
		t.Errorf("order: want [opp1 opp4 opp2], got [%s %s %s]",
			recs[0].PlayerID, recs[1].PlayerID, recs[2].PlayerID)
	}
	if recs[2].TradeScore != -2.5 {
		t.Errorf("opp2 score: want -2.5, got %f", recs[2].TradeScore)
	}
	if recs[0].OwnerName != "rival" {
		t.Errorf("owner attribution: want rival, got %s", recs[0].OwnerName)
	}
}

// TestTradeTargets_MissingCategories: both categories absent scores 0, and
// the candidate still appears.
func TestTradeTargets_MissingCategories(t *testing.T) {
	rosters := []model.Roster{
		{RosterID: 1, Players: nil},
		{RosterID: 2, Players: []string{"opp1"}},
	}
	scores := map[string]model.PlayerZScore{
		"opp1": {PlayerID: "opp1", Name: "opp1", Scores: map[string]float64{}},
	}
	recs := ScoreTradeTargets(1, rosters, scores, "stl", "to")
	if len(recs) != 1 {
		t.Fatalf("want 1 candidate, got %d", len(recs))
	}
	if recs[0].TradeScore != 0 || recs[0].NeedZ != 0 || recs[0].SpareZ != 0 {
		t.Errorf("missing categories default to 0, got %+v", recs[0])
	}
}
