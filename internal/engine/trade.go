package engine

import (
	"sort"

	"github.com/rotomet/rotomet/internal/model"
)

// ScoreTradeTargets ranks every player on every other roster by the signed
// differential between the requesting team's needed and spare categories.
// Players without a valuation are skipped; a missing category entry scores 0.
// The full list is returned sorted by trade score descending.
func ScoreTradeTargets(rosterID int, rosters []model.Roster, scores map[string]model.PlayerZScore, needCat, spareCat string) []model.TradeRecommendation {
	var recs []model.TradeRecommendation
	for _, r := range rosters {
		if r.RosterID == rosterID {
			continue
		}
		for _, id := range r.Players {
			z, ok := scores[id]
			if !ok {
				continue
			}
			needZ := z.Scores[needCat]
			spareZ := z.Scores[spareCat]
			recs = append(recs, model.TradeRecommendation{
				PlayerID:   id,
				Name:       z.Name,
				RosterID:   r.RosterID,
				OwnerName:  r.OwnerName,
				NeedZ:      needZ,
				SpareZ:     spareZ,
				TradeScore: round2(needZ - spareZ),
			})
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].TradeScore != recs[j].TradeScore {
			return recs[i].TradeScore > recs[j].TradeScore
		}
		return recs[i].PlayerID < recs[j].PlayerID
	})
	return recs
}
