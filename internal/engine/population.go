package engine

import (
	"sort"

	"github.com/rotomet/rotomet/internal/model"
)

// PopulationEntry is one qualifying player in the baseline population.
type PopulationEntry struct {
	PlayerID string
	Stats    model.StatRecord
}

// BuildPopulation collects the distinct player ids across every roster and
// keeps those with a stat line showing at least one game played in the
// window. Players absent from stats are silently excluded. The result is
// sorted by player id.
func BuildPopulation(rosters []model.Roster, stats map[string]model.StatRecord) []PopulationEntry {
	seen := make(map[string]struct{})
	for _, r := range rosters {
		for _, id := range r.Players {
			seen[id] = struct{}{}
		}
	}

	pop := make([]PopulationEntry, 0, len(seen))
	for id := range seen {
		rec, ok := stats[id]
		if !ok || rec.GP <= 0 {
			continue
		}
		pop = append(pop, PopulationEntry{PlayerID: id, Stats: rec})
	}
	sort.Slice(pop, func(i, j int) bool { return pop[i].PlayerID < pop[j].PlayerID })
	return pop
}
