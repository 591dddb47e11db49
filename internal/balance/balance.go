// Package balance splits match participants into two teams of equal size
// with close total ratings.
package balance

import (
	"sort"

	"github.com/google/uuid"
)

type Player struct {
	ID     uuid.UUID
	Rating int
}

type Team struct {
	Players []Player
	Total   int
}

// Split sorts the players by rating descending (stable, so equal ratings
// keep their input order) and walks the list greedily, giving each player
// to the team with the lower running total. Ties go to team A. The result
// is deterministic: the same input always produces the same teams.
//
// The caller guarantees an even, non-empty input; the split always covers
// the full list in two halves and never fails.
func Split(players []Player) (Team, Team) {
	sorted := make([]Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	half := len(sorted) / 2
	a := Team{Players: make([]Player, 0, half)}
	b := Team{Players: make([]Player, 0, half)}
	for _, p := range sorted {
		switch {
		case len(a.Players) == half:
			b.add(p)
		case len(b.Players) == half:
			a.add(p)
		case b.Total < a.Total:
			b.add(p)
		default:
			a.add(p)
		}
	}
	return a, b
}

func (t *Team) add(p Player) {
	t.Players = append(t.Players, p)
	t.Total += p.Rating
}
