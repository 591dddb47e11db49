// Package elo adjusts team ratings after a match. The whole match counts
// as a single team-vs-team contest: everyone on a team moves by the same
// amount, and the two team deltas are exact negatives of each other.
package elo

import "math"

type Points float64

const (
	Win  Points = 1
	Draw Points = 0.5
	Lose Points = 0
)

// Expected returns team A's expected score against team B from the two
// team-average ratings.
func Expected(avgA, avgB float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (avgB-avgA)/400.0))
}

// Deltas returns the per-player rating change for each team. pointsA is
// team A's actual score (Win, Draw or Lose).
//
// The raw delta k*(Sa-Ea) is rounded half away from zero once and negated
// for team B, so deltaA == -deltaB always holds. Rounding the two sides
// independently could drift them apart by one point.
func Deltas(avgA, avgB float64, pointsA Points, k int) (int, int) {
	deltaA := int(math.Round(float64(k) * (float64(pointsA) - Expected(avgA, avgB))))
	return deltaA, -deltaA
}

// Mean is the average rating of a team given its total and size.
func Mean(total, size int) float64 {
	return float64(total) / float64(size)
}
