package matching

import "time"

// MaxWeightPerfectForTest exposes the internal maximizing primitive so the
// negation regression test can pin down the min-vs-max relationship.
func MaxWeightPerfectForTest(cost [][]float64, deadline time.Time) ([]Pair, float64, error) {
	return maxWeightPerfect(cost, deadline)
}
