// Package cpplc: capacity feasibility precheck.
package cpplc

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlroute/core"
)

// feasibleTrips runs a first-fit-decreasing bin packing of the per-edge
// demands into capacity-Q trips. It returns the trip count of the packing
// and whether every single demand actually fits: a demand exceeding Q alone
// makes the instance infeasible (that edge gets its own over-full trip so
// the count stays meaningful, but feasible flips to false).
//
// This is a precheck, never a gate — the builders service every edge
// regardless and the caller surfaces infeasibility as a warning.
//
// Complexity: O(E log E + E·T) for T trips.
func feasibleTrips(g *core.Graph, capacity float64) (trips int, feasible bool) {
	demands := make([]float64, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.HasDemand && e.Demand > 0 {
			demands = append(demands, e.Demand)
		}
	}
	if len(demands) == 0 {
		return 0, true
	}
	if math.IsInf(capacity, 1) {
		return 1, true
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(demands)))

	feasible = true
	var bins []float64
	for _, q := range demands {
		if q > capacity {
			// Oversized demand: count its own trip, flag infeasibility.
			feasible = false
			bins = append(bins, q)
			continue
		}
		placed := false
		for i := range bins {
			if bins[i]+q <= capacity {
				bins[i] += q
				placed = true
				break
			}
		}
		if !placed {
			bins = append(bins, q)
		}
	}

	return len(bins), feasible
}
