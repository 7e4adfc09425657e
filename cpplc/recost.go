// Package cpplc: re-costing a classical tour under the load model.
package cpplc

import (
	"math"

	"github.com/katalvlaran/lvlroute/core"
	"github.com/katalvlaran/lvlroute/metric"
)

// estTripPenalty is the surcharge slope applied when no classical tour is
// available and only an estimated cost can be produced.
const estTripPenalty = 1.5

// recostTour walks a classical tour hop by hop and re-prices it under the
// load model. Each hop is priced by the graph edge it actually traversed
// (hopIDs, aligned with the tour), so parallel edges keep their own weights
// and demands. Cargo is picked up before departure: a traversal is priced
// at the load including its own pickup, and duplicated traversals of a
// demand edge pick up again, modelling repeated service stops. When the
// accumulated load would exceed capacity mid-tour, a depot detour is
// inserted: the ride home is priced at the pre-pickup load, the ride back
// at the fresh load of that single pickup. A traversal already heading to
// the depot never detours.
//
// Returns the load-aware tour (detour hops included), its cost, and the
// detour count.
//
// Complexity: O(|tour| + Σ|detour path|).
func recostTour(g *core.Graph, c *metric.Closure, capacity float64, depot int, costFn CostFunc, classical [][2]int, hopIDs []int) ([][2]int, float64, int, error) {
	var (
		tour  = make([][2]int, 0, len(classical))
		cost  float64
		load  float64
		trips int
	)

	appendLeg := func(a, b int, atLoad float64) error {
		if a == b {
			return nil
		}
		d, err := c.Dist(a, b)
		if err != nil {
			return err
		}
		cost += costFn(d, atLoad)
		path, err := c.Path(a, b)
		if err != nil {
			return err
		}
		for i := 0; i+1 < len(path); i++ {
			tour = append(tour, [2]int{path[i], path[i+1]})
		}

		return nil
	}

	for i, pr := range classical {
		a, b := pr[0], pr[1]

		// Resolve the traversed edge: by id when the tour carries one,
		// by endpoint lookup otherwise, by closure distance as a last
		// resort rather than mispricing.
		id := -1
		if i < len(hopIDs) {
			id = hopIDs[i]
		}
		var q, w float64
		if e, err := g.Edge(id); err == nil {
			q, w = demandOf(e), e.Weight
		} else if e, ok := g.EdgeBetween(a, b); ok {
			q, w = demandOf(e), e.Weight
		} else {
			d, derr := c.Dist(a, b)
			if derr != nil {
				return nil, 0, 0, derr
			}
			w = d
		}

		if load+q > capacity && b != depot {
			// Reset: home at the pre-pickup load, back out carrying only
			// this edge's cargo, then the service traversal itself.
			if err := appendLeg(a, depot, load); err != nil {
				return nil, 0, 0, err
			}
			trips++
			load = q
			if err := appendLeg(depot, a, load); err != nil {
				return nil, 0, 0, err
			}
		} else {
			load += q
		}

		cost += costFn(w, load)
		tour = append(tour, [2]int{a, b})
		if b == depot {
			load = 0
		}
	}

	return tour, cost, trips, nil
}

// estimateCost produces the labeled fallback when the classical stage ended
// without a tour: scale its upper-bound cost by an estimated-trips factor so
// the load model's extra work is at least reflected in the number.
func estimateCost(g *core.Graph, capacity, classicalCost float64) (cost float64, estTrips int) {
	totalQ := g.TotalDemand()
	if math.IsInf(capacity, 1) || totalQ == 0 {
		estTrips = 1
	} else {
		estTrips = int(totalQ/(2*capacity)) + 1
	}
	factor := 1 + estTripPenalty*float64(estTrips)/math.Max(1, float64(g.EdgeCount()))

	return classicalCost * factor, estTrips
}
