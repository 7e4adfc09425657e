// Package cpplc: greedy insertion tour construction.
package cpplc

import (
	"errors"
	"time"

	"github.com/katalvlaran/lvlroute/core"
	"github.com/katalvlaran/lvlroute/metric"
)

// errBudgetExhausted aborts greedy construction at a deadline checkpoint;
// Solve converts it into the labeled timeout fallback, never an error.
var errBudgetExhausted = errors.New("cpplc: time budget exhausted")

// demandOf treats an untyped edge as a zero-pickup traversal.
func demandOf(e core.Edge) float64 {
	if e.HasDemand {
		return e.Demand
	}

	return 0
}

// greedyTour services every edge of g by repeatedly picking the cheapest
// load-aware insertion: for each unserviced edge, price the travel leg to
// its first endpoint plus the service traversal at the post-pickup load; if
// the pickup would exceed capacity, price the mandatory depot detour (at
// the current load) plus a fresh-load restart instead. Ties break toward
// the lowest edge id, keeping construction deterministic.
//
// An edge whose own demand exceeds capacity is still serviced — over-full,
// on a dedicated trip — because the precheck warning, not a refusal, is the
// contract for infeasible instances.
//
// Returns the tour (service edges plus travel-leg hops), total load-aware
// cost, and the number of mid-route depot returns.
//
// The deadline is advisory and checked once per insertion round (the scans
// between checkpoints are O(E)); a zero deadline means no budget.
//
// Complexity: O(E²) insertion scans plus O(Σ|path|) leg expansion.
func greedyTour(g *core.Graph, c *metric.Closure, capacity float64, depot int, costFn CostFunc, deadline time.Time) ([][2]int, float64, int, error) {
	edges := g.Edges()
	unserviced := make(map[int]bool, len(edges))
	for id := range edges {
		unserviced[id] = true
	}

	var (
		tour  [][2]int
		cost  float64
		load  float64
		trips int
		cur   = depot
	)

	// travelCost prices a leg from a to b at the given load, using the
	// shortest-path distance from the closure.
	travelCost := func(a, b int, atLoad float64) (float64, error) {
		if a == b {
			return 0, nil
		}
		d, err := c.Dist(a, b)
		if err != nil {
			return 0, err
		}

		return costFn(d, atLoad), nil
	}

	// appendLeg expands the shortest path a→b into tour hops.
	appendLeg := func(a, b int) error {
		if a == b {
			return nil
		}
		path, err := c.Path(a, b)
		if err != nil {
			return err
		}
		for i := 0; i+1 < len(path); i++ {
			tour = append(tour, [2]int{path[i], path[i+1]})
		}

		return nil
	}

	for len(unserviced) > 0 {
		// Advisory wall-clock checkpoint, once per insertion round.
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return nil, 0, 0, errBudgetExhausted
		}

		var (
			bestID    = -1
			bestTotal float64
			bestVia   bool
			bestLoad  float64
		)

		// Ascending id scan: strict improvement keeps ties on the lowest id.
		for id := range edges {
			if !unserviced[id] {
				continue
			}
			e := edges[id]
			q := demandOf(e)

			var (
				total    float64
				viaDepot bool
				newLoad  float64
			)
			if load+q > capacity {
				// Forced reset: pay the ride home at the current load,
				// restart empty, pick up, service.
				cHome, err := travelCost(cur, depot, load)
				if err != nil {
					return nil, 0, 0, err
				}
				cOut, err := travelCost(depot, e.From, 0)
				if err != nil {
					return nil, 0, 0, err
				}
				total = cHome + cOut + costFn(e.Weight, q)
				viaDepot = true
				newLoad = q
			} else {
				cLeg, err := travelCost(cur, e.From, load)
				if err != nil {
					return nil, 0, 0, err
				}
				total = cLeg + costFn(e.Weight, load+q)
				newLoad = load + q
			}

			if bestID < 0 || total < bestTotal {
				bestID, bestTotal, bestVia, bestLoad = id, total, viaDepot, newLoad
			}
		}

		e := edges[bestID]
		if bestVia {
			if cur != depot || load > 0 {
				trips++
			}
			home, err := travelCost(cur, depot, load)
			if err != nil {
				return nil, 0, 0, err
			}
			cost += home
			if err = appendLeg(cur, depot); err != nil {
				return nil, 0, 0, err
			}
			cur, load = depot, 0
		}

		// Pick up before departure: the service traversal carries the new
		// cargo already on board.
		leg, err := travelCost(cur, e.From, load)
		if err != nil {
			return nil, 0, 0, err
		}
		cost += leg
		if err = appendLeg(cur, e.From); err != nil {
			return nil, 0, 0, err
		}
		load = bestLoad
		cost += costFn(e.Weight, load)
		tour = append(tour, [2]int{e.From, e.To})
		cur = e.To
		delete(unserviced, bestID)
	}

	// Close the tour at the depot, still carrying the final pickups.
	home, err := travelCost(cur, depot, load)
	if err != nil {
		return nil, 0, 0, err
	}
	cost += home
	if err = appendLeg(cur, depot); err != nil {
		return nil, 0, 0, err
	}

	return tour, cost, trips, nil
}
