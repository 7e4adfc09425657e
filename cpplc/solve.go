// SPDX-License-Identifier: MIT
// Package cpplc - the load-dependent solve dispatcher.
package cpplc

import (
	"errors"
	"math"
	"time"

	"github.com/katalvlaran/lvlroute/core"
	"github.com/katalvlaran/lvlroute/metric"
	"github.com/katalvlaran/lvlroute/postman"
)

// roundScale mirrors the classical dispatcher's cost stabilization.
const roundScale = 1e9

func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// Solve computes a load-aware edge-covering tour of g under capacity Q.
//
// The classical solver runs first (anchored at the depot) to provide both
// the RecostClassicalTour input and the baseline for the percent-increase
// diagnostic. The capacity precheck then bin-packs the demands; an
// infeasible packing sets Diagnostics.CapacityWarning but never aborts.
//
// Contracts:
//   - capacity must be positive; +Inf disables the constraint entirely.
//   - The returned Cost is never below the classical baseline when the
//     baseline is exact: load factors are ≥ 1 at any nonnegative load.
//   - Configuration errors return a real error; solve-stage degradations
//     return a labeled result exactly like the classical engine does.
//
// Errors: ErrNilGraph, ErrBadCapacity, ErrBadDepot, ErrUnknownStrategy.
func Solve(g *core.Graph, capacity float64, opts ...Option) (postman.SolveResult, error) {
	start := time.Now()

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Stage 0 - configuration guards: these are caller bugs, not instance
	// properties, so they surface as errors rather than labeled results.
	if g == nil {
		return postman.SolveResult{}, ErrNilGraph
	}
	if !(capacity > 0) || math.IsNaN(capacity) {
		return postman.SolveResult{}, ErrBadCapacity
	}
	if cfg.Depot < 0 || cfg.Depot >= g.VertexCount() {
		return postman.SolveResult{}, ErrBadDepot
	}
	if cfg.Strategy != RecostClassicalTour && cfg.Strategy != GreedyInsertion {
		return postman.SolveResult{}, ErrUnknownStrategy
	}
	costFn := cfg.Cost
	if costFn == nil {
		costFn = Linear(DefaultAlpha, capacity)
	}

	// Stage 1 - classical baseline, anchored at the depot so both
	// strategies and the comparison share one frame of reference.
	classical := postman.Solve(g,
		postman.WithStartVertex(cfg.Depot),
		postman.WithTimeBudget(cfg.TimeBudget),
	)

	// Stage 2 - capacity precheck (warning only).
	_, feasible := feasibleTrips(g, capacity)

	res := postman.SolveResult{
		Exact:       classical.Exact,
		Reason:      classical.Reason,
		Diagnostics: classical.Diagnostics,
	}
	res.Diagnostics.CapacityWarning = !feasible

	// estimate is the labeled fallback shared by every degradation path:
	// no tour, scaled upper-bound cost, explicit reason.
	estimate := func(reason postman.FailureReason) (postman.SolveResult, error) {
		cost, estTrips := estimateCost(g, capacity, classical.Cost)
		res.Cost = round1e9(cost)
		res.Tour = nil
		res.TourEdges = nil
		res.Exact = false
		res.Reason = reason
		res.Diagnostics.DepotTrips = estTrips
		res.Elapsed = time.Since(start)

		return res, nil
	}

	// Stage 3 - construction.
	if len(classical.Tour) == 0 {
		if classical.Reason == postman.ReasonNone {
			// Exact empty tour: nothing to cover, nothing to re-price.
			res.Cost = classical.Cost
			res.Elapsed = time.Since(start)

			return res, nil
		}
		if cfg.Strategy == RecostClassicalTour {
			// No tour to re-price: estimated cost, labeled like the
			// classical fallback it is built on.
			return estimate(classical.Reason)
		}
	}

	// Advisory deadline shared with the greedy construction rounds.
	var deadline time.Time
	if cfg.TimeBudget != postman.NoTimeBudget {
		deadline = start.Add(cfg.TimeBudget)
	}

	c, err := metric.Build(g)
	if err != nil {
		return postman.SolveResult{}, err
	}

	var (
		tour  [][2]int
		cost  float64
		trips int
	)
	if cfg.Strategy == RecostClassicalTour {
		tour, cost, trips, err = recostTour(g, c, capacity, cfg.Depot, costFn, classical.Tour, classical.TourEdges)
	} else {
		tour, cost, trips, err = greedyTour(g, c, capacity, cfg.Depot, costFn, deadline)
	}
	if err != nil {
		// Instance degradations stay labeled results, exactly like the
		// classical engine; only genuine programming errors escape.
		switch {
		case errors.Is(err, metric.ErrNoPath):
			reason := classical.Reason
			if reason == postman.ReasonNone {
				reason = postman.ReasonDisconnected
			}

			return estimate(reason)
		case errors.Is(err, errBudgetExhausted):
			return estimate(postman.ReasonTimeout)
		default:
			return postman.SolveResult{}, err
		}
	}
	res.Cost = round1e9(cost)
	res.Tour = tour
	res.Diagnostics.DepotTrips = trips

	// Percent increase over the classical baseline; only meaningful against
	// an exact baseline (an approximation's 2×ΣW bound is not comparable).
	if classical.Exact && classical.Cost > 0 {
		res.Diagnostics.PercentIncrease = round1e9((res.Cost - classical.Cost) / classical.Cost * 100)
	}

	res.Elapsed = time.Since(start)

	return res, nil
}
