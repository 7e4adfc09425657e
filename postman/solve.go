// SPDX-License-Identifier: MIT
// Package postman - the budgeted solve dispatcher.
//
// State machine:
//
//	Init → ComputingClosure → Matching → Augmenting → ExtractingCircuit → Done(exact)
//
// with a parallel TimedOut → Approximating → Done(approx) path entered when
// the wall-clock budget has expired at any checkpoint between phases, and an
// equivalent terminal for every internal invariant failure. The engine never
// panics into the caller and never returns an unlabeled approximation.
//
// Approximation policy (documented, not silent): cost = 2·Σ(edge weights) —
// a valid upper bound obtained by duplicating every edge — with an empty
// tour, Exact=false, and the specific FailureReason preserved.
package postman

import (
	"errors"
	"math"
	"time"

	"github.com/katalvlaran/lvlroute/core"
	"github.com/katalvlaran/lvlroute/matching"
	"github.com/katalvlaran/lvlroute/metric"
)

// roundScale stabilizes returned costs to 1e-9 absolute precision, keeping
// results identical across platforms without affecting optimality.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// Solve computes a minimum-cost edge-covering closed walk of g under the
// classical fixed-cost model.
//
// Contracts:
//   - g should be connected; a disconnected input degrades to the labeled
//     approximation (ReasonDisconnected) rather than failing the caller.
//   - The result is deterministic for a fixed graph and options: calling
//     twice yields the identical cost and tour.
//   - Exact==false ⇔ Reason!=ReasonNone (hard invariant).
//
// Complexity: closure O(V·(V+E) log V), exact matching O(2^k·k) over the
// k odd vertices, augmentation + extraction O(V + E + Σ|path|).
func Solve(g *core.Graph, opts ...Option) SolveResult {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()

	// Advisory deadline: zero Time means no budget at all.
	var deadline time.Time
	if cfg.TimeBudget != NoTimeBudget {
		deadline = start.Add(cfg.TimeBudget)
	}
	expired := func() bool {
		return !deadline.IsZero() && !time.Now().Before(deadline)
	}

	var diag Diagnostics
	approx := func(r FailureReason) SolveResult {
		var upper float64
		if g != nil {
			upper = round1e9(2 * g.TotalWeight())
		}

		return SolveResult{
			Cost:        upper,
			Tour:        nil,
			Elapsed:     time.Since(start),
			Exact:       false,
			Reason:      r,
			Diagnostics: diag,
		}
	}

	// Stage 0 - input guards.
	if g == nil {
		return approx(ReasonInvalidInput)
	}
	if cfg.StartVertex < 0 || cfg.StartVertex >= g.VertexCount() {
		return approx(ReasonInvalidInput)
	}
	if g.EdgeCount() == 0 {
		// Nothing to cover: the empty tour is trivially optimal on a
		// single vertex; anything larger is disconnected.
		if g.VertexCount() == 1 {
			return SolveResult{Cost: 0, Tour: nil, Elapsed: time.Since(start), Exact: true}
		}

		return approx(ReasonDisconnected)
	}
	if !g.IsConnected() {
		return approx(ReasonDisconnected)
	}

	// Checkpoint: Init → ComputingClosure.
	if expired() {
		return approx(ReasonTimeout)
	}
	closure, err := metric.Build(g)
	if err != nil {
		return approx(ReasonInvalidInput)
	}

	// Odd-vertex identification; parity is a fatal caller-bug signal that
	// the dispatcher converts into a labeled terminal, never a wrong cost.
	odd := g.OddVertices()
	diag.OddVertexCount = len(odd)
	if len(odd)&1 == 1 {
		return approx(ReasonParity)
	}

	// Checkpoint: ComputingClosure → Matching.
	if expired() {
		return approx(ReasonTimeout)
	}

	var (
		pairs     [][2]int
		heuristic bool
	)
	if len(odd) > 0 {
		costM, cerr := oddCostMatrix(closure, odd)
		if cerr != nil {
			return approx(ReasonNoPath)
		}

		var (
			idxPairs  []matching.Pair
			matchCost float64
			merr      error
		)
		switch cfg.Matching {
		case MatchingGreedy:
			idxPairs, matchCost, merr = matching.Greedy(costM)
			heuristic = true
		default:
			idxPairs, matchCost, merr = matching.MinWeightPerfect(costM, deadline)
		}
		if merr != nil {
			if errors.Is(merr, matching.ErrDeadlineExceeded) {
				return approx(ReasonTimeout)
			}

			return approx(ReasonMatchingIncomplete)
		}
		// Partial pairings are never silently accepted.
		if len(idxPairs) != len(odd)/2 {
			return approx(ReasonMatchingIncomplete)
		}
		diag.MatchingCost = round1e9(matchCost)

		// Map matching indices back to vertex ids.
		pairs = make([][2]int, len(idxPairs))
		for i, p := range idxPairs {
			pairs[i] = [2]int{odd[p[0]], odd[p[1]]}
		}
	}

	// Checkpoint: Matching → Augmenting.
	if expired() {
		return approx(ReasonTimeout)
	}
	m, _, aerr := buildEulerian(g, closure, pairs)
	if aerr != nil {
		return approx(ReasonAugmentation)
	}
	diag.DuplicatedEdges = m.edgeCount() - g.EdgeCount()

	// Checkpoint: Augmenting → ExtractingCircuit.
	if expired() {
		return approx(ReasonTimeout)
	}
	walk, hops, cost, xerr := eulerianCircuit(m, cfg.StartVertex)
	if xerr != nil {
		return approx(ReasonAugmentation)
	}

	// Resolve each hop's multi-edge back to its graph edge id.
	tourEdges := make([]int, len(hops))
	for i, id := range hops {
		tourEdges[i] = m.orig[id]
	}

	res := SolveResult{
		Cost:        round1e9(cost),
		Tour:        walkToTour(walk),
		TourEdges:   tourEdges,
		Elapsed:     time.Since(start),
		Exact:       true,
		Reason:      ReasonNone,
		Diagnostics: diag,
	}
	if heuristic {
		// Valid tour, unproven optimality: labeled, not disguised.
		res.Exact = false
		res.Reason = ReasonHeuristicMatching
	}

	return res
}

// oddCostMatrix builds the complete matching-cost matrix over the odd
// vertex subset from the precomputed closure — one O(1) lookup per pair,
// which is the whole point of batching the closure upfront.
//
// Complexity: O(k²).
func oddCostMatrix(c *metric.Closure, odd []int) ([][]float64, error) {
	k := len(odd)
	costM := make([][]float64, k)
	for i := 0; i < k; i++ {
		costM[i] = make([]float64, k)
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			d, err := c.Dist(odd[i], odd[j])
			if err != nil {
				return nil, err
			}
			costM[i][j] = d
			costM[j][i] = d
		}
	}

	return costM, nil
}
