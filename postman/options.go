// Package postman: solver configuration via functional options.
package postman

import (
	"math"
	"time"
)

// NoTimeBudget disables the wall-clock budget entirely.
// A budget of exactly zero is honored literally: the first checkpoint fires
// and the solver returns the labeled approximation.
const NoTimeBudget = time.Duration(math.MaxInt64)

// MatchingAlgo selects the odd-vertex matching construction.
type MatchingAlgo int

const (
	// MatchingExact runs the exact minimum-weight perfect matching
	// (negated max-weight DP). Default.
	MatchingExact MatchingAlgo = iota

	// MatchingGreedy runs the deterministic nearest-partner heuristic.
	// Results are valid tours but are labeled Exact=false with
	// ReasonHeuristicMatching.
	MatchingGreedy
)

// Options configures one Solve call.
//
// TimeBudget  – advisory wall-clock budget, checked at phase boundaries
// (a single phase may overrun before the check fires; callers
// needing hard preemption must isolate the solve externally).
// StartVertex – fixed circuit start; with a fixed edge order this makes the
// extracted tour fully deterministic.
// Matching    – exact or greedy odd-vertex pairing.
type Options struct {
	TimeBudget  time.Duration
	StartVertex int
	Matching    MatchingAlgo
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the solver defaults: no budget, start at vertex 0,
// exact matching.
func DefaultOptions() Options {
	return Options{
		TimeBudget:  NoTimeBudget,
		StartVertex: 0,
		Matching:    MatchingExact,
	}
}

// WithTimeBudget caps the solve at d of wall-clock time. Zero is a valid
// budget meaning "fail to the approximation immediately"; negative values
// panic with ErrBadTimeBudget (invalid configuration, caller bug).
func WithTimeBudget(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadTimeBudget.Error())
		}
		o.TimeBudget = d
	}
}

// WithStartVertex fixes the circuit start vertex. Range is validated inside
// Solve (the graph is not known here); out-of-range surfaces as
// ReasonInvalidInput.
func WithStartVertex(v int) Option {
	return func(o *Options) { o.StartVertex = v }
}

// WithMatching selects the matching construction.
func WithMatching(algo MatchingAlgo) Option {
	return func(o *Options) { o.Matching = algo }
}
