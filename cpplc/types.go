// Package cpplc extends the classical postman engine with load-dependent
// traversal costs (CPP-LC): edge costs grow with the vehicle's accumulated
// cargo, bounded by a capacity Q that forces periodic depot returns.
//
// Two construction strategies are supported:
//
//   - GreedyInsertion — build a tour from scratch by repeatedly servicing
//     the unserviced edge with the cheapest load-aware insertion cost,
//     detouring through the depot when capacity would be exceeded.
//   - RecostClassicalTour — walk the classical solver's tour edge by edge
//     and re-price it under the load model, guaranteeing an apples-to-apples
//     comparison against the classical baseline. Pick-up happens before
//     departure: the load factor applied to an edge reflects the cargo
//     actually carried across it.
//
// Capacity infeasibility (the bin-packing precheck cannot partition total
// demand into trips within Q) is a diagnostics warning, never a refusal:
// service always proceeds, best-effort, and the warning is surfaced to API
// consumers instead of hidden.
//
// Results reuse postman.SolveResult so every downstream consumer sees one
// record shape; the load-specific fields live in its Diagnostics.
package cpplc

import (
	"errors"
	"time"

	"github.com/katalvlaran/lvlroute/postman"
)

// Sentinel errors for builder configuration and inputs.
var (
	// ErrNilGraph indicates a nil *core.Graph input.
	ErrNilGraph = errors.New("cpplc: graph is nil")

	// ErrBadCapacity indicates a capacity that is not positive (or NaN).
	// +Inf is legal and means "no capacity constraint".
	ErrBadCapacity = errors.New("cpplc: capacity must be positive")

	// ErrBadDepot indicates a depot vertex outside the graph's range.
	ErrBadDepot = errors.New("cpplc: depot vertex out of range")

	// ErrUnknownStrategy indicates an unrecognized Strategy value.
	ErrUnknownStrategy = errors.New("cpplc: unknown construction strategy")
)

// Strategy selects the tour construction approach.
type Strategy int

const (
	// RecostClassicalTour re-prices the classical tour under the load
	// model. Default: it is the strategy with the comparison guarantee.
	RecostClassicalTour Strategy = iota

	// GreedyInsertion builds a load-aware tour from scratch.
	GreedyInsertion
)

// Options configures one load-dependent solve.
//
// Depot      – vertex where load resets to zero (default 0).
// Cost       – load-dependent cost function; nil selects Linear(DefaultAlpha, Q).
// Strategy   – construction strategy (default RecostClassicalTour).
// TimeBudget – forwarded to the classical sub-solve.
type Options struct {
	Depot      int
	Cost       CostFunc
	Strategy   Strategy
	TimeBudget time.Duration
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the builder defaults.
func DefaultOptions() Options {
	return Options{
		Depot:      0,
		Cost:       nil,
		Strategy:   RecostClassicalTour,
		TimeBudget: postman.NoTimeBudget,
	}
}

// WithDepot sets the depot vertex. Range is validated inside Solve.
func WithDepot(v int) Option {
	return func(o *Options) { o.Depot = v }
}

// WithCostFunc selects the load-dependent cost function.
func WithCostFunc(f CostFunc) Option {
	return func(o *Options) { o.Cost = f }
}

// WithStrategy selects the construction strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithTimeBudget caps the classical sub-solve's wall-clock time.
func WithTimeBudget(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic(postman.ErrBadTimeBudget.Error())
		}
		o.TimeBudget = d
	}
}
