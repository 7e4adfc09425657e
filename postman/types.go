// Package postman implements the classical Chinese-postman solver pipeline:
// odd-degree vertex identification, minimum-weight perfect matching over the
// metric closure, Eulerian augmentation, and Hierholzer circuit extraction —
// wrapped in a wall-clock-budgeted dispatcher that degrades to a documented
// upper-bound approximation instead of crashing or lying.
//
// The one hard invariant callers build on: a SolveResult with Exact==false
// always carries a non-None Reason, and a result with Reason==ReasonNone is
// always exact. Approximations are never disguised as ground truth.
//
// This file declares the sentinel errors, the FailureReason enum, and the
// SolveResult/Diagnostics records.
package postman

import (
	"errors"
	"time"
)

// Sentinel errors for pipeline-internal invariants. Solve never returns
// these to the caller directly — they are converted into the labeled
// approximation terminal state — but helpers surface them for tests.
var (
	// ErrNilGraph indicates a nil *core.Graph input.
	ErrNilGraph = errors.New("postman: graph is nil")

	// ErrNotConnected indicates the input graph is disconnected; the
	// classical postman problem is undefined on it.
	ErrNotConnected = errors.New("postman: graph is not connected")

	// ErrParityViolation indicates an odd number of odd-degree vertices —
	// a handshake-lemma violation that can only come from a caller bug.
	ErrParityViolation = errors.New("postman: odd count of odd-degree vertices")

	// ErrMatchingIncomplete indicates the matching primitive paired fewer
	// than |odd|/2 pairs; never silently accepted.
	ErrMatchingIncomplete = errors.New("postman: perfect matching incomplete")

	// ErrAugmentationInvariant indicates the augmented multigraph still has
	// odd-degree vertices — a matching or path-reconstruction bug upstream.
	ErrAugmentationInvariant = errors.New("postman: augmented graph is not Eulerian")

	// ErrBadTimeBudget indicates a negative time budget option.
	ErrBadTimeBudget = errors.New("postman: time budget must be non-negative")

	// ErrStartOutOfRange indicates an invalid start vertex option.
	ErrStartOutOfRange = errors.New("postman: start vertex out of range")
)

// FailureReason is the closed enum of ways a solve can degrade. It replaces
// string-matched exception messages: the distinction between a timeout, a
// disconnected graph, and a matching failure is checked by the compiler.
type FailureReason int

const (
	// ReasonNone marks an exact result.
	ReasonNone FailureReason = iota

	// ReasonTimeout: the wall-clock budget expired at a phase checkpoint.
	ReasonTimeout

	// ReasonInvalidInput: nil graph or out-of-range start vertex.
	ReasonInvalidInput

	// ReasonDisconnected: the graph failed the connectivity precondition.
	ReasonDisconnected

	// ReasonParity: handshake-lemma violation (odd count of odd vertices).
	ReasonParity

	// ReasonNoPath: closure lookup failed on a pair the caller believed
	// connected.
	ReasonNoPath

	// ReasonMatchingIncomplete: the matching primitive returned a partial
	// pairing.
	ReasonMatchingIncomplete

	// ReasonAugmentation: augmentation left odd-degree vertices behind.
	ReasonAugmentation

	// ReasonHeuristicMatching: the caller selected the greedy matcher; the
	// tour is valid but the augmentation is not provably minimal.
	ReasonHeuristicMatching
)

// String returns the stable lower_snake form used in solution files.
func (r FailureReason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonTimeout:
		return "timeout"
	case ReasonInvalidInput:
		return "invalid_input"
	case ReasonDisconnected:
		return "disconnected_graph"
	case ReasonParity:
		return "parity_violation"
	case ReasonNoPath:
		return "no_path"
	case ReasonMatchingIncomplete:
		return "matching_incomplete"
	case ReasonAugmentation:
		return "augmentation_invariant"
	case ReasonHeuristicMatching:
		return "heuristic_matching"
	default:
		return "unknown"
	}
}

// Diagnostics carries solve metadata for downstream tables and experiments.
// The load-dependent fields are filled by the cpplc package, which reuses
// SolveResult so every consumer sees one record shape.
type Diagnostics struct {
	// OddVertexCount is |O| of the classical pipeline.
	OddVertexCount int

	// MatchingCost is the total shortest-path cost of the chosen pairing.
	MatchingCost float64

	// DuplicatedEdges is the number of path edges added by augmentation.
	DuplicatedEdges int

	// DepotTrips counts forced depot returns (load-dependent variant).
	DepotTrips int

	// PercentIncrease is the load-dependent cost increase over the
	// classical baseline for the same graph; non-negative by construction.
	PercentIncrease float64

	// CapacityWarning reports that the bin-packing feasibility precheck
	// could not partition the demand into trips within capacity. The solve
	// still proceeds; this is best-effort information, not an error.
	CapacityWarning bool
}

// SolveResult is the immutable outcome of one solve call.
type SolveResult struct {
	// Cost is the total tour cost (stabilized to 1e-9).
	Cost float64

	// Tour is the ordered edge-traversal sequence forming a closed walk.
	// Empty on the 2×-upper-bound approximation path.
	Tour [][2]int

	// TourEdges holds, aligned with Tour, the graph edge id traversed at
	// each hop; a duplicated traversal repeats its edge's id. This keeps
	// parallel edges distinguishable when a tour is re-priced downstream.
	// Filled by the classical solver; nil on approximation results and on
	// load-aware tours, whose travel legs carry no single edge identity.
	TourEdges []int

	// Elapsed is the wall-clock duration of the solve.
	Elapsed time.Duration

	// Exact reports whether Cost is the true optimum of the pipeline.
	// Exact==false ⇔ Reason!=ReasonNone.
	Exact bool

	// Reason explains a non-exact result; ReasonNone otherwise.
	Reason FailureReason

	// Diagnostics carries per-solve metadata.
	Diagnostics Diagnostics
}
