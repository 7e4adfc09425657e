// Package matching provides minimum-weight perfect matching primitives for
// the odd-degree vertex set of the postman pipeline.
//
// Two constructions are offered, mirroring the usual exact/heuristic split:
//
//   - MinWeightPerfect — exact, via a maximum-weight DP primitive run on
//     negated weights (the underlying primitive maximizes; the sign flip is
//     load-bearing and regression-tested — using the maximizer directly on
//     raw weights historically produced a ~2× cost regression).
//   - Greedy — deterministic nearest-partner pairing; fast, not optimal.
//
// Inputs are dense k×k cost matrices over matching indices 0..k-1; the
// caller maps indices back to vertex ids.
//
// Errors (sentinel):
//
//	– ErrOddCardinality    if k is odd (perfect matching impossible).
//	– ErrNonSquare         if the cost matrix is not square.
//	– ErrBadCost           if a cost entry is NaN.
//	– ErrDeadlineExceeded  if the exact DP ran past the caller's deadline.
package matching

import "errors"

// Sentinel errors for matching construction.
var (
	// ErrOddCardinality indicates an odd number of points; a perfect
	// matching cannot exist (handshake-lemma violation upstream).
	ErrOddCardinality = errors.New("matching: odd number of points")

	// ErrNonSquare indicates a malformed (non-square) cost matrix.
	ErrNonSquare = errors.New("matching: cost matrix is not square")

	// ErrBadCost indicates a NaN cost entry.
	ErrBadCost = errors.New("matching: cost entry is NaN")

	// ErrDeadlineExceeded indicates the exact DP exceeded the deadline.
	ErrDeadlineExceeded = errors.New("matching: deadline exceeded")
)

// Pair is one matched index pair (i, j) with i < j.
type Pair [2]int
