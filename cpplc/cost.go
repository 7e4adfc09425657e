// SPDX-License-Identifier: MIT
// Package cpplc - the pluggable load-dependent cost functions.
package cpplc

import "math"

// CostFunc prices one traversal: base is the edge's fixed weight, load is
// the cargo carried across it. Implementations must be monotone in load and
// return exactly base at load 0 so the classical model is the α=0 / Q=∞
// degenerate case of the load model.
type CostFunc func(base, load float64) float64

// DefaultAlpha is the linear load sensitivity used when no CostFunc is
// configured.
const DefaultAlpha = 0.5

// Piecewise band boundaries (as fractions of capacity) and per-band rates.
const (
	bandLow  = 1.0 / 3.0
	bandHigh = 2.0 / 3.0

	rateLow  = 0.2
	rateMid  = 0.5
	rateHigh = 1.0
)

// Linear returns cost = base · (1 + α·load/Q).
//
// At α=0 or Q=+Inf the factor collapses to 1 and the classical cost is
// recovered exactly.
func Linear(alpha, capacity float64) CostFunc {
	return func(base, load float64) float64 {
		return base * (1 + alpha*load/capacity)
	}
}

// Quadratic returns cost = base · (1 + α·(load/Q)²): near-empty traversals
// are almost free of load penalty, near-full ones dominate.
func Quadratic(alpha, capacity float64) CostFunc {
	return func(base, load float64) float64 {
		r := load / capacity

		return base * (1 + alpha*r*r)
	}
}

// Piecewise returns a three-band step model over the fill ratio load/Q:
// below 1/3 the surcharge rate is 0.2, between 1/3 and 2/3 it is 0.5, and
// above 2/3 the full rate 1.0 applies.
func Piecewise(capacity float64) CostFunc {
	return func(base, load float64) float64 {
		r := load / capacity
		switch {
		case r < bandLow:
			return base * (1 + rateLow*r)
		case r < bandHigh:
			return base * (1 + rateMid*r)
		default:
			return base * (1 + rateHigh*r)
		}
	}
}

// Fuel models consumption growth with gross weight:
// cost = base · ((empty + load)/empty)^β. An empty vehicle (load 0) pays
// exactly base; β tunes how steeply fuel burn follows cargo mass.
func Fuel(emptyWeight, beta float64) CostFunc {
	return func(base, load float64) float64 {
		return base * math.Pow((emptyWeight+load)/emptyWeight, beta)
	}
}
