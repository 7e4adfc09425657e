// Package matching: exact and greedy matching implementations.
package matching

import (
	"math"
	"math/bits"
	"time"
)

// deadlineCheckStride controls how many DP states are processed between
// wall-clock checks. Checking per state would dominate the inner loop.
const deadlineCheckStride = 1 << 13

// MinWeightPerfect computes an exact minimum-weight perfect matching over
// the k points of the square cost matrix.
//
// Implementation: the DP primitive below maximizes total weight, so all
// entries are negated before matching and the total is negated back.
// Do not “simplify” this into a direct call on raw weights — that exact
// mistake shipped once and doubled tour costs.
//
// Contract:
//   - cost must be square with even k (ErrNonSquare / ErrOddCardinality);
//     entries must not be NaN (ErrBadCost). k==0 yields an empty matching.
//   - deadline is advisory: zero means none; when set, the DP aborts with
//     ErrDeadlineExceeded soon after it passes.
//   - On success, exactly k/2 pairs are returned, each index in exactly one.
//
// Complexity: O(2^k · k) time, O(2^k) space.
func MinWeightPerfect(cost [][]float64, deadline time.Time) ([]Pair, float64, error) {
	k, err := validateCost(cost)
	if err != nil {
		return nil, 0, err
	}
	if k == 0 {
		return nil, 0, nil
	}

	// Negate into a scratch matrix; the primitive maximizes.
	neg := make([][]float64, k)
	for i := 0; i < k; i++ {
		neg[i] = make([]float64, k)
		for j := 0; j < k; j++ {
			neg[i][j] = -cost[i][j]
		}
	}

	pairs, negTotal, err := maxWeightPerfect(neg, deadline)
	if err != nil {
		return nil, 0, err
	}

	return pairs, -negTotal, nil
}

// maxWeightPerfect is the underlying primitive: an exact maximum-weight
// perfect matching over subsets.
//
// DP over bitmasks: best[mask] is the maximum weight of a perfect matching
// on the points in mask; the lowest set bit is always paired first, which
// visits each even-popcount mask exactly once.
//
// Complexity: O(2^k · k) time, O(2^k) space.
func maxWeightPerfect(cost [][]float64, deadline time.Time) ([]Pair, float64, error) {
	k := len(cost)

	var (
		size   = 1 << uint(k)
		best   = make([]float64, size)
		choice = make([]int32, size) // encodes the pair (i,j) taken at mask
	)
	for m := 1; m < size; m++ {
		best[m] = math.Inf(-1)
		choice[m] = -1
	}

	var mask int
	for mask = 1; mask < size; mask++ {
		// Advisory wall-clock checkpoint.
		if mask&(deadlineCheckStride-1) == 0 && !deadline.IsZero() && time.Now().After(deadline) {
			return nil, 0, ErrDeadlineExceeded
		}

		// Skip odd-popcount masks: no perfect matching on them.
		if bits.OnesCount(uint(mask))&1 == 1 {
			continue
		}

		// i = lowest set bit of mask; pair it with every higher set bit j.
		i := bits.TrailingZeros(uint(mask))
		rest := mask &^ (1 << uint(i))
		for j := i + 1; j < k; j++ {
			if rest&(1<<uint(j)) == 0 {
				continue
			}
			prev := rest &^ (1 << uint(j))
			if math.IsInf(best[prev], -1) {
				continue
			}
			if cand := best[prev] + cost[i][j]; cand > best[mask] {
				best[mask] = cand
				choice[mask] = int32(i)<<16 | int32(j)
			}
		}
	}

	full := size - 1
	if math.IsInf(best[full], -1) {
		// Unreachable for finite inputs, kept as a defensive invariant.
		return nil, 0, ErrBadCost
	}

	// Reconstruct the chosen pairs by unwinding the DP.
	pairs := make([]Pair, 0, k/2)
	for m := full; m != 0; {
		enc := choice[m]
		i := int(enc >> 16)
		j := int(enc & 0xffff)
		pairs = append(pairs, Pair{i, j})
		m &^= (1 << uint(i)) | (1 << uint(j))
	}

	return pairs, best[full], nil
}

// Greedy pairs each remaining point with its cheapest remaining partner,
// processing points in ascending index order (ties break to the lowest
// index). Deterministic, O(k²), no optimality guarantee.
//
// Contract: same matrix validation as MinWeightPerfect; returns k/2 pairs.
func Greedy(cost [][]float64) ([]Pair, float64, error) {
	k, err := validateCost(cost)
	if err != nil {
		return nil, 0, err
	}
	if k == 0 {
		return nil, 0, nil
	}

	remaining := make([]int, k)
	for i := range remaining {
		remaining[i] = i
	}

	var (
		pairs = make([]Pair, 0, k/2)
		total float64
	)
	for len(remaining) > 1 {
		u := remaining[0]
		remaining = remaining[1:]

		bestIdx, bestD := -1, math.Inf(1)
		for i, v := range remaining {
			if d := cost[u][v]; d < bestD {
				bestD, bestIdx = d, i
			}
		}
		v := remaining[bestIdx]
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)

		pairs = append(pairs, Pair{u, v})
		total += bestD
	}

	return pairs, total, nil
}

// validateCost checks shape and entries, returning k.
func validateCost(cost [][]float64) (int, error) {
	k := len(cost)
	if k&1 == 1 {
		return 0, ErrOddCardinality
	}
	for i := 0; i < k; i++ {
		if len(cost[i]) != k {
			return 0, ErrNonSquare
		}
		for j := 0; j < k; j++ {
			if math.IsNaN(cost[i][j]) {
				return 0, ErrBadCost
			}
		}
	}

	return k, nil
}
