// Package postman: Eulerian circuit extraction (Hierholzer).
package postman

import "fmt"

// eulerianCircuit extracts a closed walk traversing every multigraph edge
// exactly once, starting and ending at start. It returns the vertex walk,
// the multi-edge id consumed at each hop (hops[i] connects walk[i] and
// walk[i+1]), and the summed traversal cost (each duplicated edge priced
// once per traversal). Keeping the hop ids is what lets callers re-price a
// tour by the actual edge traversed instead of guessing between parallels.
//
// Determinism: arcs are consumed in insertion order via a per-vertex cursor,
// so a fixed start vertex and fixed edge-insertion order always reproduce
// the identical circuit — test fixtures depend on this.
//
// Contract: the multigraph is connected with all-even degrees (guaranteed by
// buildEulerian); leftover unused edges mean that contract was broken and
// surface as ErrAugmentationInvariant.
//
// Complexity: O(E).
func eulerianCircuit(m *multigraph, start int) ([]int, []int, float64, error) {
	var (
		used  = make([]bool, m.edgeCount())
		ptr   = make([]int, m.n) // next unconsumed arc per vertex
		walk  = make([]int, 0, m.edgeCount()+1)
		trail = make([]int, 0, m.edgeCount()+1) // incoming edge per emitted vertex

		vstack = []int{start}
		estack = []int{-1} // edge that led to the stacked vertex; -1 for the root
		cost   float64
	)

	for len(vstack) > 0 {
		u := vstack[len(vstack)-1]

		// Skip arcs whose edge was already traversed from the other side.
		for ptr[u] < len(m.arcs[u]) && used[m.arcs[u][ptr[u]].id] {
			ptr[u]++
		}

		if ptr[u] == len(m.arcs[u]) {
			// No unused incident edges: backtrack, emitting u and the edge
			// that reached it.
			walk = append(walk, u)
			trail = append(trail, estack[len(estack)-1])
			vstack = vstack[:len(vstack)-1]
			estack = estack[:len(estack)-1]
			continue
		}

		// Traverse one edge u→v and continue the DFS from v.
		a := m.arcs[u][ptr[u]]
		used[a.id] = true
		cost += m.weights[a.id]
		vstack = append(vstack, a.to)
		estack = append(estack, a.id)
	}

	// Every edge must have been consumed exactly once.
	if len(walk) != m.edgeCount()+1 {
		return nil, nil, 0, fmt.Errorf("%w: circuit covers %d of %d edges",
			ErrAugmentationInvariant, len(walk)-1, m.edgeCount())
	}

	// Hierholzer emits the circuit reversed; flip both sequences for the
	// natural order. After the flip trail[0] is the root's -1 sentinel and
	// trail[i+1] is the edge of hop i.
	for i, j := 0, len(walk)-1; i < j; i, j = i+1, j-1 {
		walk[i], walk[j] = walk[j], walk[i]
		trail[i], trail[j] = trail[j], trail[i]
	}

	return walk, trail[1:], cost, nil
}

// walkToTour converts a vertex walk into the edge-traversal pairs of a
// SolveResult tour.
// Complexity: O(E).
func walkToTour(walk []int) [][2]int {
	if len(walk) < 2 {
		return nil
	}
	tour := make([][2]int, len(walk)-1)
	for i := 0; i+1 < len(walk); i++ {
		tour[i] = [2]int{walk[i], walk[i+1]}
	}

	return tour
}
