// Package metric computes the metric closure of a weighted undirected graph:
// all-pairs shortest-path distances plus reconstructible paths, produced by
// one Dijkstra expansion per source vertex.
//
// The closure is computed once per solve and then queried in O(1) per
// distance lookup — re-running per-pair shortest paths while building the
// odd-vertex matching graph is the dominant cost driver of the naive
// approach, and batching here is what removes it.
//
// Complexity:
//
//	– Build: O(V·(V + E) log V) time, O(V²) space (dense distance table).
//	– Dist:  O(1) per query.
//	– Path:  O(len(path)) per query.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexOutOfRange if a queried vertex id is outside [0..n-1].
//	– ErrNoPath          if the queried pair is not connected.
package metric

import "errors"

// Sentinel errors returned by the closure implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Build.
	ErrNilGraph = errors.New("metric: graph is nil")

	// ErrVertexOutOfRange indicates a query referenced a vertex id outside
	// the dense range of the underlying graph.
	ErrVertexOutOfRange = errors.New("metric: vertex id out of range")

	// ErrNoPath indicates that no path exists between the queried pair.
	// Callers must propagate this, not default it to a large constant;
	// only the solver's explicitly labeled approximation path may absorb it.
	ErrNoPath = errors.New("metric: no path between vertices")
)

// Closure holds the precomputed all-pairs shortest-path data.
//
// dist[s][v] is the shortest distance from s to v (+Inf when unreachable);
// parent[s][v] is the predecessor of v on that path (-1 for the source
// itself and for unreachable vertices).
type Closure struct {
	n      int
	dist   [][]float64
	parent [][]int32
}
