// Package metric: Dijkstra-based closure construction.
//
// Implementation notes:
//
//   - One Dijkstra run per source over a flattened arc list built once
//     (O(V+E)), so per-source work touches no maps.
//   - “Lazy decrease-key”: shorter distances push duplicate heap entries;
//     stale entries are skipped on pop via the done marker.
//   - Non-negative weights are guaranteed by core.Graph construction, so no
//     per-edge negativity re-scan is needed here.
package metric

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlroute/core"
)

// arc is one directed half of an undirected edge, prepared for relaxation.
type arc struct {
	to int
	w  float64
}

// Build computes the metric closure of g.
//
// Contract:
//   - g non-nil (ErrNilGraph).
//   - Build always succeeds on a valid graph, connected or not; queries on
//     unreachable pairs surface ErrNoPath at lookup time.
//
// Complexity: O(V·(V + E) log V) time, O(V² + E) space.
func Build(g *core.Graph) (*Closure, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.VertexCount()

	// 1) Flatten adjacency once; each undirected edge yields two arcs.
	arcs := make([][]arc, n)
	for _, e := range g.Edges() {
		arcs[e.From] = append(arcs[e.From], arc{to: e.To, w: e.Weight})
		arcs[e.To] = append(arcs[e.To], arc{to: e.From, w: e.Weight})
	}

	// 2) Allocate the dense tables.
	c := &Closure{
		n:      n,
		dist:   make([][]float64, n),
		parent: make([][]int32, n),
	}

	// 3) One single-source expansion per vertex.
	for s := 0; s < n; s++ {
		c.dist[s], c.parent[s] = singleSource(arcs, n, s)
	}

	return c, nil
}

// singleSource runs Dijkstra from s and returns the distance and predecessor
// rows. Unreachable vertices keep +Inf / -1.
func singleSource(arcs [][]arc, n, s int) ([]float64, []int32) {
	dist := make([]float64, n)
	parent := make([]int32, n)
	done := make([]bool, n)
	for v := 0; v < n; v++ {
		dist[v] = math.Inf(1)
		parent[v] = -1
	}
	dist[s] = 0

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, nodeItem{id: s, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(nodeItem)
		u := item.id
		if done[u] {
			continue // stale lazy-decrease-key entry
		}
		done[u] = true

		for _, a := range arcs[u] {
			nd := dist[u] + a.w
			// Strict improvement only; ties keep the earlier (deterministic) parent.
			if nd < dist[a.to] {
				dist[a.to] = nd
				parent[a.to] = int32(u)
				heap.Push(&pq, nodeItem{id: a.to, dist: nd})
			}
		}
	}

	return dist, parent
}

// VertexCount returns the number of vertices the closure was built over.
// Complexity: O(1).
func (c *Closure) VertexCount() int { return c.n }

// Dist returns the shortest-path distance from u to v.
// Returns ErrNoPath when the pair is disconnected.
// Complexity: O(1).
func (c *Closure) Dist(u, v int) (float64, error) {
	if u < 0 || u >= c.n || v < 0 || v >= c.n {
		return 0, fmt.Errorf("%w: (%d,%d) with n=%d", ErrVertexOutOfRange, u, v, c.n)
	}
	d := c.dist[u][v]
	if math.IsInf(d, 1) {
		return 0, fmt.Errorf("%w: %d→%d", ErrNoPath, u, v)
	}

	return d, nil
}

// Path returns the shortest path from u to v as an ordered vertex sequence,
// inclusive of both endpoints. Path(u,u) is [u].
// Returns ErrNoPath when the pair is disconnected.
// Complexity: O(len(path)).
func (c *Closure) Path(u, v int) ([]int, error) {
	if u < 0 || u >= c.n || v < 0 || v >= c.n {
		return nil, fmt.Errorf("%w: (%d,%d) with n=%d", ErrVertexOutOfRange, u, v, c.n)
	}
	if math.IsInf(c.dist[u][v], 1) {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, u, v)
	}

	// Walk predecessors from v back to u, then reverse in place.
	path := []int{v}
	for cur := v; cur != u; {
		p := c.parent[u][cur]
		if p < 0 {
			// Defensive: reachable vertices always carry a parent chain to u.
			return nil, fmt.Errorf("%w: broken parent chain %d→%d", ErrNoPath, u, v)
		}
		cur = int(p)
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending, with ties
// broken by vertex id to keep expansion order deterministic.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
