// Package core: Graph method implementations.
//
// All mutation happens during instance construction; every query below is
// read-only and deterministic (edge and adjacency order is insertion order,
// vertex enumerations are ascending by id).
package core

import (
	"fmt"
	"math"
)

// AddEdge appends an undirected edge u—v with the given weight and options,
// and returns its edge id (dense, starting at 0).
//
// Validation:
//   - u, v must lie in [0..n-1]            (ErrVertexOutOfRange)
//   - u != v                               (ErrLoopNotAllowed)
//   - weight finite                        (ErrBadWeight)
//   - weight >= 0                          (ErrNegativeWeight)
//   - demand, when given, finite and >= 0  (ErrNegativeDemand)
//
// Parallel edges are allowed and keep distinct ids.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight float64, opts ...EdgeOption) (int, error) {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return 0, fmt.Errorf("%w: (%d,%d) with n=%d", ErrVertexOutOfRange, u, v, g.n)
	}
	if u == v {
		return 0, fmt.Errorf("%w: vertex %d", ErrLoopNotAllowed, u)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0, ErrBadWeight
	}
	if weight < 0 {
		return 0, fmt.Errorf("%w: (%d,%d) weight=%g", ErrNegativeWeight, u, v, weight)
	}

	e := Edge{From: u, To: v, Weight: weight}
	for _, opt := range opts {
		opt(&e)
	}
	if e.HasDemand && (math.IsNaN(e.Demand) || math.IsInf(e.Demand, 0) || e.Demand < 0) {
		return 0, fmt.Errorf("%w: (%d,%d) demand=%g", ErrNegativeDemand, u, v, e.Demand)
	}

	id := len(g.edges)
	g.edges = append(g.edges, e)
	g.adj[u] = append(g.adj[u], id)
	g.adj[v] = append(g.adj[v], id)

	return id, nil
}

// VertexCount returns the number of vertices n.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of edges (parallel edges counted separately).
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Degree returns the number of edge endpoints incident to v.
// Returns ErrVertexOutOfRange for an invalid id.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= g.n {
		return 0, fmt.Errorf("%w: %d with n=%d", ErrVertexOutOfRange, v, g.n)
	}

	return len(g.adj[v]), nil
}

// Edge returns the edge record for the given edge id.
// Complexity: O(1).
func (g *Graph) Edge(id int) (Edge, error) {
	if id < 0 || id >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: id=%d", ErrEdgeNotFound, id)
	}

	return g.edges[id], nil
}

// Edges returns a copy of all edge records in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// IncidentEdges returns a copy of the edge ids incident to v, in insertion
// order. Returns ErrVertexOutOfRange for an invalid id.
// Complexity: O(deg(v)).
func (g *Graph) IncidentEdges(v int) ([]int, error) {
	if v < 0 || v >= g.n {
		return nil, fmt.Errorf("%w: %d with n=%d", ErrVertexOutOfRange, v, g.n)
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// EdgeBetween returns the lowest-id edge connecting u and v (either
// orientation) and true, or a zero Edge and false when none exists.
// Complexity: O(deg(u)).
func (g *Graph) EdgeBetween(u, v int) (Edge, bool) {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return Edge{}, false
	}
	best := -1
	for _, id := range g.adj[u] {
		e := g.edges[id]
		if (e.From == u && e.To == v) || (e.From == v && e.To == u) {
			if best == -1 || id < best {
				best = id
			}
		}
	}
	if best == -1 {
		return Edge{}, false
	}

	return g.edges[best], true
}

// TotalWeight returns the sum of all edge weights.
// Complexity: O(E).
func (g *Graph) TotalWeight() float64 {
	var sum float64
	for i := range g.edges {
		sum += g.edges[i].Weight
	}

	return sum
}

// TotalDemand returns the sum of recorded edge demands; edges without a
// recorded demand contribute nothing.
// Complexity: O(E).
func (g *Graph) TotalDemand() float64 {
	var sum float64
	for i := range g.edges {
		if g.edges[i].HasDemand {
			sum += g.edges[i].Demand
		}
	}

	return sum
}

// OddVertices returns the ascending list of vertices with odd degree.
// By the handshake lemma the returned slice always has even length for any
// well-formed Graph; callers treat a violation as a fatal upstream bug.
// Complexity: O(V).
func (g *Graph) OddVertices() []int {
	odd := make([]int, 0, g.n/2+1)
	for v := 0; v < g.n; v++ {
		if len(g.adj[v])&1 == 1 {
			odd = append(odd, v)
		}
	}

	return odd
}

// IsConnected reports whether every vertex is reachable from vertex 0.
// Isolated vertices make a graph disconnected for the postman pipeline even
// though they carry no edges to cover.
// Complexity: O(V + E).
func (g *Graph) IsConnected() bool {
	if g.n == 1 {
		return true
	}

	seen := make([]bool, g.n)
	stack := make([]int, 0, g.n)
	seen[0] = true
	stack = append(stack, 0)

	var reached = 1
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, id := range g.adj[u] {
			e := g.edges[id]
			w := e.From
			if w == u {
				w = e.To
			}
			if !seen[w] {
				seen[w] = true
				reached++
				stack = append(stack, w)
			}
		}
	}

	return reached == g.n
}

// Clone returns an independent deep copy of the graph. The augmenter uses
// this to build its working multigraph without touching the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	cp := &Graph{
		n:     g.n,
		edges: make([]Edge, len(g.edges)),
		adj:   make([][]int, g.n),
	}
	copy(cp.edges, g.edges)
	for v := range g.adj {
		cp.adj[v] = append([]int(nil), g.adj[v]...)
	}

	return cp
}
