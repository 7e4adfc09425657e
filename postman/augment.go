// Package postman: Eulerian augmentation.
//
// For every matched odd-vertex pair the shortest path between them is
// duplicated into a working multigraph copy of the input, after which every
// vertex has even degree. The original graph is never mutated.
package postman

import (
	"fmt"

	"github.com/katalvlaran/lvlroute/core"
	"github.com/katalvlaran/lvlroute/metric"
)

// marc is one directed half of a multigraph edge, keyed by edge id so the
// circuit extractor can consume each edge exactly once and price it by its
// own weight.
type marc struct {
	to int
	id int
}

// multigraph is the augmented working copy handed to circuit extraction.
type multigraph struct {
	n       int
	weights []float64 // weight per multi-edge id
	orig    []int     // originating graph edge id per multi-edge (-1 unknown)
	arcs    [][]marc  // arcs[v], insertion order (determinism anchor)
}

func newMultigraph(n int) *multigraph {
	return &multigraph{n: n, arcs: make([][]marc, n)}
}

// addEdge appends an undirected edge and returns its id. orig records which
// graph edge this multi-edge traverses; duplicates repeat the original's id
// so downstream re-pricing never collapses parallel edges onto one record.
func (m *multigraph) addEdge(u, v int, w float64, orig int) int {
	id := len(m.weights)
	m.weights = append(m.weights, w)
	m.orig = append(m.orig, orig)
	m.arcs[u] = append(m.arcs[u], marc{to: v, id: id})
	m.arcs[v] = append(m.arcs[v], marc{to: u, id: id})

	return id
}

// edgeCount returns the number of multi-edges.
func (m *multigraph) edgeCount() int { return len(m.weights) }

// pairKey normalizes an undirected vertex pair for map lookups.
func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}

// buildEulerian copies g into a multigraph and duplicates, for every matched
// pair, each edge along the pair's shortest path.
//
// Postconditions:
//   - every vertex has even degree (ErrAugmentationInvariant otherwise);
//   - returned matching cost equals the summed pair distances.
//
// Note: a duplicate between adjacent path vertices x,y rides the cheapest
// parallel edge between them, whose weight equals Dist(x,y) on a shortest
// path — exactly the edge the optimal augmentation reuses — and carries
// that edge's id for downstream re-pricing.
//
// Complexity: O(V + E + Σ|path|).
func buildEulerian(g *core.Graph, c *metric.Closure, pairs [][2]int) (*multigraph, float64, error) {
	m := newMultigraph(g.VertexCount())
	edges := g.Edges()

	// 1) Original edges keep their true weights, ids, and insertion order.
	for id, e := range edges {
		m.addEdge(e.From, e.To, e.Weight, id)
	}

	// Cheapest edge id per vertex pair (ties keep the lowest id): shortest
	// paths only ever hop over these, so each duplicate can name the graph
	// edge it rides on.
	cheapest := make(map[[2]int]int, len(edges))
	for id, e := range edges {
		k := pairKey(e.From, e.To)
		if best, ok := cheapest[k]; !ok || e.Weight < edges[best].Weight {
			cheapest[k] = id
		}
	}

	// 2) Duplicate the shortest path of every matched pair.
	var matchingCost float64
	for _, p := range pairs {
		d, err := c.Dist(p[0], p[1])
		if err != nil {
			return nil, 0, err
		}
		matchingCost += d

		path, err := c.Path(p[0], p[1])
		if err != nil {
			return nil, 0, err
		}
		for i := 0; i+1 < len(path); i++ {
			cid, ok := cheapest[pairKey(path[i], path[i+1])]
			if !ok {
				// Adjacent shortest-path vertices always share an edge.
				return nil, 0, fmt.Errorf("%w: no edge under path hop %d—%d",
					ErrAugmentationInvariant, path[i], path[i+1])
			}
			m.addEdge(path[i], path[i+1], edges[cid].Weight, cid)
		}
	}

	// 3) Even-degree postcondition; never proceed to extraction on an odd
	//    multigraph.
	for v := 0; v < m.n; v++ {
		if len(m.arcs[v])&1 == 1 {
			return nil, 0, fmt.Errorf("%w: vertex %d has odd degree %d",
				ErrAugmentationInvariant, v, len(m.arcs[v]))
		}
	}

	return m, matchingCost, nil
}
