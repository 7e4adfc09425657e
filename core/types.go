// Package core defines the central Graph and Edge types for the postman-tour
// engine, and provides primitives for building and querying weighted
// undirected multigraphs over dense integer vertex ids.
//
// A Graph is constructed once per problem instance with a fixed vertex count
// and is read-only for every solver that consumes it; the Eulerian augmenter
// works on a derived copy (Clone), never on the original.
//
// This file declares Edge, EdgeOption, Graph, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrNoVertices        - graph constructed with a non-positive vertex count.
//	ErrVertexOutOfRange  - a vertex id is outside [0..n-1].
//	ErrLoopNotAllowed    - self-loop (u == v) attempted.
//	ErrNegativeWeight    - edge weight is negative.
//	ErrBadWeight         - edge weight is NaN or ±Inf.
//	ErrNegativeDemand    - edge demand is negative, NaN, or ±Inf.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNoVertices indicates that NewGraph was called with n <= 0.
	ErrNoVertices = errors.New("core: graph needs at least one vertex")

	// ErrVertexOutOfRange indicates an operation referenced a vertex id
	// outside the dense range [0..n-1].
	ErrVertexOutOfRange = errors.New("core: vertex id out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted; postman tours
	// are defined over loop-free multigraphs.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNegativeWeight indicates an edge with a negative weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates an edge weight that is NaN or infinite.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrNegativeDemand indicates a demand that is negative or non-finite.
	ErrNegativeDemand = errors.New("core: edge demand must be finite and non-negative")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge id.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge represents one undirected connection between two vertices.
//
// From/To are dense vertex ids; the pair is stored in insertion orientation
// but carries no direction. Weight is the fixed traversal cost. Demand is the
// cargo quantity picked up when the edge is serviced; HasDemand distinguishes
// "demand zero" from "no demand recorded" (typed absence, never a silent
// default).
type Edge struct {
	// From is the first endpoint vertex id.
	From int

	// To is the second endpoint vertex id.
	To int

	// Weight is the non-negative, finite traversal cost of the edge.
	Weight float64

	// Demand is the cargo picked up when servicing this edge.
	// Meaningful only when HasDemand is true.
	Demand float64

	// HasDemand reports whether a demand was recorded for this edge.
	HasDemand bool
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithDemand records a cargo demand for the edge. Demand is symmetric by
// convention: (u,v) and (v,u) denote the same pickup.
func WithDemand(q float64) EdgeOption {
	return func(e *Edge) {
		e.Demand = q
		e.HasDemand = true
	}
}

// Graph is the in-memory weighted undirected multigraph.
//
// Vertices are the dense ids 0..n-1. Parallel edges are always permitted
// (the Eulerian augmentation step depends on them); self-loops are not.
// A Graph is not safe for concurrent mutation, but any number of readers
// may share it once construction is complete.
type Graph struct {
	n     int     // number of vertices
	edges []Edge  // edge records, indexed by edge id
	adj   [][]int // adj[v] = incident edge ids in insertion order
}

// NewGraph creates an empty Graph over the vertices 0..n-1.
// Returns ErrNoVertices when n <= 0.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n <= 0 {
		return nil, ErrNoVertices
	}

	return &Graph{
		n:   n,
		adj: make([][]int, n),
	}, nil
}
