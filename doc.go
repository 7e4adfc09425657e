// Package lvlroute is an in-memory engine for minimum-cost edge-covering
// tours (postman tours) on weighted, connected graphs — both the classical
// fixed-cost problem and its load-dependent, capacity-bounded extension.
//
// 🚀 What is lvlroute?
//
//	A deterministic, cgo-free library built around one pipeline:
//		• Core primitives: dense integer-id multigraphs with typed edge demand
//		• Metric closure: batched all-pairs shortest paths (Dijkstra per source)
//		• Odd-vertex matching: exact minimum-weight perfect matching + greedy
//		• Eulerian augmentation & Hierholzer circuit extraction
//		• Budgeted solving: a labeled upper-bound fallback, never a crash
//		• CPP-LC: load-aware greedy insertion and classical-tour re-costing
//
// ✨ Why choose lvlroute?
//
//   - Honest results – a result is either exact, or carries its failure reason
//   - Deterministic – fixed start vertex + fixed edge order ⇒ identical tours
//   - Pure Go – no cgo, no hidden deps in the engine itself
//
// Under the hood, everything is organized per-concern:
//
//	core/     — Graph, Edge and parity/connectivity queries
//	metric/   — all-pairs shortest-path closure with path reconstruction
//	matching/ — minimum-weight perfect matching primitives
//	postman/  — the classical solver pipeline and its time-budgeted wrapper
//	cpplc/    — load-dependent cost functions and tour builders
//	instance/ — JSON instance/solution records for the surrounding tooling
//	cmd/      — solve & generate command-line collaborators
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a square with four vertices and four unit edges is already Eulerian:
//	the solver returns cost 4, exact, with zero odd vertices.
//
//	go get github.com/katalvlaran/lvlroute
package lvlroute
