// Command generate emits random connected postman instances as JSON:
// a spanning chain guarantees connectivity, extra edges add the odd-degree
// structure that makes an instance interesting, and optional demands turn
// it into a load-dependent one. The seed is explicit so every instance is
// reproducible from its command line.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/katalvlaran/lvlroute/instance"
)

var (
	name     = flag.String("name", "lvlroute", "Name prefix for the instances")
	n        = flag.Int("n", 20, "Number of vertices")
	extra    = flag.Int("extra", 10, "Number of extra edges beyond the spanning chain")
	maxW     = flag.Float64("w", 100, "Maximum edge weight")
	demands  = flag.Bool("demands", false, "Attach random demands to every edge")
	maxQ     = flag.Float64("q", 10, "Maximum edge demand (with -demands)")
	capacity = flag.Float64("capacity", 30, "Instance capacity field (with -demands)")
	count    = flag.Int("count", 1, "Number of instances")
	seed     = flag.Int64("seed", 1, "Base RNG seed; instance i uses seed+i")
	outDir   = flag.String("out", ".", "Output directory")
)

func main() {
	flag.Parse()

	if *n < 2 {
		log.Fatal("need at least 2 vertices")
	}

	for i := 0; i < *count; i++ {
		rng := rand.New(rand.NewSource(*seed + int64(i)))
		in := build(rng, i)
		path := fmt.Sprintf("%s/%s.json", *outDir, in.Name)
		if err := instance.Write(path, in); err != nil {
			log.Fatalf("At %s: %s", path, err)
		}
		log.Printf("wrote %s (%d vertices, %d edges)", path, in.Dimension, len(in.Edges))
	}
}

func build(rng *rand.Rand, idx int) *instance.Instance {
	edges := make([]instance.Edge, 0, *n-1+*extra)

	// Spanning chain over a random vertex permutation keeps the instance
	// connected without biasing edge structure toward low ids.
	perm := rng.Perm(*n)
	for i := 0; i+1 < len(perm); i++ {
		edges = append(edges, randomEdge(rng, perm[i], perm[i+1]))
	}
	for i := 0; i < *extra; i++ {
		u, v := rng.Intn(*n), rng.Intn(*n)
		for u == v {
			v = rng.Intn(*n)
		}
		edges = append(edges, randomEdge(rng, u, v))
	}

	in := &instance.Instance{
		Name:      fmt.Sprintf("%s-%d-%d", *name, *n, idx),
		Comment:   fmt.Sprintf("generated, seed %d", *seed+int64(idx)),
		Dimension: *n,
		Edges:     edges,
	}
	if *demands {
		in.Capacity = *capacity
	}

	return in
}

func randomEdge(rng *rand.Rand, u, v int) instance.Edge {
	e := instance.Edge{U: u, V: v, Weight: roundCenti(1 + rng.Float64()*(*maxW-1))}
	if *demands {
		q := roundCenti(rng.Float64() * *maxQ)
		e.Demand = &q
	}

	return e
}

// roundCenti keeps generated files readable without affecting structure.
func roundCenti(x float64) float64 {
	return float64(int(x*100+0.5)) / 100
}
