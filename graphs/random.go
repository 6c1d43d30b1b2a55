package graphs

import "math/rand"

// RandomGraph returns a connected undirected graph with v vertices: a
// spine joining 0..v-1 plus extra random edges. Deterministic for a
// given seed, which makes it suitable as a doubling-test generator.
func RandomGraph(v, extra int, seed int64) *Graph {
	g := NewGraph(v)
	rng := rand.New(rand.NewSource(seed))
	for w := 1; w < v; w++ {
		// Spine indices are in range by construction.
		_ = g.AddEdge(w-1, w)
	}
	for i := 0; i < extra && v > 1; i++ {
		_ = g.AddEdge(rng.Intn(v), rng.Intn(v))
	}
	return g
}

// RandomWeightedGraph mirrors RandomGraph with uniform edge weights in
// [0, 1).
func RandomWeightedGraph(v, extra int, seed int64) *WeightedGraph {
	g := NewWeightedGraph(v)
	rng := rand.New(rand.NewSource(seed))
	for w := 1; w < v; w++ {
		_ = g.AddEdge(w-1, w, rng.Float64())
	}
	for i := 0; i < extra && v > 1; i++ {
		_ = g.AddEdge(rng.Intn(v), rng.Intn(v), rng.Float64())
	}
	return g
}
