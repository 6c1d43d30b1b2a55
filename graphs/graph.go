package graphs

import "fmt"

// Graph is an adjacency-list graph over integer vertices 0..V-1,
// directed or undirected depending on the constructor. Parallel edges
// and self-loops are allowed, matching the textbook model.
type Graph struct {
	directed bool
	adj      [][]int
	edges    int
}

// NewGraph returns an undirected graph with v vertices and no edges.
// Panics when v is negative.
func NewGraph(v int) *Graph {
	if v < 0 {
		panic(fmt.Sprintf("graphs: NewGraph(%d): negative vertex count", v))
	}
	return &Graph{adj: make([][]int, v)}
}

// NewDigraph returns a directed graph with v vertices and no edges.
// Panics when v is negative.
func NewDigraph(v int) *Graph {
	g := NewGraph(v)
	g.directed = true
	return g
}

// V returns the vertex count.
func (g *Graph) V() int { return len(g.adj) }

// E returns the edge count.
func (g *Graph) E() int { return g.edges }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// AddEdge connects v and w; for digraphs only v->w is added.
func (g *Graph) AddEdge(v, w int) error {
	if err := g.check(v); err != nil {
		return err
	}
	if err := g.check(w); err != nil {
		return err
	}
	g.adj[v] = append(g.adj[v], w)
	if !g.directed {
		g.adj[w] = append(g.adj[w], v)
	}
	g.edges++
	return nil
}

// Adj returns the neighbors of v in insertion order. The slice is the
// graph's own storage; callers must not mutate it.
func (g *Graph) Adj(v int) []int {
	return g.adj[v]
}

func (g *Graph) check(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexRange, v, len(g.adj))
	}
	return nil
}
