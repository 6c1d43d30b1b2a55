package graphs

import (
	"container/heap"
	"fmt"
	"sort"
)

// WeightedGraph is an undirected adjacency-list graph with float64
// edge weights over vertices 0..V-1.
type WeightedGraph struct {
	adj   [][]Edge
	edges []Edge
}

// NewWeightedGraph returns an edge-weighted graph with v vertices and
// no edges. Panics when v is negative.
func NewWeightedGraph(v int) *WeightedGraph {
	if v < 0 {
		panic(fmt.Sprintf("graphs: NewWeightedGraph(%d): negative vertex count", v))
	}
	return &WeightedGraph{adj: make([][]Edge, v)}
}

// V returns the vertex count.
func (g *WeightedGraph) V() int { return len(g.adj) }

// E returns the edge count.
func (g *WeightedGraph) E() int { return len(g.edges) }

// AddEdge connects v and w with the given weight.
func (g *WeightedGraph) AddEdge(v, w int, weight float64) error {
	if err := g.check(v); err != nil {
		return err
	}
	if err := g.check(w); err != nil {
		return err
	}
	e := Edge{V: v, W: w, Weight: weight}
	g.adj[v] = append(g.adj[v], e)
	g.adj[w] = append(g.adj[w], e)
	g.edges = append(g.edges, e)
	return nil
}

// Adj returns the edges incident to v. The slice is the graph's own
// storage; callers must not mutate it.
func (g *WeightedGraph) Adj(v int) []Edge { return g.adj[v] }

// Edges returns every edge exactly once, in insertion order.
func (g *WeightedGraph) Edges() []Edge { return g.edges }

func (g *WeightedGraph) check(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexRange, v, len(g.adj))
	}
	return nil
}

// Kruskal computes a minimum spanning tree by merging weight-sorted
// edges through a union-find, skipping any edge that would close a
// cycle. Disconnected input yields a minimum spanning forest.
// O(E log E) time.
func Kruskal(g *WeightedGraph) ([]Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	edges := append([]Edge(nil), g.Edges()...)
	sort.Slice(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	uf := newUnionFind(g.V())
	mst := make([]Edge, 0, g.V())
	total := 0.0
	for _, e := range edges {
		if uf.connected(e.V, e.W) {
			continue
		}
		uf.union(e.V, e.W)
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == g.V()-1 {
			break
		}
	}
	return mst, total, nil
}

// Prim computes a minimum spanning tree by growing it from vertex 0,
// lazily discarding heap edges whose endpoints both landed inside the
// tree. Spans only the component containing vertex 0. O(E log E) time.
func Prim(g *WeightedGraph) ([]Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if g.V() == 0 {
		return nil, 0, nil
	}

	marked := make([]bool, g.V())
	pq := &edgePQ{}
	visit := func(v int) {
		marked[v] = true
		for _, e := range g.Adj(v) {
			if !marked[e.Other(v)] {
				heap.Push(pq, e)
			}
		}
	}
	visit(0)

	mst := make([]Edge, 0, g.V())
	total := 0.0
	for pq.Len() > 0 {
		e := heap.Pop(pq).(Edge)
		if marked[e.V] && marked[e.W] {
			continue
		}
		mst = append(mst, e)
		total += e.Weight
		if !marked[e.V] {
			visit(e.V)
		}
		if !marked[e.W] {
			visit(e.W)
		}
	}
	return mst, total, nil
}

// edgePQ is a min-heap of edges keyed by weight.
type edgePQ []Edge

func (pq edgePQ) Len() int           { return len(pq) }
func (pq edgePQ) Less(i, j int) bool { return pq[i].Weight < pq[j].Weight }
func (pq edgePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(Edge)) }

func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]
	return e
}

// unionFind is a weighted quick-union with path halving.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	u := &unionFind{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range u.parent {
		u.parent[i] = i
		u.size[i] = 1
	}
	return u
}

func (u *unionFind) find(v int) int {
	for v != u.parent[v] {
		u.parent[v] = u.parent[u.parent[v]]
		v = u.parent[v]
	}
	return v
}

func (u *unionFind) connected(v, w int) bool {
	return u.find(v) == u.find(w)
}

func (u *unionFind) union(v, w int) {
	rv, rw := u.find(v), u.find(w)
	if rv == rw {
		return
	}
	if u.size[rv] < u.size[rw] {
		rv, rw = rw, rv
	}
	u.parent[rw] = rv
	u.size[rv] += u.size[rw]
}
