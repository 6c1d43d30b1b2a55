package graphs

import (
	"container/heap"
	"fmt"
	"math"
)

// ShortestPaths holds the weighted shortest-path tree from one source.
type ShortestPaths struct {
	Source int
	dist   []float64
	parent []int
}

// Dijkstra computes weighted shortest paths from s. Edge weights must
// be non-negative; a violation returns ErrNegativeWeight before any
// relaxation runs. O(E log E) time with a lazy binary heap.
func Dijkstra(g *WeightedGraph, s int) (*ShortestPaths, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.check(s); err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: %d-%d %.3f", ErrNegativeWeight, e.V, e.W, e.Weight)
		}
	}

	sp := &ShortestPaths{
		Source: s,
		dist:   make([]float64, g.V()),
		parent: make([]int, g.V()),
	}
	for i := range sp.dist {
		sp.dist[i] = math.Inf(1)
		sp.parent[i] = -1
	}
	sp.dist[s] = 0

	pq := &vertexPQ{{v: s, dist: 0}}
	for pq.Len() > 0 {
		item := heap.Pop(pq).(vertexItem)
		if item.dist > sp.dist[item.v] {
			// Stale heap entry; a shorter route already won.
			continue
		}
		for _, e := range g.Adj(item.v) {
			w := e.Other(item.v)
			if next := sp.dist[item.v] + e.Weight; next < sp.dist[w] {
				sp.dist[w] = next
				sp.parent[w] = item.v
				heap.Push(pq, vertexItem{v: w, dist: next})
			}
		}
	}
	return sp, nil
}

// HasPathTo reports whether v is reachable from the source.
func (sp *ShortestPaths) HasPathTo(v int) bool {
	return v >= 0 && v < len(sp.dist) && !math.IsInf(sp.dist[v], 1)
}

// DistTo returns the total weight of the shortest path to v.
func (sp *ShortestPaths) DistTo(v int) (float64, error) {
	if v < 0 || v >= len(sp.dist) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrVertexRange, v, len(sp.dist))
	}
	if math.IsInf(sp.dist[v], 1) {
		return 0, fmt.Errorf("%w: %d", ErrNoPath, v)
	}
	return sp.dist[v], nil
}

// PathTo returns the vertices of the shortest path to v inclusive.
func (sp *ShortestPaths) PathTo(v int) ([]int, error) {
	if _, err := sp.DistTo(v); err != nil {
		return nil, err
	}
	var path []int
	for x := v; x != -1; x = sp.parent[x] {
		path = append(path, x)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// vertexItem is one tentative distance in the Dijkstra heap.
type vertexItem struct {
	v    int
	dist float64
}

// vertexPQ is a min-heap of tentative distances.
type vertexPQ []vertexItem

func (pq vertexPQ) Len() int           { return len(pq) }
func (pq vertexPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq vertexPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *vertexPQ) Push(x any) { *pq = append(*pq, x.(vertexItem)) }

func (pq *vertexPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
