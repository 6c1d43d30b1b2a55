package graphs

import (
	"fmt"
	"math"
)

// FlowEdge is one directed capacity edge together with its current
// flow. The same *FlowEdge sits in both endpoints' adjacency lists, so
// residual updates made through either side stay consistent.
type FlowEdge struct {
	from, to int
	capacity float64
	flow     float64
}

// From returns the tail vertex.
func (e *FlowEdge) From() int { return e.from }

// To returns the head vertex.
func (e *FlowEdge) To() int { return e.to }

// Capacity returns the edge capacity.
func (e *FlowEdge) Capacity() float64 { return e.capacity }

// Flow returns the flow currently routed through the edge.
func (e *FlowEdge) Flow() float64 { return e.flow }

// Other returns the endpoint opposite to vertex v.
func (e *FlowEdge) Other(v int) int {
	if v == e.from {
		return e.to
	}
	return e.from
}

// residualTo returns the residual capacity toward v: room left in the
// forward direction, flow that can be pushed back in the reverse one.
func (e *FlowEdge) residualTo(v int) float64 {
	if v == e.to {
		return e.capacity - e.flow
	}
	return e.flow
}

// addResidualTo routes delta more flow toward v.
func (e *FlowEdge) addResidualTo(v int, delta float64) {
	if v == e.to {
		e.flow += delta
	} else {
		e.flow -= delta
	}
}

// FlowNetwork is a capacity network over vertices 0..V-1. Every edge
// appears in both endpoint lists so the residual graph is walkable from
// either side.
type FlowNetwork struct {
	adj   [][]*FlowEdge
	edges int
}

// NewFlowNetwork returns a flow network with v vertices and no edges.
// Panics when v is negative.
func NewFlowNetwork(v int) *FlowNetwork {
	if v < 0 {
		panic(fmt.Sprintf("graphs: NewFlowNetwork(%d): negative vertex count", v))
	}
	return &FlowNetwork{adj: make([][]*FlowEdge, v)}
}

// V returns the vertex count.
func (g *FlowNetwork) V() int { return len(g.adj) }

// E returns the edge count.
func (g *FlowNetwork) E() int { return g.edges }

// AddEdge connects v toward w with the given capacity.
func (g *FlowNetwork) AddEdge(v, w int, capacity float64) error {
	if err := g.check(v); err != nil {
		return err
	}
	if err := g.check(w); err != nil {
		return err
	}
	if capacity < 0 {
		return fmt.Errorf("%w: %.3f on %d->%d", ErrNegativeCapacity, capacity, v, w)
	}
	e := &FlowEdge{from: v, to: w, capacity: capacity}
	g.adj[v] = append(g.adj[v], e)
	g.adj[w] = append(g.adj[w], e)
	g.edges++
	return nil
}

// Adj returns the flow edges incident to v, forward and backward. The
// slice is the graph's own storage; callers must not mutate it.
func (g *FlowNetwork) Adj(v int) []*FlowEdge { return g.adj[v] }

func (g *FlowNetwork) check(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexRange, v, len(g.adj))
	}
	return nil
}

// Flow is the result of one max-flow computation: the flow value and
// the source side of the minimum cut.
type Flow struct {
	Value  float64
	marked []bool
}

// InCut reports whether v sits on the source side of the minimum cut,
// i.e. stays residual-reachable from the source once the flow is
// maximal.
func (f *Flow) InCut(v int) bool {
	return v >= 0 && v < len(f.marked) && f.marked[v]
}

// MaxFlow computes the maximum s-t flow with the shortest-augmenting
// path method: breadth-first search over the residual network, augment
// by the bottleneck, repeat until the sink falls unreachable. Mutates
// the per-edge flows in place. O(V*E^2) time worst case.
func MaxFlow(g *FlowNetwork, s, t int) (*Flow, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.check(s); err != nil {
		return nil, err
	}
	if err := g.check(t); err != nil {
		return nil, err
	}
	if s == t {
		return nil, fmt.Errorf("%w: %d", ErrSameVertex, s)
	}

	f := &Flow{}
	edgeTo := make([]*FlowEdge, g.V())
	for {
		f.marked = augmentingPath(g, s, t, edgeTo)
		if !f.marked[t] {
			break
		}
		bottle := math.Inf(1)
		for v := t; v != s; v = edgeTo[v].Other(v) {
			if r := edgeTo[v].residualTo(v); r < bottle {
				bottle = r
			}
		}
		for v := t; v != s; v = edgeTo[v].Other(v) {
			edgeTo[v].addResidualTo(v, bottle)
		}
		f.Value += bottle
	}
	return f, nil
}

// augmentingPath searches the residual network breadth-first from s,
// recording the edge that reached each vertex. The returned marks
// double as the min-cut once no augmenting path remains.
func augmentingPath(g *FlowNetwork, s, t int, edgeTo []*FlowEdge) []bool {
	marked := make([]bool, g.V())
	for i := range edgeTo {
		edgeTo[i] = nil
	}
	queue := []int{s}
	marked[s] = true
	for len(queue) > 0 && !marked[t] {
		v := queue[0]
		queue = queue[1:]
		for _, e := range g.Adj(v) {
			w := e.Other(v)
			if e.residualTo(w) > 0 && !marked[w] {
				edgeTo[w] = e
				marked[w] = true
				queue = append(queue, w)
			}
		}
	}
	return marked
}
