// Package graphs - shared sentinel errors and the weighted edge type.
package graphs

import "errors"

// Sentinel errors shared by graph construction and the algorithms.
var (
	// ErrVertexRange is returned when a vertex index falls outside [0, V).
	ErrVertexRange = errors.New("graphs: vertex out of range")

	// ErrNoPath is returned when a path query targets an unreached vertex.
	ErrNoPath = errors.New("graphs: no path to vertex")

	// ErrCycle is returned when a topological order is requested for a
	// digraph containing a directed cycle.
	ErrCycle = errors.New("graphs: graph has a cycle")

	// ErrNotDirected is returned when a digraph-only algorithm receives an
	// undirected graph.
	ErrNotDirected = errors.New("graphs: directed graph required")

	// ErrNegativeWeight is returned when Dijkstra meets an edge with a
	// negative weight.
	ErrNegativeWeight = errors.New("graphs: negative edge weight")

	// ErrNegativeCapacity is returned when a flow edge is created with a
	// negative capacity.
	ErrNegativeCapacity = errors.New("graphs: negative edge capacity")

	// ErrSameVertex is returned when max-flow is asked to route from a
	// vertex to itself.
	ErrSameVertex = errors.New("graphs: source and sink must be distinct")

	// ErrNilGraph is returned when an algorithm receives a nil graph.
	ErrNilGraph = errors.New("graphs: nil graph")
)

// Edge is one undirected weighted edge between vertices V and W.
type Edge struct {
	V, W   int
	Weight float64
}

// Other returns the endpoint opposite to vertex v.
func (e Edge) Other(v int) int {
	if v == e.V {
		return e.W
	}
	return e.V
}
