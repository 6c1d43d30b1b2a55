package main

import (
	"sort"
	"strings"

	"github.com/arprax/algos/graphs"
	"github.com/arprax/algos/profiler"
)

// Graph subjects run over generated graphs instead of slices. The two
// flavors are distinct input shapes, so compare keeps unweighted and
// weighted subjects in separate races.
const (
	shapeGraph    inputShape = "graph"
	shapeWeighted inputShape = "weighted-graph"
)

// graphDegree is the extra-edge multiple handed to the random graph
// builders: E lands near 3V, so O(V+E) subjects read as linear on the
// doubling ladder.
const graphDegree = 2

// graphSubject couples a graph algorithm with the flavor of random
// graph it consumes. Exactly one of the two workloads is set, matching
// the subject's shape.
type graphSubject struct {
	name       string
	kind       string
	shape      inputShape
	expected   profiler.Class
	desc       string
	unweighted profiler.Workload[*graphs.Graph]
	weighted   profiler.Workload[*graphs.WeightedGraph]
}

// graphSink keeps traversal products observable so the timed calls
// cannot be hollowed out.
var graphSink int

// graphCatalog lists the graph-backed subjects, keyed by CLI name.
var graphCatalog = map[string]graphSubject{
	"bfs": {
		name: "bfs", kind: "graph", shape: shapeGraph,
		expected: profiler.ClassLinear,
		unweighted: func(g *graphs.Graph) error {
			p, err := graphs.BreadthFirstPaths(g, 0)
			if err != nil {
				return err
			}
			d, err := p.DistTo(g.V() - 1)
			if err != nil {
				return err
			}
			graphSink = d
			return nil
		},
		desc: "level-order shortest hops across a random connected graph",
	},
	"dfs": {
		name: "dfs", kind: "graph", shape: shapeGraph,
		expected: profiler.ClassLinear,
		unweighted: func(g *graphs.Graph) error {
			p, err := graphs.DepthFirstPaths(g, 0)
			if err != nil {
				return err
			}
			d, err := p.DistTo(g.V() - 1)
			if err != nil {
				return err
			}
			graphSink = d
			return nil
		},
		desc: "recursive reachability across a random connected graph",
	},
	"dijkstra": {
		name: "dijkstra", kind: "graph", shape: shapeWeighted,
		expected: profiler.ClassLinearithmic,
		weighted: func(g *graphs.WeightedGraph) error {
			sp, err := graphs.Dijkstra(g, 0)
			if err != nil {
				return err
			}
			d, err := sp.DistTo(g.V() - 1)
			if err != nil {
				return err
			}
			graphSink = int(d)
			return nil
		},
		desc: "weighted shortest paths with a lazy binary heap",
	},
	"kruskal": {
		name: "kruskal", kind: "graph", shape: shapeWeighted,
		expected: profiler.ClassLinearithmic,
		weighted: func(g *graphs.WeightedGraph) error {
			mst, _, err := graphs.Kruskal(g)
			if err != nil {
				return err
			}
			graphSink = len(mst)
			return nil
		},
		desc: "spanning tree from weight-sorted edges and union-find",
	},
	"prim": {
		name: "prim", kind: "graph", shape: shapeWeighted,
		expected: profiler.ClassLinearithmic,
		weighted: func(g *graphs.WeightedGraph) error {
			mst, _, err := graphs.Prim(g)
			if err != nil {
				return err
			}
			graphSink = len(mst)
			return nil
		},
		desc: "spanning tree grown from vertex 0 with a lazy edge heap",
	},
}

// lookupGraphSubject resolves a CLI name against the graph catalog.
func lookupGraphSubject(name string) (graphSubject, bool) {
	s, ok := graphCatalog[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// graphCatalogNames returns the graph subject names in stable order.
func graphCatalogNames() []string {
	names := make([]string, 0, len(graphCatalog))
	for name := range graphCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// allSubjectNames merges both catalogs for the unknown-name message.
func allSubjectNames() []string {
	names := append(catalogNames(), graphCatalogNames()...)
	sort.Strings(names)
	return names
}

// unweightedGenerator builds seed-stable random graphs whose edge
// count scales with n, vertex n-1 reachable by construction.
func unweightedGenerator(seed int64) profiler.Generator[*graphs.Graph] {
	return func(n int) *graphs.Graph {
		return graphs.RandomGraph(n, graphDegree*n, seed)
	}
}

// weightedGenerator mirrors unweightedGenerator with uniform weights.
func weightedGenerator(seed int64) profiler.Generator[*graphs.WeightedGraph] {
	return func(n int) *graphs.WeightedGraph {
		return graphs.RandomWeightedGraph(n, graphDegree*n, seed)
	}
}
