// Package graphs implements adjacency-list graphs over integer
// vertices together with the classic search and spanning-tree
// algorithms used as profiling subjects.
//
// ✨ Features
//
//   - Graph / Digraph        - unweighted adjacency lists, parallel edges allowed.
//   - BreadthFirstPaths      - unweighted shortest paths from one source.
//   - DepthFirstPaths        - reachability and some path from one source.
//   - TopologicalSort        - DAG ordering with cycle detection (ErrCycle).
//   - Dijkstra               - weighted shortest paths, non-negative weights.
//   - Kruskal / Prim         - minimum spanning trees over WeightedGraph.
//   - MaxFlow                - max flow / min cut over FlowNetwork.
//   - RandomGraph / RandomWeightedGraph - seeded generators for doubling tests.
//
// 🚀 Quick start
//
//	g := graphs.NewGraph(5)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 4)
//	paths, _ := graphs.BreadthFirstPaths(g, 0)
//	route, _ := paths.PathTo(4) // [0 1 4]
//
// Vertices are dense integers 0..V-1; constructors panic on a negative
// vertex count while every edge and query API reports range violations
// through ErrVertexRange.
//
// Reference: Sedgewick & Wayne, Algorithms (4th ed.), Chapter 4.
package graphs
