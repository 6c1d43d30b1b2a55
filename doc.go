// Package algos is a teaching toolkit for classic algorithms and for
// checking their advertised complexity empirically.
//
// 🚀 What is arprax/algos?
//
//	A small, self-contained companion library for an algorithms course:
//		• Textbook implementations: sorting (bubble ... heap), searching,
//		  graph traversal, shortest paths and spanning trees
//		• Deterministic input factories: random, sorted, reversed,
//		  nearly-sorted slices and seeded random graphs
//		• A measurement core: warm-up, repeated trials, GC-quiet timing
//		• A doubling test: time at N, 2N, 4N, ... and read the growth class
//		  straight off the duration ratios
//		• Plain-text reports suited to lecture slides and terminals
//
// ✨ Why measure at all?
//
//   - Big-O claims are about limits; students work on finite inputs
//   - Constant factors and caches routinely flip textbook rankings
//   - A doubling experiment turns "trust me, it is quadratic" into a
//     two-column table anyone can re-run
//
// Everything is organized under five subpackages plus one command:
//
//	profiler/   — timing harness, doubling-test analyzer, reports
//	dataset/    — seeded input generators shaped for the profiler
//	sorting/    — instrumentable classic sorts (the usual suspects)
//	searching/  — binary search, rank, quickselect, two-pointer scans
//	graphs/     — adjacency lists, BFS/DFS, Dijkstra, Kruskal & Prim
//	cmd/arprof/ — CLI front-end over the registry of the above
//
// Longer scenario walkthroughs live under examples/.
//
// Quick taste:
//
//	gen := dataset.Random(dataset.WithSeed(42))
//	rounds, verdict, err := profiler.RunDoublingTest(
//		sorting.Workload(sorting.Bubble), gen, 500, 5)
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = profiler.Render(os.Stdout, rounds, verdict)
//	// verdict.Class == profiler.ClassQuadratic, ratio near 4
//
// Start with profiler/doc.go for the measurement methodology; each
// subpackage ships runnable examples in its example_test.go.
package algos
