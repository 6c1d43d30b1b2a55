// Package sorting implements the classic comparison sorts used as
// profiling subjects: elementary sorts (Bubble, Selection, Insertion,
// Shell) and advanced sorts (Merge, Quick, Heap).
//
// ✨ Features
//
//   - In-place operation on []int, so a timing harness measures the
//     sort itself rather than allocator traffic.
//   - Bubble exits after the first swap-free pass, turning sorted
//     input into a single sweep.
//   - Quick partitions three ways around a median-of-three pivot, so
//     duplicate runs collapse and sorted input stays off the quadratic
//     path.
//   - Merge shares one auxiliary buffer across the whole recursion.
//   - Workload(...) adapts any in-place sort to the error-returning
//     signature the profiler package consumes.
//
// 🚀 Quick start
//
//	data := dataset.Random(dataset.WithSeed(1))(1 << 12)
//	sorting.Quick(data)
//	fmt.Println(sorting.IsSorted(data)) // true
//
// Reference: Sedgewick & Wayne, Algorithms (4th ed.), Chapter 2.
package sorting
