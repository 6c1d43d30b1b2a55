// Package searching implements order-based lookup algorithms used as
// logarithmic and linear profiling subjects: Binary search and Rank on
// sorted slices, QuickSelect for order statistics on unsorted data,
// and the converging two-pointer pair sum.
//
// ✨ Features
//
//   - Binary(a, key)        - index of key in a sorted slice, or -1.
//   - Rank(a, key)          - count of elements strictly less than key;
//     doubles as the insertion point and first-occurrence index.
//   - QuickSelect(a, k)     - k-th smallest element without a full sort,
//     O(N) on average; the input slice is never mutated.
//   - TwoSumSorted(a, t)    - indices i < j with a[i]+a[j] == t in one
//     linear pass over a sorted slice.
//
// 🚀 Quick start
//
//	data := dataset.Sorted()(1 << 16)
//	idx := searching.Binary(data, 4093) // 4093
//
// Reference: Sedgewick & Wayne, Algorithms (4th ed.), Sections 1.1 and 2.3.
package searching
