// SPDX-License-Identifier: MIT

// Package dataset produces integer slices shaped for algorithm
// profiling: uniform random, pre-sorted, reverse-sorted and
// nearly-sorted inputs behind one functional-options surface.
//
// ✨ Features
//
//   - Random(...)       - uniform values over an inclusive range (default 0..1000).
//   - Sorted()          - ascending run 0..n-1, the best case for adaptive sorts.
//   - Reversed()        - descending run n-1..0, the classic worst case.
//   - NearlySorted(...) - ascending run perturbed by a small share of adjacent swaps.
//   - WithSeed / WithRand - reproducible streams for stable measurements.
//
// 🚀 Quick start
//
//	gen := dataset.Random(dataset.WithSeed(42), dataset.WithRange(0, 9999))
//	data := gen(1 << 12) // fresh 4096-element slice, same values every run
//
// Each generator returns a plain func(n int) []int and hands back a
// fresh backing array on every call, so timing harnesses may mutate the
// slice in place without poisoning later trials.
//
// ⚙️ Options
//
//   - WithSeed(seed)     - deterministic stream.
//   - WithRand(r)        - caller-owned *rand.Rand (panics on nil).
//   - WithRange(lo, hi)  - inclusive value bounds (panics when lo > hi).
//   - WithDisorder(frac) - NearlySorted swap share in [0, 1] (panics outside).
//
// All options validate eagerly and panic on meaningless values.
package dataset
