// SPDX-License-Identifier: MIT

package dataset

// Random returns a generator of n uniform values drawn from the
// configured inclusive range. Every call allocates a fresh slice.
func Random(opts ...Option) func(n int) []int {
	cfg := newConfig(opts...)
	return func(n int) []int {
		out := make([]int, n)
		span := cfg.hi - cfg.lo + 1
		if span <= 0 {
			// Interval covers the whole int domain; draw raw words.
			for i := range out {
				out[i] = int(cfg.rng.Uint64())
			}
			return out
		}
		for i := range out {
			out[i] = cfg.lo + cfg.rng.Intn(span)
		}
		return out
	}
}

// Sorted returns a generator of ascending runs 0..n-1.
func Sorted() func(n int) []int {
	return func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
}

// Reversed returns a generator of descending runs n-1..0.
func Reversed() func(n int) []int {
	return func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = n - 1 - i
		}
		return out
	}
}

// NearlySorted returns a generator of ascending runs perturbed by
// random adjacent swaps. The swap count is disorder*n, with at least
// one swap whenever disorder is positive and n allows it.
func NearlySorted(opts ...Option) func(n int) []int {
	cfg := newConfig(opts...)
	return func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		if n < 2 {
			return out
		}
		swaps := int(cfg.disorder * float64(n))
		if swaps < 1 && cfg.disorder > 0 {
			swaps = 1
		}
		for s := 0; s < swaps; s++ {
			i := cfg.rng.Intn(n - 1)
			out[i], out[i+1] = out[i+1], out[i]
		}
		return out
	}
}
