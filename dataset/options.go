// SPDX-License-Identifier: MIT

// Package dataset - functional options shared by all generators.
package dataset

import (
	"fmt"
	"math/rand"
)

// Default generator settings. Random keeps a fixed value ceiling rather
// than scaling with n, which keeps duplicate density stable as inputs
// double.
const (
	DefaultLo = 0
	DefaultHi = 1000

	// DefaultDisorder is the fraction of adjacent swaps NearlySorted
	// applies to an otherwise ascending run.
	DefaultDisorder = 0.05
)

// Option adjusts generator construction.
type Option func(*config)

// config carries the resolved settings for one generator.
type config struct {
	rng      *rand.Rand
	lo, hi   int
	disorder float64
}

// newConfig starts from defaults and applies opts in order.
// The default stream is freshly seeded, so unconfigured generators
// differ between runs; pass WithSeed for reproducibility.
func newConfig(opts ...Option) config {
	cfg := config{
		rng:      rand.New(rand.NewSource(rand.Int63())),
		lo:       DefaultLo,
		hi:       DefaultHi,
		disorder: DefaultDisorder,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed pins the generator to a deterministic random stream.
// Two generators built with the same seed produce identical datasets.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies a caller-owned random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dataset: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithRange bounds Random values to the inclusive interval [lo, hi].
// Panics when lo > hi.
func WithRange(lo, hi int) Option {
	if lo > hi {
		panic(fmt.Sprintf("dataset: WithRange(%d, %d): empty interval", lo, hi))
	}
	return func(c *config) {
		c.lo, c.hi = lo, hi
	}
}

// WithDisorder sets the fraction of adjacent swaps NearlySorted applies.
// Zero yields a fully sorted run. Panics when frac is outside [0, 1].
func WithDisorder(frac float64) Option {
	if frac < 0 || frac > 1 {
		panic(fmt.Sprintf("dataset: WithDisorder(%v): want 0..1", frac))
	}
	return func(c *config) {
		c.disorder = frac
	}
}
