// SPDX-License-Identifier: MIT

package profiler

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"
)

// Measure runs one timing-harness pass for "workload on generated input
// of size n": Warmup discarded trials, then Repeats timed trials with
// the collector suspended around each, reduced to a single duration per
// the configured Mode.
//
// The input is regenerated before every trial unless WithSharedInput is
// set. Workload errors abort the pass and come back untouched; every
// configuration violation is rejected before the first trial.
func Measure[T any](workload Workload[T], generate Generator[T], n int, opts ...Option) (RoundResult, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return RoundResult{}, err
	}
	if err = validateRun(workload, generate, n); err != nil {
		return RoundResult{}, err
	}
	return measure(workload, generate, n, &o)
}

// validateRun rejects nil callables and non-positive sizes before any
// trial runs.
func validateRun[T any](workload Workload[T], generate Generator[T], n int) error {
	if workload == nil {
		return ErrNilWorkload
	}
	if generate == nil {
		return ErrNilGenerator
	}
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrBadSize, n)
	}
	return nil
}

// measure is the validated core shared by Measure, RunDoublingTest and
// RunSuite.
func measure[T any](workload Workload[T], generate Generator[T], n int, o *BenchOptions) (RoundResult, error) {
	var shared T
	if o.SharedInput {
		shared = generate(n)
	}
	input := func() T {
		if o.SharedInput {
			return shared
		}
		return generate(n)
	}

	// Warm-up runs settle caches and runtime heuristics; their timings
	// are discarded and the collector stays live.
	for i := 0; i < o.Warmup; i++ {
		if err := workload(input()); err != nil {
			return RoundResult{}, err
		}
	}

	samples := make([]time.Duration, 0, o.Repeats)
	var peak uint64
	for i := 0; i < o.Repeats; i++ {
		elapsed, grown, err := timedTrial(workload, input(), o)
		if err != nil {
			return RoundResult{}, err
		}
		samples = append(samples, elapsed)
		if grown > peak {
			peak = grown
		}
	}

	agg, err := reduce(samples, o.Mode)
	if err != nil {
		return RoundResult{}, err
	}

	o.Logger.Debug("size measured",
		slog.Int("n", n),
		slog.Duration("duration", agg),
		slog.String("mode", o.Mode.String()),
		slog.Int("repeats", o.Repeats))

	return RoundResult{N: n, Duration: agg, Samples: samples, MemDelta: peak}, nil
}

// timedTrial times exactly one workload execution. The collector is
// suspended for exactly the clocked region and restored on every exit
// path: the deferred release covers a panicking workload, the eager one
// restores before memory accounting runs.
func timedTrial[T any](workload Workload[T], data T, o *BenchOptions) (time.Duration, uint64, error) {
	var before runtime.MemStats
	if o.TrackMem {
		runtime.GC()
		runtime.ReadMemStats(&before)
	}

	guard := pauseGC(o.PauseGC)
	defer guard.release()

	start := time.Now()
	err := workload(data)
	elapsed := time.Since(start)
	guard.release()

	if err != nil {
		return 0, 0, err
	}

	var grown uint64
	if o.TrackMem {
		var after runtime.MemStats
		runtime.ReadMemStats(&after)
		if after.HeapAlloc > before.HeapAlloc {
			grown = after.HeapAlloc - before.HeapAlloc
		}
	}
	return elapsed, grown, nil
}
