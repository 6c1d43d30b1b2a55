// SPDX-License-Identifier: MIT

package profiler

import (
	"fmt"
	"io"
	"log/slog"
)

// Default measurement parameters. Five timed trials after one discarded
// warm-up keeps a full run short enough for classroom use while giving
// ModeMin a real sample to pick from.
const (
	DefaultRepeats = 5
	DefaultWarmup  = 1
)

// Option configures harness behavior via functional arguments.
// If an Option is invalid (e.g. negative repeats), the violation is
// recorded internally and surfaced before any trial runs.
type Option func(*BenchOptions)

// BenchOptions holds every knob of the timing harness. Callers normally
// never build one directly; they pass Option values to Measure,
// RunDoublingTest or RunSuite. A run applies its options to a fresh
// copy, so one option slice can be shared across runs safely.
type BenchOptions struct {
	// Repeats is the number of timed trials per size. Must be >= 1.
	Repeats int

	// Warmup is the number of discarded trials run first. Must be >= 0.
	Warmup int

	// Mode reduces the Repeats samples to one duration.
	Mode Mode

	// PauseGC suspends the garbage collector around each timed trial,
	// restoring it afterwards on every exit path. Default true.
	PauseGC bool

	// SharedInput generates the input once per size and hands the same
	// value to every trial. Default false: a fresh input per trial, so
	// in-place workloads (sorts!) never see their own output and
	// repeated trials gain no cache advantage.
	SharedInput bool

	// TrackMem records the peak heap growth across trials. Off by
	// default: the pre-trial collection it requires lengthens runs.
	TrackMem bool

	// Logger receives per-round debug events. Never consulted inside a
	// timed window. Defaults to a discard logger.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns BenchOptions with the documented defaults:
//   - Repeats = 5, Warmup = 1
//   - ModeMin reduction
//   - collector suspended during timed trials
//   - fresh input per trial, no memory tracking
//   - discard logger.
func DefaultOptions() BenchOptions {
	return BenchOptions{
		Repeats:     DefaultRepeats,
		Warmup:      DefaultWarmup,
		Mode:        ModeMin,
		PauseGC:     true,
		SharedInput: false,
		TrackMem:    false,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		err:         nil,
	}
}

// WithRepeats sets the number of timed trials per size.
//
//	r >= 1: run r timed trials
//	r < 1:  invalid option → ErrBadRepeats
func WithRepeats(r int) Option {
	return func(o *BenchOptions) {
		if r < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrBadRepeats, r)
			return
		}
		o.Repeats = r
	}
}

// WithWarmup sets the number of discarded warm-up trials.
//
//	n >= 0: run n warm-up trials first
//	n < 0:  invalid option → ErrBadWarmup
func WithWarmup(n int) Option {
	return func(o *BenchOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadWarmup, n)
			return
		}
		o.Warmup = n
	}
}

// WithMode selects the sample-reduction statistic.
func WithMode(m Mode) Option {
	return func(o *BenchOptions) {
		switch m {
		case ModeMin, ModeMean, ModeMedian:
			o.Mode = m
		default:
			o.err = fmt.Errorf("%w: %v", ErrBadMode, m)
		}
	}
}

// WithGC controls collector behavior inside the timed window. The
// default (live == false) suspends the collector per trial; pass true
// to measure with normal collector behavior, pauses included.
func WithGC(live bool) Option {
	return func(o *BenchOptions) { o.PauseGC = !live }
}

// WithSharedInput generates the input once per size instead of once per
// trial. Use it when generation dominates the workload or the workload
// is read-only. In-place workloads should keep the default: after one
// trial a shared slice is already sorted, and every later trial would
// time the best case instead.
func WithSharedInput() Option {
	return func(o *BenchOptions) { o.SharedInput = true }
}

// WithMemStats toggles peak heap-growth tracking per size.
func WithMemStats(track bool) Option {
	return func(o *BenchOptions) { o.TrackMem = track }
}

// WithLogger injects a logger for per-round debug events. Nil keeps the
// current (default: discard) logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *BenchOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// applyOptions folds opts over the defaults and surfaces the first
// recorded violation.
func applyOptions(opts []Option) (BenchOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}
