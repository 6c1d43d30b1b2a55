// SPDX-License-Identifier: MIT

// Package profiler defines the measurement contracts, result types and
// error sentinels shared by the timing harness and the doubling test.
package profiler

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for harness and doubling-test execution.
var (
	// ErrBadRepeats is returned when the configured repeat count is below 1.
	ErrBadRepeats = errors.New("profiler: repeats must be at least 1")

	// ErrBadWarmup is returned when the configured warm-up count is negative.
	ErrBadWarmup = errors.New("profiler: warmup cannot be negative")

	// ErrBadRounds is returned when a doubling test is asked for fewer than
	// two rounds; a single round yields no ratio to classify.
	ErrBadRounds = errors.New("profiler: doubling test needs at least 2 rounds")

	// ErrBadSize is returned when an input size (or starting size) is below 1.
	ErrBadSize = errors.New("profiler: input size must be positive")

	// ErrBadMode is returned for an aggregation mode outside Min/Mean/Median.
	ErrBadMode = errors.New("profiler: unknown aggregation mode")

	// ErrSizeOverflow is returned when doubling the starting size for the
	// requested number of rounds would overflow int.
	ErrSizeOverflow = errors.New("profiler: doubled size overflows int")

	// ErrNilWorkload is returned if a nil workload func is passed.
	ErrNilWorkload = errors.New("profiler: workload is nil")

	// ErrNilGenerator is returned if a nil generator func is passed.
	ErrNilGenerator = errors.New("profiler: generator is nil")

	// ErrNoCandidates is returned when a suite is run with no candidates.
	ErrNoCandidates = errors.New("profiler: suite needs at least one candidate")

	// ErrDuplicateName is returned when two suite candidates share a name.
	ErrDuplicateName = errors.New("profiler: duplicate candidate name")
)

// Workload is the algorithm under measurement. It receives one input of
// the shape produced by the paired Generator and reports failure through
// its error. The harness never inspects, wraps or retries a workload
// error; it aborts the run and hands the error back exactly as returned.
type Workload[T any] func(data T) error

// Generator produces one input of size n for the paired Workload.
// The harness validates n >= 1 before ever calling a Generator.
type Generator[T any] func(n int) T

// Mode selects how repeated trial durations reduce to one scalar.
type Mode uint8

const (
	// ModeMin keeps the fastest trial. Least sensitive to transient
	// interference (scheduling, background load); the default.
	ModeMin Mode = iota

	// ModeMean averages all trials.
	ModeMean

	// ModeMedian keeps the middle trial (mean of the middle pair for an
	// even count).
	ModeMedian
)

// String returns the flag-friendly name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeMin:
		return "min"
	case ModeMean:
		return "mean"
	case ModeMedian:
		return "median"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode converts a textual mode name ("min", "mean", "median",
// case-insensitive) into a Mode. Unknown names yield ErrBadMode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min":
		return ModeMin, nil
	case "mean":
		return ModeMean, nil
	case "median":
		return ModeMedian, nil
	default:
		return ModeMin, fmt.Errorf("%w: %q", ErrBadMode, s)
	}
}

// Class is an empirical growth-rate class, ordered from lowest to
// highest order. The ordering matters: classification ties break toward
// the lower value.
type Class uint8

const (
	// ClassInconclusive means no ratio was available or the ratio was
	// undefined (a duration below timer resolution). Zero value.
	ClassInconclusive Class = iota

	// ClassConstant is O(1): doubling N leaves the duration unchanged.
	ClassConstant

	// ClassLogarithmic is O(log N): the duration creeps up slowly.
	ClassLogarithmic

	// ClassLinear is O(N): doubling N doubles the duration.
	ClassLinear

	// ClassLinearithmic is O(N log N): slightly worse than doubling.
	ClassLinearithmic

	// ClassQuadratic is O(N^2): doubling N quadruples the duration.
	ClassQuadratic

	// ClassCubic is O(N^3): doubling N multiplies the duration by 8.
	ClassCubic

	// ClassExponential is O(2^N): the ratio itself grows without bound.
	ClassExponential
)

// String returns the conventional big-O label for the class.
func (c Class) String() string {
	switch c {
	case ClassConstant:
		return "O(1)"
	case ClassLogarithmic:
		return "O(log N)"
	case ClassLinear:
		return "O(N)"
	case ClassLinearithmic:
		return "O(N log N)"
	case ClassQuadratic:
		return "O(N^2)"
	case ClassCubic:
		return "O(N^3)"
	case ClassExponential:
		return "O(2^N)"
	default:
		return "inconclusive"
	}
}

// RoundResult is one measured point of a doubling test (or a single
// Measure call): the input size, the aggregated duration per the
// configured Mode, and the raw per-trial samples behind it.
//
// Ratio and Class are filled by the doubling test from the second round
// onward: Ratio is Duration divided by the previous round's Duration,
// Class is the growth class nearest to that ratio. A Ratio of 0 means
// "no ratio": either the first round, or a previous duration measured
// as zero (below timer resolution).
type RoundResult struct {
	// N is the input size handed to the generator.
	N int

	// Duration is the reduced scalar for this size.
	Duration time.Duration

	// Samples holds every timed trial, in run order.
	Samples []time.Duration

	// MemDelta is the peak heap growth observed across trials, in bytes.
	// Zero unless memory tracking was enabled.
	MemDelta uint64

	// Ratio is Duration / previous Duration; 0 when undefined.
	Ratio float64

	// Class is the per-ratio classification; ClassInconclusive when
	// Ratio is 0.
	Class Class
}

// Confidence qualifiers attached to a Verdict.
const (
	// ConfidenceLow marks a verdict derived from a single ratio sample,
	// i.e. a two-round run.
	ConfidenceLow = "low: single ratio sample"

	// ConfidenceNoResolution marks a verdict that could not be derived
	// because the final ratio was undefined: some duration was measured
	// as zero, meaning the workload outran the timer at that size.
	// Re-run with a larger starting size.
	ConfidenceNoResolution = "insufficient resolution"
)

// Verdict is the outcome of a doubling test: the inferred class, the
// ratio that produced it (the one between the final two rounds, the
// pair least distorted by fixed startup overhead) and an optional
// confidence qualifier.
type Verdict struct {
	Class      Class
	Ratio      float64
	Confidence string
}

// String renders the verdict on one line, e.g.
//
//	O(N^2) (ratio 4.03)
//	inconclusive [insufficient resolution]
func (v Verdict) String() string {
	s := v.Class.String()
	if v.Ratio > 0 {
		s = fmt.Sprintf("%s (ratio %.2f)", s, v.Ratio)
	}
	if v.Confidence != "" {
		s += " [" + v.Confidence + "]"
	}
	return s
}
