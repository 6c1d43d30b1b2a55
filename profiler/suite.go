// SPDX-License-Identifier: MIT

package profiler

import (
	"fmt"
	"io"
	"sort"
	"time"
)

// Candidate names one workload entered into a head-to-head suite.
type Candidate[T any] struct {
	Name string
	Run  Workload[T]
}

// SuiteResult is one candidate's aggregated measurement at the suite
// size. Slowdown is this duration over the fastest candidate's
// duration: 1.0 marks the winner. It stays 0 (undefined) if the winner
// measured below timer resolution.
type SuiteResult struct {
	Name     string
	Duration time.Duration
	MemDelta uint64
	Slowdown float64
}

// RunSuite measures every candidate at one input size under one shared
// option set and returns the results sorted fastest first. Each
// candidate gets its own freshly generated input (same generator, so
// content distribution matches; pass a seeded generator for identical
// inputs across candidates).
//
// Validation happens before any trial: candidate list non-empty, names
// unique, no nil callables, n >= 1. A candidate error aborts the suite;
// the results measured so far come back together with the error exactly
// as the workload returned it, so len(results) identifies the failing
// candidate.
func RunSuite[T any](cands []Candidate[T], generate Generator[T], n int, opts ...Option) ([]SuiteResult, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(cands) == 0 {
		return nil, ErrNoCandidates
	}
	seen := make(map[string]struct{}, len(cands))
	for _, c := range cands {
		if c.Run == nil {
			return nil, fmt.Errorf("%w: candidate %q", ErrNilWorkload, c.Name)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	if generate == nil {
		return nil, ErrNilGenerator
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, n)
	}

	results := make([]SuiteResult, 0, len(cands))
	for _, c := range cands {
		rr, err := measure(c.Run, generate, n, &o)
		if err != nil {
			return results, err
		}
		results = append(results, SuiteResult{
			Name:     c.Name,
			Duration: rr.Duration,
			MemDelta: rr.MemDelta,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Duration < results[j].Duration
	})
	if fastest := results[0].Duration; fastest > 0 {
		for i := range results {
			results[i].Slowdown = float64(results[i].Duration) / float64(fastest)
		}
	}
	return results, nil
}

// Fixed-column layout of the suite report.
const (
	suiteHeader = "%-16s   %12s   %8s\n"
	suiteRow    = "%-16s   %12.3f   %8s\n"
)

// RenderSuite writes one row per candidate, fastest first: name,
// milliseconds, and the slowdown against the winner ("-" when the
// winner measured below timer resolution).
func RenderSuite(w io.Writer, results []SuiteResult) error {
	if _, err := fmt.Fprintf(w, suiteHeader, "candidate", "time(ms)", "vs best"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, suiteHeader, "---------", "--------", "-------"); err != nil {
		return err
	}
	for _, r := range results {
		slowdown := "-"
		if r.Slowdown > 0 {
			slowdown = fmt.Sprintf("%.2fx", r.Slowdown)
		}
		ms := float64(r.Duration) / float64(time.Millisecond)
		if _, err := fmt.Fprintf(w, suiteRow, r.Name, ms, slowdown); err != nil {
			return err
		}
	}
	return nil
}
