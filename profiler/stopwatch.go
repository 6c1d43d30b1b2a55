// SPDX-License-Identifier: MIT

package profiler

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Stopwatch accumulates wall-clock time for named sections of caller
// code. It is the manual counterpart to the harness: no warm-up, no
// collector control, just labels, counters and totals for teaching
// scripts that want "how long did phase X take, over how many calls".
//
// A Stopwatch is safe for concurrent use; the harness itself never
// shares one.
type Stopwatch struct {
	mu      sync.Mutex
	order   []string
	entries map[string]*lapStats
	logger  *slog.Logger
}

// lapStats aggregates every Start/stop cycle under one label.
type lapStats struct {
	calls int
	total time.Duration
	min   time.Duration
	max   time.Duration
}

// NewStopwatch returns an empty Stopwatch. Of the harness options only
// WithLogger is consulted here.
func NewStopwatch(opts ...Option) *Stopwatch {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Stopwatch{
		entries: make(map[string]*lapStats),
		logger:  o.Logger,
	}
}

// Start begins timing one section under label and returns the stop
// func. The defer idiom reads naturally:
//
//	defer sw.Start("parse")()
//
// Repeated cycles under one label accumulate: calls, total, min, max.
func (s *Stopwatch) Start(label string) func() {
	start := time.Now()
	return func() {
		elapsed := time.Since(start)

		s.mu.Lock()
		defer s.mu.Unlock()
		e, ok := s.entries[label]
		if !ok {
			e = &lapStats{min: elapsed, max: elapsed}
			s.entries[label] = e
			s.order = append(s.order, label)
		} else {
			if elapsed < e.min {
				e.min = elapsed
			}
			if elapsed > e.max {
				e.max = elapsed
			}
		}
		e.calls++
		e.total += elapsed

		s.logger.Debug("section timed",
			slog.String("label", label),
			slog.Duration("elapsed", elapsed))
	}
}

// Elapsed returns the accumulated total for label; zero for an unknown
// label.
func (s *Stopwatch) Elapsed(label string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[label]; ok {
		return e.total
	}
	return 0
}

// Calls returns how many completed Start/stop cycles label has seen.
func (s *Stopwatch) Calls(label string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[label]; ok {
		return e.calls
	}
	return 0
}

// Fixed-column layout of the stopwatch report, one row per label in
// first-start order.
const (
	stopwatchHeader = "%-16s   %6s   %12s   %12s   %12s   %12s\n"
	stopwatchRow    = "%-16s   %6d   %12.3f   %12.3f   %12.3f   %12.3f\n"
)

// Report writes one table row per label, in first-start order:
// label, calls, total, avg, min and max milliseconds.
func (s *Stopwatch) Report(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintf(w, stopwatchHeader,
		"label", "calls", "total(ms)", "avg(ms)", "min(ms)", "max(ms)"); err != nil {
		return err
	}
	for _, label := range s.order {
		e := s.entries[label]
		ms := func(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }
		avg := e.total / time.Duration(e.calls)
		if _, err := fmt.Fprintf(w, stopwatchRow,
			label, e.calls, ms(e.total), ms(avg), ms(e.min), ms(e.max)); err != nil {
			return err
		}
	}
	return nil
}
