// SPDX-License-Identifier: MIT

package profiler

import (
	"fmt"
	"sort"
	"time"
)

// reduce collapses the per-trial samples into one duration per the
// configured Mode. Callers guarantee a non-empty sample slice (repeats
// is validated >= 1 before any trial runs).
func reduce(samples []time.Duration, mode Mode) (time.Duration, error) {
	switch mode {
	case ModeMin:
		return minOf(samples), nil
	case ModeMean:
		return meanOf(samples), nil
	case ModeMedian:
		return medianOf(samples), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrBadMode, mode)
	}
}

func minOf(samples []time.Duration) time.Duration {
	best := samples[0]
	for _, d := range samples[1:] {
		if d < best {
			best = d
		}
	}
	return best
}

func meanOf(samples []time.Duration) time.Duration {
	var sum time.Duration
	for _, d := range samples {
		sum += d
	}
	return sum / time.Duration(len(samples))
}

// medianOf sorts a copy; the caller's run order stays intact for
// RoundResult.Samples.
func medianOf(samples []time.Duration) time.Duration {
	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
