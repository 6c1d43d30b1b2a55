// SPDX-License-Identifier: MIT

package profiler

import (
	"fmt"
	"log/slog"
	"math"
)

// RunDoublingTest measures workload at sizes startN, 2*startN, 4*startN,
// ... for rounds rounds, then classifies the empirical growth rate from
// the ratio of successive durations.
//
// Each returned RoundResult carries its size, reduced duration and, from
// the second round on, the ratio against the previous round with that
// ratio's nearest growth class. The Verdict classifies the ratio between
// the final two rounds, the pair least distorted by fixed startup
// overhead. Two-round runs carry ConfidenceLow (a single ratio sample);
// runs whose final ratio is undefined because a duration measured as
// zero carry ClassInconclusive with ConfidenceNoResolution rather than
// dividing by zero.
//
// All configuration violations (rounds < 2, startN < 1, option errors,
// a doubled size overflowing int) are rejected before any trial runs.
// A workload error aborts the test: the rounds completed so far come
// back together with the workload's error exactly as it was returned.
func RunDoublingTest[T any](workload Workload[T], generate Generator[T], startN, rounds int, opts ...Option) ([]RoundResult, Verdict, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, Verdict{}, err
	}
	if err = validateRun(workload, generate, startN); err != nil {
		return nil, Verdict{}, err
	}
	if rounds < 2 {
		return nil, Verdict{}, fmt.Errorf("%w: got %d", ErrBadRounds, rounds)
	}
	if startN > math.MaxInt>>uint(rounds-1) {
		return nil, Verdict{}, fmt.Errorf("%w: %d rounds from start %d", ErrSizeOverflow, rounds, startN)
	}

	results := make([]RoundResult, 0, rounds)
	for i := 0; i < rounds; i++ {
		n := startN << uint(i)

		rr, err := measure(workload, generate, n, &o)
		if err != nil {
			return results, Verdict{}, err
		}

		if i > 0 {
			// Ratio only against a resolvable predecessor; a zero
			// previous duration leaves the ratio undefined (0).
			if prev := results[i-1]; prev.Duration > 0 {
				rr.Ratio = float64(rr.Duration) / float64(prev.Duration)
				rr.Class = Classify(rr.Ratio)
			}
		}
		results = append(results, rr)

		o.Logger.Debug("round complete",
			slog.Int("round", i),
			slog.Int("n", n),
			slog.Duration("duration", rr.Duration),
			slog.Float64("ratio", rr.Ratio))
	}

	return results, verdictFor(results), nil
}

// verdictFor derives the final classification from a complete round
// sequence (len >= 2, guaranteed by RunDoublingTest's validation).
func verdictFor(results []RoundResult) Verdict {
	last := results[len(results)-1]
	if last.Ratio <= 0 {
		return Verdict{Class: ClassInconclusive, Confidence: ConfidenceNoResolution}
	}

	v := Verdict{Class: Classify(last.Ratio), Ratio: last.Ratio}
	if len(results) < 3 {
		v.Confidence = ConfidenceLow
	}
	return v
}
