// SPDX-License-Identifier: MIT

// Package profiler times algorithm execution under controlled conditions
// and estimates empirical growth rates with a doubling-size experiment.
//
// 🚀 Why a profiler?
//
//	Asymptotic claims ("this sort is O(N²)") are easy to state and easy
//	to get wrong. The doubling test checks them empirically: time the
//	workload at N, 2N, 4N, ... and inspect the ratio of successive
//	durations. Each growth class has a characteristic doubling ratio
//	(linear ≈ 2, quadratic ≈ 4, cubic ≈ 8), so the observed ratio names
//	the class.
//
// ✨ Key features:
//   - warm-up trials discarded before measurement, so cache and runtime
//     effects settle outside the timed window
//   - the garbage collector is suspended around every timed trial and
//     restored on all exit paths, including workload failure
//   - min / mean / median sample reduction (min is the default: least
//     sensitive to scheduling noise, converges to the true cost floor)
//   - nearest-class verdicts on the log scale, ties broken toward the
//     lower-order class
//   - fixed-column text reports, a Stopwatch for section timing, and
//     head-to-head suites for comparing candidates at one size
//
// ⚙️ Usage:
//
//	rounds, verdict, err := profiler.RunDoublingTest(
//		workload,                         // func([]int) error
//		dataset.Random(dataset.WithSeed(1)),
//		500, 5,                           // start N, rounds
//		profiler.WithRepeats(7),
//		profiler.WithWarmup(2),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = profiler.Render(os.Stdout, rounds, verdict)
//
// Measurement discipline:
//
//   - Single-threaded and synchronous: every trial runs to completion
//     before the next begins. Parallel measurement would itself be a
//     confound, so none is offered.
//   - No retries anywhere: a deterministic workload that fails will fail
//     identically again, and noisy timing is handled by aggregation.
//   - Durations below timer resolution produce an inconclusive verdict,
//     never a division by zero.
//
// See example_test.go for runnable examples of every entry point.
package profiler
