// SPDX-License-Identifier: MIT

package profiler

// Test bridge: exposes private helpers to profiler_test without
// widening the production API.

var (
	// MinOf_TestOnly exposes minOf for white-box tests.
	MinOf_TestOnly = minOf
	// MeanOf_TestOnly exposes meanOf for white-box tests.
	MeanOf_TestOnly = meanOf
	// MedianOf_TestOnly exposes medianOf for white-box tests.
	MedianOf_TestOnly = medianOf
	// Reduce_TestOnly exposes reduce for white-box tests.
	Reduce_TestOnly = reduce
	// VerdictFor_TestOnly exposes verdictFor for white-box tests.
	VerdictFor_TestOnly = verdictFor
)

// PauseGC_TestOnly forwards to pauseGC and hands back the release func,
// so tests can drive the guard through its full acquire/release cycle.
func PauseGC_TestOnly(enabled bool) (release func()) {
	g := pauseGC(enabled)
	return g.release
}
