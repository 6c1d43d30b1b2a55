package profiler_test

import (
	"math"
	"testing"

	"github.com/arprax/algos/profiler"
	"github.com/stretchr/testify/assert"
)

// TestClassify_CanonicalRatios verifies the exact table anchors map to
// their own class.
func TestClassify_CanonicalRatios(t *testing.T) {
	assert.Equal(t, profiler.ClassConstant, profiler.Classify(1.0), "ratio 1.0 is constant")
	assert.Equal(t, profiler.ClassLogarithmic, profiler.Classify(1.15), "ratio 1.15 is logarithmic")
	assert.Equal(t, profiler.ClassLinear, profiler.Classify(2.0), "ratio 2.0 is linear")
	assert.Equal(t, profiler.ClassLinearithmic, profiler.Classify(2.15), "ratio 2.15 is linearithmic")
	assert.Equal(t, profiler.ClassQuadratic, profiler.Classify(4.0), "ratio 4.0 is quadratic")
	assert.Equal(t, profiler.ClassCubic, profiler.Classify(8.0), "ratio 8.0 is cubic")
}

// TestClassify_NearbyRatios verifies noisy measurements land on the
// nearest class, not only exact anchors.
func TestClassify_NearbyRatios(t *testing.T) {
	assert.Equal(t, profiler.ClassConstant, profiler.Classify(0.97), "slightly under 1.0 stays constant")
	assert.Equal(t, profiler.ClassConstant, profiler.Classify(1.02), "slightly over 1.0 stays constant")
	assert.Equal(t, profiler.ClassLogarithmic, profiler.Classify(1.2), "inside the 1.0-1.3 band")
	assert.Equal(t, profiler.ClassLinear, profiler.Classify(1.9), "near-doubling is linear")
	assert.Equal(t, profiler.ClassLinearithmic, profiler.Classify(2.25), "inside the 2.0-2.3 band")
	assert.Equal(t, profiler.ClassQuadratic, profiler.Classify(3.8), "near 4.0 is quadratic")
	assert.Equal(t, profiler.ClassQuadratic, profiler.Classify(4.4), "near 4.0 is quadratic")
	assert.Equal(t, profiler.ClassCubic, profiler.Classify(7.6), "near 8.0 is cubic")
}

// TestClassify_LowerOrderWins verifies the conservative tie-break: just
// under the log-scale midpoint goes to the lower class, just over to
// the higher one. The linear/linearithmic midpoint sits at
// sqrt(2.0*2.15) ~ 2.0736.
func TestClassify_LowerOrderWins(t *testing.T) {
	assert.Equal(t, profiler.ClassLinear, profiler.Classify(2.070),
		"below the midpoint must stay with the lower-order class")
	assert.Equal(t, profiler.ClassLinearithmic, profiler.Classify(2.078),
		"above the midpoint moves to the higher-order class")

	// Same shape at the constant/logarithmic midpoint, sqrt(1.15) ~ 1.0724.
	assert.Equal(t, profiler.ClassConstant, profiler.Classify(1.070))
	assert.Equal(t, profiler.ClassLogarithmic, profiler.Classify(1.075))
}

// TestClassify_ExponentialCutoff verifies the open-ended top band:
// ratios past 2^3.5 (~11.31) are exponential, ratios just under still
// read as cubic.
func TestClassify_ExponentialCutoff(t *testing.T) {
	assert.Equal(t, profiler.ClassCubic, profiler.Classify(11.0), "log2(11) < 3.5 still cubic")
	assert.Equal(t, profiler.ClassExponential, profiler.Classify(11.4), "log2 past 3.5 is exponential")
	assert.Equal(t, profiler.ClassExponential, profiler.Classify(64.0), "far past the cutoff stays exponential")
	assert.Equal(t, profiler.ClassExponential, profiler.Classify(1e9), "the band is open-ended upward")
}

// TestClassify_DegenerateRatios verifies that undefined ratios never
// reach the table.
func TestClassify_DegenerateRatios(t *testing.T) {
	assert.Equal(t, profiler.ClassInconclusive, profiler.Classify(0), "zero ratio is inconclusive")
	assert.Equal(t, profiler.ClassInconclusive, profiler.Classify(-2.0), "negative ratio is inconclusive")
	assert.Equal(t, profiler.ClassInconclusive, profiler.Classify(math.NaN()), "NaN is inconclusive")
	assert.Equal(t, profiler.ClassInconclusive, profiler.Classify(math.Inf(1)), "+Inf is inconclusive")
	assert.Equal(t, profiler.ClassInconclusive, profiler.Classify(math.Inf(-1)), "-Inf is inconclusive")
}

// TestClass_Labels pins the big-O labels the report prints.
func TestClass_Labels(t *testing.T) {
	assert.Equal(t, "O(1)", profiler.ClassConstant.String())
	assert.Equal(t, "O(log N)", profiler.ClassLogarithmic.String())
	assert.Equal(t, "O(N)", profiler.ClassLinear.String())
	assert.Equal(t, "O(N log N)", profiler.ClassLinearithmic.String())
	assert.Equal(t, "O(N^2)", profiler.ClassQuadratic.String())
	assert.Equal(t, "O(N^3)", profiler.ClassCubic.String())
	assert.Equal(t, "O(2^N)", profiler.ClassExponential.String())
	assert.Equal(t, "inconclusive", profiler.ClassInconclusive.String())
	assert.Equal(t, "inconclusive", profiler.Class(200).String(), "unknown values read as inconclusive")
}
