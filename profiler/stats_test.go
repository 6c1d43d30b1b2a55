package profiler_test

import (
	"testing"
	"time"

	"github.com/arprax/algos/profiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// TestReduce_Modes verifies each aggregation statistic over a fixed
// sample set.
func TestReduce_Modes(t *testing.T) {
	samples := []time.Duration{ms(9), ms(3), ms(7), ms(5), ms(6)}

	got, err := profiler.Reduce_TestOnly(samples, profiler.ModeMin)
	require.NoError(t, err)
	assert.Equal(t, ms(3), got, "min keeps the fastest trial")

	got, err = profiler.Reduce_TestOnly(samples, profiler.ModeMean)
	require.NoError(t, err)
	assert.Equal(t, ms(6), got, "mean of 9,3,7,5,6 is 6")

	got, err = profiler.Reduce_TestOnly(samples, profiler.ModeMedian)
	require.NoError(t, err)
	assert.Equal(t, ms(6), got, "median of sorted 3,5,6,7,9 is 6")
}

// TestReduce_UnknownMode verifies the unknown-mode dispatch branch.
func TestReduce_UnknownMode(t *testing.T) {
	_, err := profiler.Reduce_TestOnly([]time.Duration{ms(1)}, profiler.Mode(42))
	assert.ErrorIs(t, err, profiler.ErrBadMode)
}

// TestMedianOf_EvenCount verifies the middle-pair mean for an even
// sample count, and that the caller's slice keeps its run order.
func TestMedianOf_EvenCount(t *testing.T) {
	samples := []time.Duration{ms(8), ms(2), ms(4), ms(6)}

	got := profiler.MedianOf_TestOnly(samples)
	assert.Equal(t, ms(5), got, "median of sorted 2,4,6,8 is (4+6)/2")
	assert.Equal(t, []time.Duration{ms(8), ms(2), ms(4), ms(6)}, samples,
		"median must sort a copy, not the samples themselves")
}

// TestMinMeanOf_SingleSample verifies the repeats=1 corner.
func TestMinMeanOf_SingleSample(t *testing.T) {
	one := []time.Duration{ms(4)}
	assert.Equal(t, ms(4), profiler.MinOf_TestOnly(one))
	assert.Equal(t, ms(4), profiler.MeanOf_TestOnly(one))
	assert.Equal(t, ms(4), profiler.MedianOf_TestOnly(one))
}
