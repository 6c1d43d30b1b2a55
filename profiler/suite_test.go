package profiler_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/arprax/algos/profiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spinN(iterations int) profiler.Workload[int] {
	return func(int) error {
		acc := 0
		for i := 0; i < iterations; i++ {
			acc += i
		}
		spinSink += acc
		return nil
	}
}

// TestRunSuite_OrdersFastestFirst verifies sorting and the slowdown
// factors against the winner.
func TestRunSuite_OrdersFastestFirst(t *testing.T) {
	cands := []profiler.Candidate[int]{
		{Name: "tortoise", Run: spinN(200000)},
		{Name: "hare", Run: spinN(1000)},
	}

	results, err := profiler.RunSuite(cands, identityGen, 100, profiler.WithRepeats(5))
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "hare", results[0].Name, "fastest candidate leads")
	assert.Equal(t, 1.0, results[0].Slowdown, "the winner defines the baseline")
	assert.Greater(t, results[1].Slowdown, 1.0, "losers carry their factor against the winner")
}

// TestRunSuite_Validation verifies the synchronous rejections.
func TestRunSuite_Validation(t *testing.T) {
	ok := spinN(10)

	_, err := profiler.RunSuite(nil, identityGen, 10)
	assert.ErrorIs(t, err, profiler.ErrNoCandidates)

	_, err = profiler.RunSuite([]profiler.Candidate[int]{{Name: "a", Run: nil}}, identityGen, 10)
	assert.ErrorIs(t, err, profiler.ErrNilWorkload)

	_, err = profiler.RunSuite([]profiler.Candidate[int]{
		{Name: "dup", Run: ok}, {Name: "dup", Run: ok},
	}, identityGen, 10)
	assert.ErrorIs(t, err, profiler.ErrDuplicateName)

	_, err = profiler.RunSuite([]profiler.Candidate[int]{{Name: "a", Run: ok}}, nil, 10)
	assert.ErrorIs(t, err, profiler.ErrNilGenerator)

	_, err = profiler.RunSuite([]profiler.Candidate[int]{{Name: "a", Run: ok}}, identityGen, 0)
	assert.ErrorIs(t, err, profiler.ErrBadSize)

	_, err = profiler.RunSuite([]profiler.Candidate[int]{{Name: "a", Run: ok}}, identityGen, 10,
		profiler.WithRepeats(-1))
	assert.ErrorIs(t, err, profiler.ErrBadRepeats)
}

// TestRunSuite_CandidateErrorAborts verifies the untouched error comes
// back with the results measured before the failure.
func TestRunSuite_CandidateErrorAborts(t *testing.T) {
	boom := errors.New("boom in second candidate")
	cands := []profiler.Candidate[int]{
		{Name: "first", Run: spinN(10)},
		{Name: "second", Run: func(int) error { return boom }},
		{Name: "third", Run: spinN(10)},
	}

	results, err := profiler.RunSuite(cands, identityGen, 10, profiler.WithRepeats(1))
	assert.Same(t, boom, err)
	require.Len(t, results, 1, "only the candidate before the failure finished")
	assert.Equal(t, "first", results[0].Name)
}

// TestRenderSuite_Table pins the fixed-column layout, including the
// dash shown when the winner measured below timer resolution.
func TestRenderSuite_Table(t *testing.T) {
	results := []profiler.SuiteResult{
		{Name: "quick", Duration: 4500 * time.Microsecond, Slowdown: 1.0},
		{Name: "merge", Duration: 9 * time.Millisecond, Slowdown: 2.0},
	}

	want := fmt.Sprintf("%-16s   %12s   %8s\n", "candidate", "time(ms)", "vs best") +
		fmt.Sprintf("%-16s   %12s   %8s\n", "---------", "--------", "-------") +
		fmt.Sprintf("%-16s   %12.3f   %8s\n", "quick", 4.5, "1.00x") +
		fmt.Sprintf("%-16s   %12.3f   %8s\n", "merge", 9.0, "2.00x")

	var b strings.Builder
	require.NoError(t, profiler.RenderSuite(&b, results))
	assert.Equal(t, want, b.String())

	b.Reset()
	require.NoError(t, profiler.RenderSuite(&b, []profiler.SuiteResult{{Name: "noop"}}))
	assert.Contains(t, b.String(), "   -\n", "undefined slowdown renders as a dash")
}

// TestRenderSuite_WriterError verifies write failures surface.
func TestRenderSuite_WriterError(t *testing.T) {
	sink := errors.New("sink closed")
	assert.ErrorIs(t, profiler.RenderSuite(failWriter{err: sink}, nil), sink)
}
