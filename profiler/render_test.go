package profiler_test

import (
	"errors"
	"testing"
	"time"

	"github.com/arprax/algos/profiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

// TestRender_Table pins the full fixed-column layout: plain integer N,
// right-aligned millisecond durations with three decimals, the ratio
// column dashed on the first row and on undefined ratios, and the
// verdict line with its confidence qualifier.
func TestRender_Table(t *testing.T) {
	rounds := []profiler.RoundResult{
		{N: 500, Duration: 12375 * time.Microsecond},
		{N: 1000, Duration: 49500 * time.Microsecond, Ratio: 4.0, Class: profiler.ClassQuadratic},
		{N: 2000, Duration: 0, Class: profiler.ClassInconclusive},
		{N: 4000, Duration: 198 * time.Millisecond, Class: profiler.ClassInconclusive},
	}
	verdict := profiler.Verdict{Class: profiler.ClassInconclusive, Confidence: profiler.ConfidenceNoResolution}

	want := "" +
		"         N       time(ms)      ratio   class\n" +
		"    ------       --------      -----   -----\n" +
		"       500         12.375          -   -\n" +
		"      1000         49.500      4.000   O(N^2)\n" +
		"      2000          0.000          -   inconclusive\n" +
		"      4000        198.000          -   inconclusive\n" +
		"\n" +
		"verdict: inconclusive [insufficient resolution]\n"

	assert.Equal(t, want, profiler.RenderString(rounds, verdict))
}

// TestRender_QuadraticVerdictLine verifies the happy-path verdict
// rendering with a ratio and no qualifier.
func TestRender_QuadraticVerdictLine(t *testing.T) {
	rounds := []profiler.RoundResult{
		{N: 100, Duration: 4 * time.Millisecond},
		{N: 200, Duration: 16 * time.Millisecond, Ratio: 4.0, Class: profiler.ClassQuadratic},
	}
	verdict := profiler.Verdict{Class: profiler.ClassQuadratic, Ratio: 4.0}

	got := profiler.RenderString(rounds, verdict)
	assert.Contains(t, got, "verdict: O(N^2) (ratio 4.00)\n")
	assert.NotContains(t, got, "[", "no qualifier without a confidence note")
}

// TestRender_EmptyRounds verifies rendering degrades to header plus
// verdict, without panicking on an empty sequence.
func TestRender_EmptyRounds(t *testing.T) {
	got := profiler.RenderString(nil, profiler.Verdict{Class: profiler.ClassInconclusive})
	assert.Contains(t, got, "         N       time(ms)")
	assert.Contains(t, got, "verdict: inconclusive\n")
}

// TestRender_WriterError verifies Fprintf failures surface instead of
// being swallowed.
func TestRender_WriterError(t *testing.T) {
	sink := errors.New("sink closed")
	err := profiler.Render(failWriter{err: sink}, []profiler.RoundResult{{N: 1}}, profiler.Verdict{})
	require.Error(t, err)
	assert.ErrorIs(t, err, sink)
}
