package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalyze_TextReport runs a short real doubling test and checks
// the rendered surface.
func TestAnalyze_TextReport(t *testing.T) {
	out, err := executeCLI(t, "analyze", "insertion",
		"--start-n", "64", "--rounds", "2", "--repeats", "1", "--warmup", "0")

	require.NoError(t, err)
	assert.Contains(t, out, "doubling test · insertion")
	assert.Contains(t, out, "time(ms)")
	assert.Contains(t, out, "verdict:")
}

// TestAnalyze_JSONReport checks the machine-readable shape.
func TestAnalyze_JSONReport(t *testing.T) {
	out, err := executeCLI(t, "analyze", "insertion", "--json",
		"--start-n", "64", "--rounds", "2", "--repeats", "1", "--warmup", "0")
	require.NoError(t, err)

	var report analyzeReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, "insertion", report.Algorithm)
	require.Len(t, report.Rounds, 2)
	assert.Equal(t, 64, report.Rounds[0].N)
	assert.Equal(t, 128, report.Rounds[1].N)
	assert.Positive(t, report.Rounds[0].DurationNs)
	assert.NotEmpty(t, report.Verdict)
	assert.NotEmpty(t, report.Confidence, "two rounds give a single ratio sample")
}

// TestAnalyze_EnvOverridesDefaults proves ARPROF_* variables reach the
// knobs without flags.
func TestAnalyze_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("ARPROF_REPEATS", "2")
	t.Setenv("ARPROF_MODE", "median")

	out, err := executeCLI(t, "analyze", "insertion", "--json",
		"--start-n", "64", "--rounds", "2", "--warmup", "0")
	require.NoError(t, err)

	var report analyzeReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 2, report.Repeats)
	assert.Equal(t, "median", report.Mode)
}

// TestAnalyze_GraphSubject runs the ladder over generated graphs.
func TestAnalyze_GraphSubject(t *testing.T) {
	out, err := executeCLI(t, "analyze", "bfs", "--json",
		"--start-n", "64", "--rounds", "2", "--repeats", "1", "--warmup", "0")
	require.NoError(t, err)

	var report analyzeReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, "bfs", report.Algorithm)
	require.Len(t, report.Rounds, 2)
	assert.Equal(t, 64, report.Rounds[0].N)
	assert.Equal(t, 128, report.Rounds[1].N)
	assert.Positive(t, report.Rounds[0].DurationNs)
}

// TestAnalyze_WeightedGraphSubject covers the weighted-flavor ladder.
func TestAnalyze_WeightedGraphSubject(t *testing.T) {
	out, err := executeCLI(t, "analyze", "dijkstra",
		"--start-n", "64", "--rounds", "2", "--repeats", "1", "--warmup", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "doubling test · dijkstra")
	assert.Contains(t, out, "verdict:")
}

// TestAnalyze_UnknownAlgorithm surfaces the catalog miss and advertises
// subjects from both catalogs.
func TestAnalyze_UnknownAlgorithm(t *testing.T) {
	_, err := executeCLI(t, "analyze", "warp-drive")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown algorithm")
	assert.Contains(t, err.Error(), "bubble")
	assert.Contains(t, err.Error(), "dijkstra")
}

// TestAnalyze_BadMode is rejected at flag parse time.
func TestAnalyze_BadMode(t *testing.T) {
	_, err := executeCLI(t, "analyze", "insertion", "--mode", "bogus")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

// TestAnalyze_BadRepeats hits the harness validation through the CLI.
func TestAnalyze_BadRepeats(t *testing.T) {
	_, err := executeCLI(t, "analyze", "insertion", "--repeats", "0",
		"--start-n", "64", "--rounds", "2")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "repeats")
}

// TestAnalyze_RequiresExactlyOneArg rejects zero and two subjects.
func TestAnalyze_RequiresExactlyOneArg(t *testing.T) {
	_, err := executeCLI(t, "analyze")
	assert.Error(t, err)

	_, err = executeCLI(t, "analyze", "quick", "merge")
	assert.Error(t, err)
}
