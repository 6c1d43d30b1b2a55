package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arprax/algos/profiler"
)

// analyzeRound is the JSON shape of one doubling round.
type analyzeRound struct {
	N          int     `json:"n"`
	DurationNs int64   `json:"duration_ns"`
	Ratio      float64 `json:"ratio,omitempty"`
	Class      string  `json:"class,omitempty"`
	MemBytes   uint64  `json:"mem_bytes,omitempty"`
}

// analyzeReport is the JSON shape of a full analyze run.
type analyzeReport struct {
	Algorithm  string         `json:"algorithm"`
	Mode       string         `json:"mode"`
	Repeats    int            `json:"repeats"`
	Rounds     []analyzeRound `json:"rounds"`
	Verdict    string         `json:"verdict"`
	LastRatio  float64        `json:"last_ratio,omitempty"`
	Confidence string         `json:"confidence,omitempty"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <algorithm>",
	Short: "Run a doubling test against one algorithm",
	Long: `analyze times an algorithm over a geometric ladder of input sizes
(start-n, 2x, 4x, ...) and classifies the growth of the measured
durations. Exit is nonzero when the workload itself fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Int("start-n", 500, "input size of the first round")
	analyzeCmd.Flags().Int("rounds", 5, "number of doublings to time")
	analyzeCmd.Flags().Bool("mem", false, "track peak heap growth per round")

	viper.BindPFlag("start_n", analyzeCmd.Flags().Lookup("start-n"))
	viper.BindPFlag("rounds", analyzeCmd.Flags().Lookup("rounds"))
	viper.BindPFlag("mem", analyzeCmd.Flags().Lookup("mem"))
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	opts, err := benchOptions()
	if err != nil {
		return err
	}
	if viper.GetBool("mem") {
		opts = append(opts, profiler.WithMemStats(true))
	}

	startN := viper.GetInt("start_n")
	rounds := viper.GetInt("rounds")
	seed := viper.GetInt64("seed")

	if gsub, ok := lookupGraphSubject(args[0]); ok {
		return analyzeGraph(cmd, gsub, startN, rounds, seed, opts)
	}

	sub, err := lookupSubject(args[0])
	if err != nil {
		return err
	}
	gen := generatorFor(sub.shape, seed)

	logger.Info("doubling test", "algorithm", sub.name, "start_n", startN, "rounds", rounds)
	results, verdict, err := profiler.RunDoublingTest(sub.workload, gen, startN, rounds, opts...)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", sub.name, err)
	}
	return renderAnalysis(cmd, sub.name, sub.expected, results, verdict)
}

// analyzeGraph runs the ladder for a graph-backed subject, choosing the
// generator by graph flavor.
func analyzeGraph(cmd *cobra.Command, sub graphSubject, startN, rounds int, seed int64, opts []profiler.Option) error {
	logger.Info("doubling test", "algorithm", sub.name, "start_n", startN, "rounds", rounds)

	var (
		results []profiler.RoundResult
		verdict profiler.Verdict
		err     error
	)
	if sub.shape == shapeWeighted {
		results, verdict, err = profiler.RunDoublingTest(sub.weighted, weightedGenerator(seed), startN, rounds, opts...)
	} else {
		results, verdict, err = profiler.RunDoublingTest(sub.unweighted, unweightedGenerator(seed), startN, rounds, opts...)
	}
	if err != nil {
		return fmt.Errorf("analyze %s: %w", sub.name, err)
	}
	return renderAnalysis(cmd, sub.name, sub.expected, results, verdict)
}

// renderAnalysis writes the table or JSON report for one finished
// doubling test.
func renderAnalysis(cmd *cobra.Command, name string, expected profiler.Class, results []profiler.RoundResult, verdict profiler.Verdict) error {
	out := cmd.OutOrStdout()
	if viper.GetBool("json") {
		return writeJSON(out, analyzeToJSON(name, results, verdict))
	}

	fmt.Fprintln(out, styles.Title.Render("arprof · doubling test · "+name))
	fmt.Fprintln(out)
	if err := profiler.Render(out, results, verdict); err != nil {
		return err
	}
	fmt.Fprintln(out, verdictBanner(name, expected, verdict))
	return nil
}

// verdictBanner compares the measured class against the textbook
// expectation and colors the line accordingly.
func verdictBanner(name string, expected profiler.Class, v profiler.Verdict) string {
	switch {
	case v.Class == profiler.ClassInconclusive:
		return styles.Muted.Render("no stable growth signal; raise --start-n or --rounds")
	case v.Class == expected:
		return styles.Success.Render(fmt.Sprintf("%s matches its expected %s growth", name, v.Class))
	default:
		return styles.Warning.Render(fmt.Sprintf("%s measured %s, expected %s", name, v.Class, expected))
	}
}

func analyzeToJSON(name string, results []profiler.RoundResult, v profiler.Verdict) analyzeReport {
	report := analyzeReport{
		Algorithm:  name,
		Mode:       viper.GetString("mode"),
		Repeats:    viper.GetInt("repeats"),
		Rounds:     make([]analyzeRound, 0, len(results)),
		Verdict:    v.Class.String(),
		LastRatio:  v.Ratio,
		Confidence: v.Confidence,
	}
	for i, r := range results {
		round := analyzeRound{N: r.N, DurationNs: r.Duration.Nanoseconds(), MemBytes: r.MemDelta}
		if i > 0 {
			round.Ratio = r.Ratio
			round.Class = r.Class.String()
		}
		report.Rounds = append(report.Rounds, round)
	}
	return report
}

// writeJSON emits indented JSON with a trailing newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
