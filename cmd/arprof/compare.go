package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/arprax/algos/graphs"
	"github.com/arprax/algos/profiler"
)

// suiteManifest is the YAML shape of a saved comparison suite.
// Explicit flags always win over manifest values.
type suiteManifest struct {
	N          int      `yaml:"n"`
	Repeats    int      `yaml:"repeats"`
	Warmup     int      `yaml:"warmup"`
	Mode       string   `yaml:"mode"`
	Algorithms []string `yaml:"algorithms"`
}

// compareEntry is the JSON shape of one ranked candidate.
type compareEntry struct {
	Algorithm  string  `json:"algorithm"`
	DurationNs int64   `json:"duration_ns"`
	Slowdown   float64 `json:"slowdown"`
	MemBytes   uint64  `json:"mem_bytes,omitempty"`
}

// compareReport is the JSON shape of a full comparison.
type compareReport struct {
	N       int            `json:"n"`
	Mode    string         `json:"mode"`
	Repeats int            `json:"repeats"`
	Ranking []compareEntry `json:"ranking"`
}

var compareCmd = &cobra.Command{
	Use:   "compare <algorithm>...",
	Short: "Race several algorithms on one input size",
	Long: `compare times each named algorithm on identical input and ranks the
field fastest first. Candidates must agree on the input shape they
expect; racing a sort against a sorted-input search is refused.

A suite manifest (--suite race.yaml) can carry the field and knobs:

    n: 8192
    repeats: 5
    algorithms: [quick, merge, heap]`,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().Int("n", 4096, "input size for every candidate")
	compareCmd.Flags().String("suite", "", "YAML manifest naming the candidates")

	viper.BindPFlag("n", compareCmd.Flags().Lookup("n"))
}

func runCompare(cmd *cobra.Command, args []string) error {
	names := args
	n := viper.GetInt("n")
	repeats := viper.GetInt("repeats")
	warmup := viper.GetInt("warmup")
	modeStr := viper.GetString("mode")

	if path, _ := cmd.Flags().GetString("suite"); path != "" {
		manifest, err := loadSuite(path)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			names = manifest.Algorithms
		}
		if !cmd.Flags().Changed("n") && manifest.N > 0 {
			n = manifest.N
		}
		if !rootCmd.PersistentFlags().Changed("repeats") && manifest.Repeats > 0 {
			repeats = manifest.Repeats
		}
		if !rootCmd.PersistentFlags().Changed("warmup") && manifest.Warmup > 0 {
			warmup = manifest.Warmup
		}
		if !rootCmd.PersistentFlags().Changed("mode") && manifest.Mode != "" {
			modeStr = manifest.Mode
		}
	}
	if len(names) == 0 {
		return fmt.Errorf("no algorithms named; pass them as arguments or via --suite")
	}

	mode, err := profiler.ParseMode(modeStr)
	if err != nil {
		return err
	}

	// Candidates bucket by input shape; one comparison must stay inside
	// a single bucket.
	var (
		sliceCands    []profiler.Candidate[[]int]
		graphCands    []profiler.Candidate[*graphs.Graph]
		weightedCands []profiler.Candidate[*graphs.WeightedGraph]
	)
	shape := inputShape("")
	for _, name := range names {
		cur := inputShape("")
		if gsub, ok := lookupGraphSubject(name); ok {
			cur = gsub.shape
			if gsub.shape == shapeWeighted {
				weightedCands = append(weightedCands, profiler.Candidate[*graphs.WeightedGraph]{Name: gsub.name, Run: gsub.weighted})
			} else {
				graphCands = append(graphCands, profiler.Candidate[*graphs.Graph]{Name: gsub.name, Run: gsub.unweighted})
			}
		} else {
			sub, err := lookupSubject(name)
			if err != nil {
				return err
			}
			cur = sub.shape
			sliceCands = append(sliceCands, profiler.Candidate[[]int]{Name: sub.name, Run: sub.workload})
		}
		if shape == "" {
			shape = cur
		} else if cur != shape {
			return fmt.Errorf("mixed input shapes: %s wants %s input, earlier candidates want %s", name, cur, shape)
		}
	}

	seed := viper.GetInt64("seed")
	suiteOpts := []profiler.Option{
		profiler.WithRepeats(repeats),
		profiler.WithWarmup(warmup),
		profiler.WithMode(mode),
		profiler.WithLogger(logger),
	}

	logger.Info("comparison", "candidates", len(names), "n", n)
	var results []profiler.SuiteResult
	switch shape {
	case shapeGraph:
		results, err = profiler.RunSuite(graphCands, unweightedGenerator(seed), n, suiteOpts...)
	case shapeWeighted:
		results, err = profiler.RunSuite(weightedCands, weightedGenerator(seed), n, suiteOpts...)
	default:
		results, err = profiler.RunSuite(sliceCands, generatorFor(shape, seed), n, suiteOpts...)
	}
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}

	out := cmd.OutOrStdout()
	if viper.GetBool("json") {
		report := compareReport{N: n, Mode: modeStr, Repeats: repeats}
		for _, r := range results {
			report.Ranking = append(report.Ranking, compareEntry{
				Algorithm:  r.Name,
				DurationNs: r.Duration.Nanoseconds(),
				Slowdown:   r.Slowdown,
				MemBytes:   r.MemDelta,
			})
		}
		return writeJSON(out, report)
	}

	fmt.Fprintln(out, styles.Title.Render(fmt.Sprintf("arprof · comparison · n=%d", n)))
	fmt.Fprintln(out)
	if err := profiler.RenderSuite(out, results); err != nil {
		return err
	}
	winner := results[0]
	fmt.Fprintln(out, styles.Success.Render(fmt.Sprintf("fastest: %s (%.3f ms)",
		winner.Name, float64(winner.Duration)/float64(time.Millisecond))))
	return nil
}

// loadSuite reads and validates a YAML suite manifest.
func loadSuite(path string) (suiteManifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return suiteManifest{}, fmt.Errorf("suite manifest: %w", err)
	}
	var m suiteManifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return suiteManifest{}, fmt.Errorf("suite manifest %s: %w", path, err)
	}
	return m, nil
}
