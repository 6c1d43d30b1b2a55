package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arprax/algos/profiler"
)

var exit = os.Exit

// logger is rebuilt before every command run; --verbose switches it
// from discard to debug-level text on stderr.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

var modeFlag = modeValue(profiler.ModeMin)

var rootCmd = &cobra.Command{
	Use:   "arprof",
	Short: "Arprax algorithm profiler",
	Long: `arprof measures how running time grows as input size doubles and
classifies the growth against the textbook complexity classes.

Every knob is also reachable through ARPROF_* environment variables
and an optional .arprof.yaml in the working directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(cmd.ErrOrStderr(), viper.GetBool("verbose"))
	},
}

// Execute runs the CLI, converting panics and errors into a nonzero
// exit instead of a raw stack trace mid-report.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "arprof: panic: %v\n%s", r, debug.Stack())
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("error: "+err.Error()))
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "debug logging on stderr")
	pf.Bool("json", false, "machine-readable output")
	pf.Int("repeats", profiler.DefaultRepeats, "timed trials per input size")
	pf.Int("warmup", profiler.DefaultWarmup, "discarded warmup trials per input size")
	pf.Int64("seed", 42, "seed for generated datasets")
	pf.Var(&modeFlag, "mode", "aggregation across trials (min|mean|median)")

	viper.BindPFlag("verbose", pf.Lookup("verbose"))
	viper.BindPFlag("json", pf.Lookup("json"))
	viper.BindPFlag("repeats", pf.Lookup("repeats"))
	viper.BindPFlag("warmup", pf.Lookup("warmup"))
	viper.BindPFlag("seed", pf.Lookup("seed"))
	viper.BindPFlag("mode", pf.Lookup("mode"))
}

// initConfig layers the optional config file and ARPROF_* environment
// variables under the flag values.
func initConfig() {
	viper.SetConfigName(".arprof")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("ARPROF")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("repeats", profiler.DefaultRepeats)
	viper.SetDefault("warmup", profiler.DefaultWarmup)
	viper.SetDefault("mode", "min")
	viper.SetDefault("seed", int64(42))

	// Missing config file is the normal case.
	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("config file loaded", "path", viper.ConfigFileUsed())
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// benchOptions assembles the profiler options shared by analyze and
// compare from the resolved viper state.
func benchOptions() ([]profiler.Option, error) {
	mode, err := profiler.ParseMode(viper.GetString("mode"))
	if err != nil {
		return nil, err
	}
	return []profiler.Option{
		profiler.WithRepeats(viper.GetInt("repeats")),
		profiler.WithWarmup(viper.GetInt("warmup")),
		profiler.WithMode(mode),
		profiler.WithLogger(logger),
	}, nil
}
