package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/dmatrix/config"
	"github.com/katalvlaran/dmatrix/dataio"
	"github.com/katalvlaran/dmatrix/engine"
	"github.com/katalvlaran/dmatrix/trace"
	"github.com/spf13/cobra"
)

var (
	flagNoTransfer          bool
	flagConfigPath          string
	flagWorkers             int
	flagStrategy            string
	flagAccumulatorStrategy string
	flagPrivateAccumulators bool
	flagTrace               bool
)

var rootCmd = &cobra.Command{
	Use:   "dmatrix <input-path> <output-path>",
	Short: "Compute an irredundant difference matrix from a labeled training set",
	Long: `dmatrix reads a training set (feature matrix, image matrix, and feature
value ranges) and writes the irredundant difference matrix and column-weight
vector computed from it.`,
	Args: cobra.ExactArgs(2),
	RunE: runDmatrix,
}

func init() {
	rootCmd.Flags().BoolVar(&flagNoTransfer, "no-transfer", false, "omit the input feature matrix from the output file")
	rootCmd.Flags().StringVar(&flagConfigPath, "config", "", "path to a YAML config file")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.Flags().StringVar(&flagStrategy, "strategy", "", "planning strategy: bisect|queue")
	rootCmd.Flags().StringVar(&flagAccumulatorStrategy, "accumulator", "", "accumulator strategy: coarse|lockfree")
	rootCmd.Flags().BoolVar(&flagPrivateAccumulators, "private-accumulators", false, "give each worker a private accumulator, folded at the end")
	rootCmd.Flags().BoolVar(&flagTrace, "trace", false, "log phase timings and events to stderr")
}

// Execute runs the root command and returns its error, if any.
func Execute() error {
	return rootCmd.Execute()
}

func runDmatrix(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}
	cfg = cfg.Override(flagWorkers, flagStrategy, flagAccumulatorStrategy, flagPrivateAccumulators)

	opts, err := cfg.ToEngineOptions()
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	if flagTrace {
		opts.Observer = trace.NewLog(os.Stderr, runID)
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("dmatrix: %w", err)
	}
	defer in.Close()

	ds, err := dataio.LoadTrainingSet(in)
	if err != nil {
		return fmt.Errorf("dmatrix: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 24*time.Hour)
	defer cancel()

	acc, err := engine.Run(ctx, ds, opts)
	if err != nil && !errors.Is(err, engine.ErrNoWork) {
		return fmt.Errorf("dmatrix: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("dmatrix: %w", err)
	}
	defer out.Close()

	if err := dataio.WriteResult(out, acc, ds, flagNoTransfer); err != nil {
		return fmt.Errorf("dmatrix: %w", err)
	}
	return nil
}
