package config

import (
	"fmt"
	"os"

	"github.com/katalvlaran/dmatrix/accumulator"
	"github.com/katalvlaran/dmatrix/engine"
	"gopkg.in/yaml.v3"
)

// Config holds the tunables that select engine.Options at the CLI
// boundary. Zero values mean "use the built-in default" throughout.
type Config struct {
	Workers             int    `yaml:"workers"`
	Strategy            string `yaml:"strategy"`             // "bisect" | "queue"
	AccumulatorStrategy string `yaml:"accumulator_strategy"` // "coarse" | "lockfree"
	PrivateAccumulators bool   `yaml:"private_accumulators"`
}

// Default returns the built-in configuration: GOMAXPROCS workers (left as
// zero here for engine.Options.workers() to resolve), bisection planning,
// the coarse accumulator, and one shared accumulator across workers.
func Default() Config {
	return Config{
		Workers:             0,
		Strategy:            "bisect",
		AccumulatorStrategy: "coarse",
		PrivateAccumulators: false,
	}
}

// Load reads path as YAML over Default(), returning Default() unchanged
// if path is empty. A missing file at a non-empty path is an error: an
// explicitly named config file that doesn't exist is a user mistake, not
// an empty-config no-op.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Override applies non-zero-value CLI flags onto cfg, giving flags the
// highest precedence in the defaults-then-file-then-flags layering.
func (c Config) Override(workers int, strategy, accumulatorStrategy string, privateAccumulators bool) Config {
	out := c
	if workers > 0 {
		out.Workers = workers
	}
	if strategy != "" {
		out.Strategy = strategy
	}
	if accumulatorStrategy != "" {
		out.AccumulatorStrategy = accumulatorStrategy
	}
	if privateAccumulators {
		out.PrivateAccumulators = true
	}
	return out
}

// ErrUnknownStrategy and ErrUnknownAccumulatorStrategy are returned by
// ToEngineOptions when Strategy / AccumulatorStrategy hold a value other
// than the two each field accepts.
var (
	ErrUnknownStrategy            = fmt.Errorf("config: strategy must be %q or %q", "bisect", "queue")
	ErrUnknownAccumulatorStrategy = fmt.Errorf("config: accumulator_strategy must be %q or %q", "coarse", "lockfree")
)

// ToEngineOptions translates c into engine.Options, validating the two
// string-typed fields against the enums they name.
func (c Config) ToEngineOptions() (engine.Options, error) {
	var opts engine.Options
	opts.Workers = c.Workers
	opts.PrivateAccumulators = c.PrivateAccumulators

	switch c.Strategy {
	case "", "bisect":
		opts.Strategy = engine.StrategyBisect
	case "queue":
		opts.Strategy = engine.StrategyWorkQueue
	default:
		return engine.Options{}, ErrUnknownStrategy
	}

	switch c.AccumulatorStrategy {
	case "", "coarse":
		opts.AccumulatorStrategy = accumulator.StrategyCoarse
	case "lockfree":
		opts.AccumulatorStrategy = accumulator.StrategyLockFree
	default:
		return engine.Options{}, ErrUnknownAccumulatorStrategy
	}

	return opts, nil
}
