// Package config loads the tunables that select engine.Options: worker
// count, planner strategy and accumulator strategy. It follows the
// defaults-then-file-then-overrides layering used across the example
// corpus's config managers, simplified to a single static Load: this
// engine runs as a batch computation invoked once per process, not a
// long-lived service, so there is no hot-reload watcher here.
package config
