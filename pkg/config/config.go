package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Ops accepted in a step's `op` field. The replace/erase family requires a
// non-empty `target`.
var knownOps = map[string]bool{
	"upper":            true,
	"lower":            true,
	"trim":             true,
	"trim_left":        true,
	"trim_right":       true,
	"condense":         true,
	"standardize":      true,
	"remove_surrounds": true,
	"replace":          true,
	"replace_last":     true,
	"replace_all":      true,
	"erase":            true,
	"erase_last":       true,
	"erase_all":        true,
}

// IsKnownOp reports whether name is a recognized transform op.
func IsKnownOp(name string) bool { return knownOps[name] }

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if len(cfg.Sources) == 0 {
		return errors.New("sources: at least one source is required")
	}

	for i := range cfg.Steps {
		if err := validateStep(&cfg.Steps[i]); err != nil {
			return fmt.Errorf("steps[%d]: %w", i, err)
		}
	}

	switch cfg.Output {
	case "", "text", "json":
	default:
		return fmt.Errorf("output: unknown format %q (use text or json)", cfg.Output)
	}

	return nil
}

func validateStep(step *StepConfig) error {
	if step.Op == "" {
		return errors.New("op is required")
	}
	if !IsKnownOp(step.Op) {
		return fmt.Errorf("unknown op %q", step.Op)
	}

	switch step.Op {
	case "replace", "replace_last", "replace_all", "erase", "erase_last", "erase_all":
		if step.Target == "" {
			return fmt.Errorf("op %q requires a target", step.Op)
		}
	default:
		if step.Target != "" || step.With != "" {
			return fmt.Errorf("op %q takes no target/with arguments", step.Op)
		}
	}

	return nil
}
