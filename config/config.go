package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnknownOperation indicates Operation did not match any named op.
var ErrUnknownOperation = errors.New("config: unknown operation")

// ErrZeroLength indicates Length was 0 for a moving operation.
var ErrZeroLength = errors.New("config: length must be >= 1 for a moving operation")

// ErrZeroMinLength indicates MinLength was 0 for a moving operation.
var ErrZeroMinLength = errors.New("config: min_length must be >= 1 for a moving operation")

// ErrMinLengthExceedsLength indicates MinLength > Length.
var ErrMinLengthExceedsLength = errors.New("config: min_length must be <= length")

// Operations lists the operation names Config.Operation accepts.
var Operations = []string{
	"move_sum", "move_mean", "move_var", "move_stdev", "move_skew", "move_kurtosis",
	"move_min", "move_max", "move_median", "move_rank",
	"agg_sum", "agg_mean", "agg_var", "agg_stdev", "agg_skew", "agg_kurtosis",
	"agg_min", "agg_max", "agg_median", "agg_rank",
}

// Config is the run configuration loaded from a YAML file by rustatsctl.
type Config struct {
	Operation string `yaml:"operation"`
	Length    int    `yaml:"length"`
	MinLength int    `yaml:"min_length"`
	Parallel  bool   `yaml:"parallel"`
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
}

// IsMoving reports whether Operation is a move_* (as opposed to agg_*)
// operation, the only family that consults Length/MinLength.
func (c Config) IsMoving() bool {
	return len(c.Operation) >= 5 && c.Operation[:5] == "move_"
}

// Load reads and parses a YAML config file, then validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load(%s): %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config.Load(%s): %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config.Load(%s): %w", path, err)
	}
	return c, nil
}

// Validate rejects a shape/parameter error before any column work
// begins, mirroring the kernel's own error-kind-1 contract.
func (c Config) Validate() error {
	known := false
	for _, name := range Operations {
		if c.Operation == name {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%q: %w", c.Operation, ErrUnknownOperation)
	}
	if c.IsMoving() {
		if c.Length <= 0 {
			return ErrZeroLength
		}
		if c.MinLength <= 0 {
			return ErrZeroMinLength
		}
		if c.MinLength > c.Length {
			return ErrMinLengthExceedsLength
		}
	}
	return nil
}
