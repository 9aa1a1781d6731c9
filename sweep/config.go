// SPDX-License-Identifier: MIT
// Package: sweep
//
// config.go: sweep configuration, defaults and YAML loading.

package sweep

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrBadConfig is matched by every configuration validation failure.
var ErrBadConfig = errors.New("sweep: invalid config")

// Deterministic defaults (named, no magic numbers).
const (
	DefaultMinN = 2
	DefaultMaxN = 10
	minAllowedN = 2
)

// Config selects the range of the sweep and its execution policy.
type Config struct {
	MinN         int  `yaml:"min_n"`         // smallest matrix size (≥ 2)
	MaxN         int  `yaml:"max_n"`         // largest matrix size (≥ MinN)
	Workers      int  `yaml:"workers"`       // concurrent (n, r) jobs (≥ 1)
	FailFast     bool `yaml:"fail_fast"`     // cancel the run on the first failure
	TraceSplices bool `yaml:"trace_splices"` // log every emitted entry at debug level
}

// DefaultConfig returns the documented defaults; Workers follows GOMAXPROCS.
func DefaultConfig() Config {
	return Config{
		MinN:     DefaultMinN,
		MaxN:     DefaultMaxN,
		Workers:  runtime.GOMAXPROCS(0),
		FailFast: true,
	}
}

// Validate checks the config invariants.
func (c Config) Validate() error {
	switch {
	case c.MinN < minAllowedN:
		return fmt.Errorf("min_n=%d < %d: %w", c.MinN, minAllowedN, ErrBadConfig)
	case c.MaxN < c.MinN:
		return fmt.Errorf("max_n=%d < min_n=%d: %w", c.MaxN, c.MinN, ErrBadConfig)
	case c.Workers < 1:
		return fmt.Errorf("workers=%d < 1: %w", c.Workers, ErrBadConfig)
	}

	return nil
}

// LoadConfig overlays the YAML file at path onto DefaultConfig and validates
// the result. Unknown keys are rejected; an empty file keeps the defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("sweep: open config: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("sweep: decode %s: %w: %w", path, ErrBadConfig, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
