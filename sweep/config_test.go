// SPDX-License-Identifier: MIT
// Package sweep_test contains tests for sweep configuration.
package sweep_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jordan/sweep"
)

// writeConfig stores body in a temp YAML file and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadConfig_Overlay(t *testing.T) {
	cfg, err := sweep.LoadConfig(writeConfig(t, "max_n: 7\nworkers: 2\ntrace_splices: true\n"))
	require.NoError(t, err)
	require.Equal(t, sweep.DefaultMinN, cfg.MinN) // untouched key keeps its default
	require.Equal(t, 7, cfg.MaxN)
	require.Equal(t, 2, cfg.Workers)
	require.True(t, cfg.FailFast)
	require.True(t, cfg.TraceSplices)
}

func TestLoadConfig_EmptyKeepsDefaults(t *testing.T) {
	cfg, err := sweep.LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, sweep.DefaultConfig(), cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := sweep.LoadConfig(writeConfig(t, "max_size: 7\n"))
	require.ErrorIs(t, err, sweep.ErrBadConfig) // unknown key

	_, err = sweep.LoadConfig(writeConfig(t, "min_n: 6\nmax_n: 4\n"))
	require.ErrorIs(t, err, sweep.ErrBadConfig)

	_, err = sweep.LoadConfig(writeConfig(t, "min_n: [1\n"))
	require.ErrorIs(t, err, sweep.ErrBadConfig)

	_, err = sweep.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*sweep.Config)
		ok   bool
	}{
		{"defaults", func(*sweep.Config) {}, true},
		{"min below 2", func(c *sweep.Config) { c.MinN = 1 }, false},
		{"max below min", func(c *sweep.Config) { c.MinN, c.MaxN = 5, 4 }, false},
		{"no workers", func(c *sweep.Config) { c.Workers = 0 }, false},
		{"single size", func(c *sweep.Config) { c.MinN, c.MaxN = 4, 4 }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := sweep.DefaultConfig()
			tc.mod(&cfg)
			err := cfg.Validate()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, sweep.ErrBadConfig)
			}
		})
	}
}
