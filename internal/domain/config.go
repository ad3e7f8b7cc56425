package domain

import (
	"fmt"
	"time"
)

const (
	// DefaultCheckTimeout bounds a single check when no timeout is configured.
	DefaultCheckTimeout = 30 * time.Second
	// MaxCheckTimeout is the hard upper bound for a per-check timeout.
	MaxCheckTimeout = 30 * time.Second
	// DefaultWorkers is the worker-pool size when none is configured.
	DefaultWorkers = 4
)

// RunConfig holds per-run settings loaded from .artcheck.yaml or flags.
type RunConfig struct {
	StrictMode    bool              `yaml:"strict_mode"    json:"strict_mode"`
	RuleFilter    []string          `yaml:"rule_filter"    json:"rule_filter,omitempty"`
	CheckTimeout  time.Duration     `yaml:"check_timeout"  json:"check_timeout,omitempty"`
	ToolOverrides map[string]string `yaml:"tool_overrides" json:"tool_overrides,omitempty"`
	Workers       int               `yaml:"workers"        json:"workers,omitempty"`
	Rollup        RollupPolicy      `yaml:"rollup"         json:"rollup"`
}

// DefaultRunConfig returns a config with stock timeouts, pool size, and
// rollup penalties.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		CheckTimeout: DefaultCheckTimeout,
		Workers:      DefaultWorkers,
		Rollup:       DefaultRollupPolicy(),
	}
}

// Validate checks the config for invalid values and returns a descriptive
// error.
func (c RunConfig) Validate() error {
	if c.CheckTimeout < 0 {
		return fmt.Errorf("check_timeout must not be negative (got %s)", c.CheckTimeout)
	}
	if c.CheckTimeout > MaxCheckTimeout {
		return fmt.Errorf("check_timeout %s exceeds maximum %s", c.CheckTimeout, MaxCheckTimeout)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative (got %d)", c.Workers)
	}
	for tool, binary := range c.ToolOverrides {
		if binary == "" {
			return fmt.Errorf("tool_overrides[%q] must not be empty", tool)
		}
	}
	return c.Rollup.Validate()
}

// Normalized returns a copy with zero values replaced by defaults.
func (c RunConfig) Normalized() RunConfig {
	out := c
	if out.CheckTimeout == 0 {
		out.CheckTimeout = DefaultCheckTimeout
	}
	if out.Workers == 0 {
		out.Workers = DefaultWorkers
	}
	if out.Rollup == (RollupPolicy{}) {
		out.Rollup = DefaultRollupPolicy()
	}
	return out
}

// Binary resolves the binary name for a logical tool, honoring overrides.
func (c RunConfig) Binary(tool string) string {
	if b, ok := c.ToolOverrides[tool]; ok {
		return b
	}
	return tool
}
