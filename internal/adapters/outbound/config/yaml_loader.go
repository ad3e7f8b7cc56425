package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/artcheck/artcheck/internal/domain"
)

const fileName = ".artcheck.yaml"

// duration wraps time.Duration to allow YAML unmarshalling from strings like
// "10s".
type duration struct {
	time.Duration
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("duration must be a string, got %s", value.ShortTag())
	}
	raw := strings.TrimSpace(value.Value)
	if raw == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	d.Duration = parsed
	return nil
}

// fileSchema is the on-disk shape of .artcheck.yaml.
type fileSchema struct {
	StrictMode    bool                 `yaml:"strict_mode"`
	RuleFilter    []string             `yaml:"rule_filter"`
	CheckTimeout  duration             `yaml:"check_timeout"`
	ToolOverrides map[string]string    `yaml:"tool_overrides"`
	Workers       int                  `yaml:"workers"`
	Rollup        *domain.RollupPolicy `yaml:"rollup"`
}

// YAMLLoader implements domain.ConfigLoader by reading .artcheck.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .artcheck.yaml from dir. Returns the default config if the file
// does not exist; a present-but-invalid file is an error, never silently
// ignored.
func (l *YAMLLoader) Load(dir string) (domain.RunConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultRunConfig(), nil
		}
		return domain.RunConfig{}, err
	}

	var raw fileSchema
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.RunConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	cfg := domain.RunConfig{
		StrictMode:    raw.StrictMode,
		RuleFilter:    raw.RuleFilter,
		CheckTimeout:  raw.CheckTimeout.Duration,
		ToolOverrides: raw.ToolOverrides,
		Workers:       raw.Workers,
	}
	if raw.Rollup != nil {
		cfg.Rollup = *raw.Rollup
	}

	cfg = cfg.Normalized()
	if err := cfg.Validate(); err != nil {
		return domain.RunConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
