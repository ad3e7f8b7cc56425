package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/artcheck/artcheck/internal/domain"
)

func TestRunConfig_DefaultIsValid(t *testing.T) {
	assert.NoError(t, domain.DefaultRunConfig().Validate())
}

func TestRunConfig_NegativeTimeout(t *testing.T) {
	cfg := domain.DefaultRunConfig()
	cfg.CheckTimeout = -time.Second

	assert.Error(t, cfg.Validate())
}

func TestRunConfig_TimeoutAboveMaximum(t *testing.T) {
	cfg := domain.DefaultRunConfig()
	cfg.CheckTimeout = domain.MaxCheckTimeout + time.Second

	assert.Error(t, cfg.Validate())
}

func TestRunConfig_EmptyToolOverride(t *testing.T) {
	cfg := domain.DefaultRunConfig()
	cfg.ToolOverrides = map[string]string{"staticcheck": ""}

	assert.Error(t, cfg.Validate())
}

func TestRunConfig_NormalizedFillsDefaults(t *testing.T) {
	cfg := domain.RunConfig{}.Normalized()

	assert.Equal(t, domain.DefaultCheckTimeout, cfg.CheckTimeout)
	assert.Equal(t, domain.DefaultWorkers, cfg.Workers)
	assert.Equal(t, domain.DefaultRollupPolicy(), cfg.Rollup)
}

func TestRunConfig_BinaryHonorsOverride(t *testing.T) {
	cfg := domain.DefaultRunConfig()
	cfg.ToolOverrides = map[string]string{"staticcheck": "/opt/bin/staticcheck"}

	assert.Equal(t, "/opt/bin/staticcheck", cfg.Binary("staticcheck"))
	assert.Equal(t, "gosec", cfg.Binary("gosec"))
}
