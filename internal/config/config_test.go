package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.InDelta(t, 0.6, cfg.Scoring.SectorWeight, 0.0001)
	assert.InDelta(t, 0.4, cfg.Scoring.CountryWeight, 0.0001)
	assert.InDelta(t, 3.5, cfg.Scoring.GeneralClauseFloor, 0.0001)
	assert.InDelta(t, 1.0, cfg.Scoring.PercentTolerance, 0.0001)
	assert.Equal(t, 1000, cfg.Chat.ReplyDelayMillis)
	assert.Equal(t, 4, cfg.Batch.MaxConcurrent)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SCREENING_SCORING_SECTOR_WEIGHT", "0.5")
	t.Setenv("SCREENING_SCORING_COUNTRY_WEIGHT", "0.5")
	t.Setenv("SCREENING_SERVER_PORT", "9090")
	t.Setenv("SCREENING_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.InDelta(t, 0.5, cfg.Scoring.SectorWeight, 0.0001)
	assert.InDelta(t, 0.5, cfg.Scoring.CountryWeight, 0.0001)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"weights must sum to 1", func(c *Config) { c.Scoring.SectorWeight = 0.9 }, "sum to 1"},
		{"negative weight", func(c *Config) {
			c.Scoring.SectorWeight = -0.2
			c.Scoring.CountryWeight = 1.2
		}, ">= 0"},
		{"floor out of range", func(c *Config) { c.Scoring.GeneralClauseFloor = 0 }, "general_clause_floor"},
		{"negative tolerance", func(c *Config) { c.Scoring.PercentTolerance = -1 }, "percent_tolerance"},
		{"negative delay", func(c *Config) { c.Chat.ReplyDelayMillis = -1 }, "reply_delay_millis"},
		{"zero concurrency", func(c *Config) { c.Batch.MaxConcurrent = 0 }, "max_concurrent"},
		{"port out of range", func(c *Config) { c.Server.Port = 0 }, "port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
	assert.Error(t, InitLogger(LogConfig{Level: "nope", Format: "json"}))
}
