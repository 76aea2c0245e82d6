// Package config loads application configuration and initializes logging.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog" mapstructure:"catalog"`
	Scoring ScoringConfig `yaml:"scoring" mapstructure:"scoring"`
	Chat    ChatConfig    `yaml:"chat" mapstructure:"chat"`
	Batch   BatchConfig   `yaml:"batch" mapstructure:"batch"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// CatalogConfig points at the reference data set.
type CatalogConfig struct {
	// Path is a YAML catalog overriding the built-in reference set when set.
	Path string `yaml:"path" mapstructure:"path"`
}

// ScoringConfig holds the risk-engine constants. Defaults reproduce the
// reference methodology; they are configurable so product review can adjust
// them without code changes.
type ScoringConfig struct {
	SectorWeight       float64 `yaml:"sector_weight" mapstructure:"sector_weight"`
	CountryWeight      float64 `yaml:"country_weight" mapstructure:"country_weight"`
	GeneralClauseFloor float64 `yaml:"general_clause_floor" mapstructure:"general_clause_floor"`
	// PercentTolerance is the accepted deviation of a revenue decomposition
	// from 100% (1 accepts 99-101).
	PercentTolerance float64 `yaml:"percent_tolerance" mapstructure:"percent_tolerance"`
}

// ChatConfig configures the copilot auto-reply.
type ChatConfig struct {
	ReplyDelayMillis int `yaml:"reply_delay_millis" mapstructure:"reply_delay_millis"`
}

// BatchConfig configures concurrent batch assessment.
type BatchConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" mapstructure:"max_concurrent"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	// RateLimit is requests per second per server; RateBurst the burst size.
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
	RateBurst int     `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SCREENING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("scoring.sector_weight", 0.6)
	v.SetDefault("scoring.country_weight", 0.4)
	v.SetDefault("scoring.general_clause_floor", 3.5)
	v.SetDefault("scoring.percent_tolerance", 1.0)
	v.SetDefault("chat.reply_delay_millis", 1000)
	v.SetDefault("batch.max_concurrent", 4)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.rate_limit", 20.0)
	v.SetDefault("server.rate_burst", 40)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the scoring and server knobs.
func (c *Config) Validate() error {
	var errs []string
	if c.Scoring.SectorWeight < 0 || c.Scoring.CountryWeight < 0 {
		errs = append(errs, "scoring weights must be >= 0")
	}
	if sum := c.Scoring.SectorWeight + c.Scoring.CountryWeight; sum < 0.999 || sum > 1.001 {
		errs = append(errs, "scoring weights must sum to 1")
	}
	if c.Scoring.GeneralClauseFloor < 1 || c.Scoring.GeneralClauseFloor > 5 {
		errs = append(errs, "general_clause_floor must be within 1-5")
	}
	if c.Scoring.PercentTolerance < 0 {
		errs = append(errs, "percent_tolerance must be >= 0")
	}
	if c.Chat.ReplyDelayMillis < 0 {
		errs = append(errs, "reply_delay_millis must be >= 0")
	}
	if c.Batch.MaxConcurrent < 1 {
		errs = append(errs, "batch max_concurrent must be >= 1")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, "server port out of range")
	}
	if len(errs) > 0 {
		return eris.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
