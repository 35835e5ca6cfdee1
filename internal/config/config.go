// Package config loads probpick settings from defaults, an optional config
// file, PROBPICK_* environment variables and command-line overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads.
const EnvPrefix = "PROBPICK"

// DefaultThreshold is the mastery cutoff used when neither configuration nor
// the catalog provides one.
const DefaultThreshold = 0.95

// Config holds all application configuration. LogLevel is not validated
// here: an unknown level makes the logger warn and fall back to info.
type Config struct {
	// Threshold is nil when no source set it, letting the catalog's own
	// default apply.
	Threshold *float64 `mapstructure:"threshold" validate:"omitempty,gte=0,lte=1"`
	Catalog   string   `mapstructure:"catalog"`
	DB        string   `mapstructure:"db"`
	Record    bool     `mapstructure:"record"`
	LogLevel  string   `mapstructure:"log_level"`
	LogFormat string   `mapstructure:"log_format" validate:"required,oneof=text json"`
}

// keys lists every setting so each can be bound to its environment variable.
var keys = []string{"threshold", "catalog", "db", "record", "log_level", "log_format"}

// LoadOptions controls where Load reads from.
type LoadOptions struct {
	// ConfigFile is an optional YAML or JSON file.
	ConfigFile string
	// Overrides take precedence over every other source. Keys match the
	// mapstructure tags on Config.
	Overrides map[string]any
}

// Load builds a validated Config. Precedence, lowest first: defaults, config
// file, environment, overrides.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("record", false)
	v.SetDefault("catalog", "")
	v.SetDefault("db", "")

	v.SetEnvPrefix(EnvPrefix)
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", k, err)
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", opts.ConfigFile, err)
		}
	}

	for k, val := range opts.Overrides {
		v.Set(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// ResolveThreshold picks the effective threshold: configured value first,
// then the catalog's default, then DefaultThreshold.
func (c *Config) ResolveThreshold(catalogThreshold float64, catalogHasThreshold bool) float64 {
	switch {
	case c.Threshold != nil:
		return *c.Threshold
	case catalogHasThreshold:
		return catalogThreshold
	default:
		return DefaultThreshold
	}
}
