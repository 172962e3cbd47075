// Package config loads runtime settings from an optional file and
// WORKFORCE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/whiteelite/workforce/internal/logging"
)

const EnvPrefix = "WORKFORCE"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Journal JournalConfig `mapstructure:"journal"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type JournalConfig struct {
	Topic    string `mapstructure:"topic"`
	PageSize int64  `mapstructure:"pageSize"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatConsole)
	v.SetDefault("journal.topic", "workforce.lifecycle")
	v.SetDefault("journal.pageSize", 50)
}

// Load reads path when non-empty, then applies environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Journal.Topic == "" {
		return fmt.Errorf("%w: journal topic is required", ErrInvalidConfig)
	}
	if c.Journal.PageSize <= 0 {
		return fmt.Errorf("%w: journal page size must be > 0, got %d", ErrInvalidConfig, c.Journal.PageSize)
	}
	return nil
}
