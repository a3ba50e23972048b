// Package config loads emberctl configuration from file, environment
// and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all emberctl settings.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	NATS     NATSConfig     `mapstructure:"nats"`
	Sample   SampleConfig   `mapstructure:"sample"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DatabaseConfig holds the data store location. URL accepts a Postgres
// connection string, or "memory://" for an ephemeral in-memory store.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// NATSConfig holds message bus settings. Publication of created events
// is skipped entirely when Enabled is false.
type NATSConfig struct {
	URL           string        `mapstructure:"url"`
	Enabled       bool          `mapstructure:"enabled"`
	MaxReconnects int           `mapstructure:"max_reconnects"`
	ReconnectWait time.Duration `mapstructure:"reconnect_wait"`
}

// SampleConfig holds defaults stamped onto generated sample events.
type SampleConfig struct {
	Environment string `mapstructure:"environment"`
	Release     string `mapstructure:"release"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from cfgFile if given, otherwise from
// $EMBERWATCH_CONFIG_DIR/config.yaml (default ~/.emberwatch), with
// EMBER_* environment variables taking precedence.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if cfgFile == "" {
		configDir := os.Getenv("EMBERWATCH_CONFIG_DIR")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to determine home directory: %w", err)
			}
			configDir = filepath.Join(home, ".emberwatch")
		}
		cfgFile = filepath.Join(configDir, "config.yaml")
	}

	v.SetConfigFile(cfgFile)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("EMBER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Viper needs explicit bindings for nested keys read from env only.
	_ = v.BindEnv("database.url", "EMBER_DATABASE_URL")
	_ = v.BindEnv("nats.url", "EMBER_NATS_URL")
	_ = v.BindEnv("nats.enabled", "EMBER_NATS_ENABLED")
	_ = v.BindEnv("sample.environment", "EMBER_SAMPLE_ENVIRONMENT")
	_ = v.BindEnv("sample.release", "EMBER_SAMPLE_RELEASE")
	_ = v.BindEnv("logging.level", "EMBER_LOGGING_LEVEL")
	_ = v.BindEnv("logging.format", "EMBER_LOGGING_FORMAT")

	// Config file is optional.
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to build default config: %v", err))
	}
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.url", "postgres://emberwatch@localhost:5432/emberwatch?sslmode=disable")
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("nats.enabled", false)
	v.SetDefault("nats.max_reconnects", 3)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("sample.environment", "production")
	v.SetDefault("sample.release", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}
