package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/achuth-0908/scgateway/internal/database"
)

// Config holds all configuration values
type Config struct {
	Addr         string        `yaml:"addr"`
	APIKey       string        `yaml:"api_key"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`

	Database database.Config `yaml:"database"`
	Log      Log             `yaml:"log"`

	DemoMode   bool // load sample data on new database (set via -demo flag)
	InitSchema bool // provision the SQLite schema on startup (set via -init-schema flag)
}

// Log configures the diagnostic sink.
type Log struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns the configuration used when no file or env vars are set.
func Default() *Config {
	return &Config{
		Addr:         ":8080",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		Database:     database.DefaultConfig(),
		Log: Log{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 5,
			MaxAgeDays: 30,
			Compress:   true,
		},
	}
}

// Load loads configuration from YAML file and overrides with env vars if present.
// The database section is overridden by DB_* variables (DB_DRIVER, DB_USER,
// DB_PASSWORD, DB_ADDRESS, DB_POOLED, ...).
func Load(path string) (*Config, error) {
	cfg := Default()

	// Load from YAML if file exists
	if f, err := os.Open(path); err == nil {
		defer f.Close()
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	// Override with environment variables
	if err := envconfig.Process("DB", &cfg.Database); err != nil {
		return nil, fmt.Errorf("database env: %w", err)
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	if v := os.Getenv("API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
