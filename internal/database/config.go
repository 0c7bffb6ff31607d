package database

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Supported driver names. They match the names registered with database/sql.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// Config describes how the gateway reaches the store. It is built once at
// startup and never mutated afterwards.
type Config struct {
	Driver   string `yaml:"driver" envconfig:"DRIVER" validate:"required,oneof=sqlite3 pgx"`
	User     string `yaml:"user" envconfig:"USER" validate:"required_if=Driver pgx"`
	Password string `yaml:"password" envconfig:"PASSWORD"`
	Address  string `yaml:"address" envconfig:"ADDRESS" validate:"required"`

	// Pooled keeps one shared pool for the gateway's lifetime instead of
	// opening and closing a connection on every call.
	Pooled          bool          `yaml:"pooled" envconfig:"POOLED"`
	MaxOpenConns    int           `yaml:"max_open_conns" envconfig:"MAX_OPEN_CONNS" validate:"gte=0"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" envconfig:"CONN_MAX_LIFETIME" validate:"gte=0"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" envconfig:"CONNECT_TIMEOUT" validate:"gte=0"`
}

// DefaultConfig returns the settings used when nothing else is configured:
// a local SQLite file opened per call.
func DefaultConfig() Config {
	return Config{
		Driver:          DriverSQLite,
		Address:         "./supplychain.db",
		MaxOpenConns:    10,
		ConnMaxLifetime: 30 * time.Minute,
		ConnectTimeout:  5 * time.Second,
	}
}

var validate = validator.New()

// Validate checks the config for missing or unsupported values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("database config: %w", err)
	}
	return nil
}

// String renders the config without the password.
func (c Config) String() string {
	mode := "per-call"
	if c.Pooled {
		mode = "pooled"
	}
	return fmt.Sprintf("driver=%s address=%s user=%s mode=%s", c.Driver, c.Address, c.User, mode)
}
