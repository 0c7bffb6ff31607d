package database

import (
	"fmt"
	"net/url"
	"strings"
)

// dataSourceName turns the configured credentials and address into the
// connection string the driver expects.
func dataSourceName(c Config) (string, error) {
	switch c.Driver {
	case DriverSQLite:
		if strings.Contains(c.Address, "?") {
			return c.Address, nil
		}
		// mode=rw refuses to create a missing file; go-sqlite3 only passes
		// it through for file: URIs.
		dsn := c.Address
		if !strings.HasPrefix(dsn, "file:") {
			dsn = "file:" + dsn
		}
		return dsn + "?_busy_timeout=5000&mode=rw", nil

	case DriverPostgres:
		return postgresURL(c)

	default:
		return "", fmt.Errorf("unsupported driver %q", c.Driver)
	}
}

// postgresURL accepts either a full postgres:// URL or a host:port/dbname
// address and returns a URL carrying the configured credentials.
func postgresURL(c Config) (string, error) {
	addr := c.Address
	if !strings.HasPrefix(addr, "postgres://") && !strings.HasPrefix(addr, "postgresql://") {
		addr = "postgres://" + addr
	}

	u, err := url.Parse(addr)
	if err != nil {
		return "", fmt.Errorf("parse address: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("parse address: missing host in %q", c.Address)
	}

	if c.User != "" {
		if c.Password != "" {
			u.User = url.UserPassword(c.User, c.Password)
		} else {
			u.User = url.User(c.User)
		}
	}
	return u.String(), nil
}
