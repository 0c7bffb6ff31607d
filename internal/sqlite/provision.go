package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
)

// FilePath strips query parameters from a go-sqlite3 address.
func FilePath(address string) string {
	path := strings.TrimPrefix(address, "file:")
	if i := strings.Index(path, "?"); i != -1 {
		path = path[:i]
	}
	return path
}

// Provision applies the schema to the SQLite file at address, creating the
// file when needed. It reports whether the file was new, and calls seed on
// new files only.
func Provision(address string, seed func(*sql.DB) error) (created bool, err error) {
	if _, statErr := os.Stat(FilePath(address)); errors.Is(statErr, os.ErrNotExist) {
		created = true
	}

	db, err := sql.Open("sqlite3", address)
	if err != nil {
		return created, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err := RunMigrations(db); err != nil {
		return created, err
	}

	if created && seed != nil {
		if err := seed(db); err != nil {
			return created, fmt.Errorf("seed: %w", err)
		}
	}
	return created, nil
}
