package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/achuth-0908/scgateway/internal/sqlite"
)

// Stage records where an operation failed.
type Stage string

const (
	StageConnect   Stage = "connect"
	StageStatement Stage = "statement"
)

// DatabaseError is the single error type returned by gateway operations.
// Connection and statement failures are reported the same way; Stage only
// says which one happened.
type DatabaseError struct {
	Op    string
	Stage Stage
	Err   error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Stage, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// IsConnectError reports whether err is a DatabaseError raised while
// acquiring a handle.
func IsConnectError(err error) bool {
	var dbErr *DatabaseError
	return errors.As(err, &dbErr) && dbErr.Stage == StageConnect
}

// IsUniqueViolation reports whether err wraps a duplicate key error from
// either supported driver.
func IsUniqueViolation(err error) bool {
	if sqlite.IsUniqueConstraintError(err) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
