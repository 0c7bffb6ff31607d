package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Query runs one SELECT inside a scoped handle and scans every row into T.
// An empty result is an empty, non-nil slice.
func Query[T any](ctx context.Context, g *Gateway, op, query string, args ...any) ([]T, error) {
	out := []T{}
	err := g.WithHandle(ctx, op, func(h *Handle) error {
		return sqlx.SelectContext(ctx, h.Queryer(), &out, h.Rebind(query), args...)
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Exec runs one statement in its own transaction inside a scoped handle and
// commits it.
func Exec(ctx context.Context, g *Gateway, op, query string, args ...any) error {
	return g.WithHandle(ctx, op, func(h *Handle) error {
		tx, err := h.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, h.Rebind(query), args...); err != nil {
			tx.Rollback()
			return err
		}
		return tx.Commit()
	})
}
