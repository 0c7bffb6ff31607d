// Package database is the single entry point to the supply chain store.
//
// Every operation acquires a handle, runs one statement and releases the
// handle on every exit path. By default each handle is a fresh connection
// that is closed on release; with Config.Pooled the gateway keeps one pool
// and a handle is a connection borrowed from it. Callers see the same
// contract either way.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

type Gateway struct {
	cfg     Config
	dsn     string
	log     zerolog.Logger
	metrics *Metrics
	pool    *sqlx.DB
}

type Option func(*Gateway)

// WithLogger sets the diagnostic sink. Defaults to the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Gateway) { g.log = l }
}

// WithMetrics records every operation in m.
func WithMetrics(m *Metrics) Option {
	return func(g *Gateway) { g.metrics = m }
}

// New builds a gateway from cfg. It does not dial the store; connection
// problems surface from the first operation.
func New(cfg Config, opts ...Option) (*Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dsn, err := dataSourceName(cfg)
	if err != nil {
		return nil, fmt.Errorf("database config: %w", err)
	}

	g := &Gateway{
		cfg: cfg,
		dsn: dsn,
		log: log.Logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With().Str("component", "gateway").Str("driver", cfg.Driver).Logger()

	if cfg.Pooled {
		pool, err := sqlx.Open(cfg.Driver, dsn)
		if err != nil {
			return nil, fmt.Errorf("open pool: %w", err)
		}
		if cfg.MaxOpenConns > 0 {
			pool.SetMaxOpenConns(cfg.MaxOpenConns)
			pool.SetMaxIdleConns(cfg.MaxOpenConns)
		}
		pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		g.pool = pool
	}

	return g, nil
}

// Driver returns the configured driver name.
func (g *Gateway) Driver() string {
	return g.cfg.Driver
}

// Pooled reports whether handles are borrowed from a shared pool.
func (g *Gateway) Pooled() bool {
	return g.pool != nil
}

// Close releases the shared pool. It is a no-op in per-call mode.
func (g *Gateway) Close() error {
	if g.pool == nil {
		return nil
	}
	return g.pool.Close()
}

// Handle is a live connection owned by exactly one operation.
type Handle struct {
	driver   string
	db       *sqlx.DB
	conn     *sqlx.Conn
	released bool
}

// Acquire returns a live handle. The caller must Release it.
func (g *Gateway) Acquire(ctx context.Context) (*Handle, error) {
	return g.acquire(ctx, "acquire")
}

func (g *Gateway) acquire(ctx context.Context, op string) (*Handle, error) {
	if g.cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.ConnectTimeout)
		defer cancel()
	}

	h, err := g.open(ctx)
	if err != nil {
		return nil, g.fail(op, StageConnect, err)
	}
	return h, nil
}

func (g *Gateway) open(ctx context.Context) (*Handle, error) {
	if g.pool != nil {
		conn, err := g.pool.Connx(ctx)
		if err != nil {
			return nil, err
		}
		if err := conn.PingContext(ctx); err != nil {
			conn.Close()
			return nil, err
		}
		return &Handle{driver: g.cfg.Driver, conn: conn}, nil
	}

	db, err := sqlx.Open(g.cfg.Driver, g.dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return &Handle{driver: g.cfg.Driver, db: db}, nil
}

// Release closes a per-call connection or returns a pooled one. It is safe
// to call on a nil handle and more than once.
func (h *Handle) Release() error {
	if h == nil || h.released {
		return nil
	}
	h.released = true
	if h.conn != nil {
		return h.conn.Close()
	}
	return h.db.Close()
}

// Rebind converts ? placeholders to the driver's bind style.
func (h *Handle) Rebind(query string) string {
	return sqlx.Rebind(sqlx.BindType(h.driver), query)
}

// Queryer exposes the handle for sqlx.SelectContext and friends.
func (h *Handle) Queryer() sqlx.QueryerContext {
	if h.conn != nil {
		return h.conn
	}
	return h.db
}

func (h *Handle) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if h.conn != nil {
		return h.conn.ExecContext(ctx, query, args...)
	}
	return h.db.ExecContext(ctx, query, args...)
}

func (h *Handle) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	if h.conn != nil {
		return h.conn.BeginTxx(ctx, opts)
	}
	return h.db.BeginTxx(ctx, opts)
}

// WithHandle acquires a handle, runs fn and releases the handle whatever
// fn does. Errors from fn are reported as statement failures.
func (g *Gateway) WithHandle(ctx context.Context, op string, fn func(*Handle) error) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			g.metrics.observe(op, start, fmt.Errorf("panic: %v", r))
			panic(r)
		}
		g.metrics.observe(op, start, err)
	}()

	h, err := g.acquire(ctx, op)
	if err != nil {
		return err
	}
	defer func() {
		if relErr := h.Release(); relErr != nil {
			g.log.Warn().Err(relErr).Str("op", op).Msg("release handle")
		}
	}()

	if err := fn(h); err != nil {
		return g.fail(op, StageStatement, err)
	}

	g.log.Debug().Str("op", op).Dur("elapsed", time.Since(start)).Msg("database operation")
	return nil
}

// Ping checks that a handle can be acquired.
func (g *Gateway) Ping(ctx context.Context) error {
	return g.WithHandle(ctx, "ping", func(*Handle) error { return nil })
}

// fail logs err to the diagnostic sink and wraps it as a DatabaseError.
func (g *Gateway) fail(op string, stage Stage, err error) error {
	var dbErr *DatabaseError
	if !errors.As(err, &dbErr) {
		dbErr = &DatabaseError{Op: op, Stage: stage, Err: err}
	}
	g.log.Error().Err(dbErr.Err).Str("op", op).Str("stage", string(dbErr.Stage)).Msg("database operation failed")
	return dbErr
}
