package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/achuth-0908/scgateway/internal/database"
	"github.com/achuth-0908/scgateway/internal/sqlite"
)

// NewTestGateway returns a per-call gateway over a fresh SQLite file with
// the schema applied.
func NewTestGateway(t *testing.T, opts ...database.Option) *database.Gateway {
	t.Helper()
	return NewTestGatewayAt(t, filepath.Join(t.TempDir(), "test.db"), false, opts...)
}

// NewPooledTestGateway is NewTestGateway with a shared connection pool.
func NewPooledTestGateway(t *testing.T, opts ...database.Option) *database.Gateway {
	t.Helper()
	return NewTestGatewayAt(t, filepath.Join(t.TempDir(), "test.db"), true, opts...)
}

// NewPooledTestGatewayAt is NewTestGatewayAt in pooled mode.
func NewPooledTestGatewayAt(t *testing.T, dbPath string, opts ...database.Option) *database.Gateway {
	t.Helper()
	return NewTestGatewayAt(t, dbPath, true, opts...)
}

// NewTestGatewayAt provisions the schema at dbPath and returns a gateway
// over it.
func NewTestGatewayAt(t *testing.T, dbPath string, pooled bool, opts ...database.Option) *database.Gateway {
	t.Helper()

	if _, err := sqlite.Provision(dbPath, nil); err != nil {
		t.Fatalf("provision: %v", err)
	}

	cfg := database.DefaultConfig()
	cfg.Address = dbPath
	cfg.Pooled = pooled

	return newGateway(t, cfg, opts...)
}

// NewUnreachableGateway returns a gateway whose store cannot be opened:
// its SQLite file lives in a directory that does not exist.
func NewUnreachableGateway(t *testing.T, pooled bool, opts ...database.Option) *database.Gateway {
	t.Helper()

	cfg := database.DefaultConfig()
	cfg.Address = filepath.Join(t.TempDir(), "missing", "test.db")
	cfg.Pooled = pooled

	return newGateway(t, cfg, opts...)
}

func newGateway(t *testing.T, cfg database.Config, opts ...database.Option) *database.Gateway {
	t.Helper()

	opts = append([]database.Option{database.WithLogger(zerolog.Nop())}, opts...)
	g, err := database.New(cfg, opts...)
	if err != nil {
		t.Fatalf("new gateway: %v", err)
	}
	t.Cleanup(func() {
		g.Close()
	})
	return g
}

// Exec runs fixture statements directly against the SQLite file at dbPath,
// bypassing the gateway. Used to fill the read-only report tables.
func Exec(t *testing.T, dbPath string, statements ...string) {
	t.Helper()

	db, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
}

// Str returns a pointer to s, for filling nullable text fields.
func Str(s string) *string {
	return &s
}

// Count returns the number of rows in table.
func Count(t *testing.T, dbPath, table string) int {
	t.Helper()

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
