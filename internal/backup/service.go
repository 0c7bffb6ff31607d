package backup

import (
	"bufio"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/achuth-0908/scgateway/internal/database"
	"github.com/achuth-0908/scgateway/internal/sqlite"
)

// ErrUnsupportedDriver is returned by NewService for stores other than SQLite.
var ErrUnsupportedDriver = errors.New("backup requires the sqlite3 driver")

// tables lists the supply chain tables in dump order.
var tables = []string{
	"supplier",
	"supplier_products",
	"manufacturer",
	"customer",
	"product",
	"inventory",
	"shipment",
	"return_order",
	"purchase_order",
}

// Service writes gzip-compressed SQL dumps of the embedded SQLite store.
type Service struct {
	g   *database.Gateway
	dir string
}

// NewService places backups in a "backups" directory next to the database
// file at address.
func NewService(g *database.Gateway, address string) (*Service, error) {
	if g.Driver() != database.DriverSQLite {
		return nil, ErrUnsupportedDriver
	}
	return &Service{
		g:   g,
		dir: filepath.Join(filepath.Dir(sqlite.FilePath(address)), "backups"),
	}, nil
}

// BackupResult contains information about a completed backup
type BackupResult struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Rows     int    `json:"rows"`
}

// CreateBackup dumps the schema and every row of the supply chain tables.
// Rows are read in one transaction so the dump is a consistent snapshot.
func (s *Service) CreateBackup(ctx context.Context) (*BackupResult, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup directory: %w", err)
	}

	filename := time.Now().Format("2006-01-02_15.04.05") + "_scdump.sql.gz"
	path := filepath.Join(s.dir, filename)

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create backup file: %w", err)
	}

	var rows int
	err = s.g.WithHandle(ctx, "backup", func(h *database.Handle) error {
		tx, err := h.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		gz := gzip.NewWriter(file)
		if rows, err = writeDump(ctx, gz, tx); err != nil {
			return err
		}
		return gz.Close()
	})
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close backup file: %w", closeErr)
	}
	if err != nil {
		os.Remove(path)
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat backup file: %w", err)
	}

	return &BackupResult{
		Filename: filename,
		Path:     path,
		Size:     info.Size(),
		Rows:     rows,
	}, nil
}

// writeDump writes a script that recreates the store when replayed into an
// empty SQLite file. It returns the number of rows written.
func writeDump(ctx context.Context, w io.Writer, q sqlx.QueryerContext) (int, error) {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "-- Supply Chain Database Backup\n-- Generated: %s\n", time.Now().UTC().Format(time.RFC3339))
	bw.WriteString("PRAGMA foreign_keys=OFF;\nBEGIN TRANSACTION;\n\n")
	bw.WriteString(sqlite.Schema())

	total := 0
	for _, table := range tables {
		n, err := dumpTable(ctx, bw, q, table)
		if err != nil {
			return total, fmt.Errorf("dump %s: %w", table, err)
		}
		total += n
	}

	bw.WriteString("COMMIT;\n")
	return total, bw.Flush()
}

func dumpTable(ctx context.Context, w *bufio.Writer, q sqlx.QueryerContext, table string) (int, error) {
	rows, err := q.QueryxContext(ctx, "SELECT * FROM "+table+" ORDER BY rowid")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return 0, err
	}
	prefix := "INSERT INTO " + table + " (" + strings.Join(columns, ", ") + ") VALUES ("

	n := 0
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return n, err
		}
		literals := make([]string, len(values))
		for i, v := range values {
			literals[i] = literal(v)
		}
		w.WriteString(prefix + strings.Join(literals, ", ") + ");\n")
		n++
	}
	if n > 0 {
		w.WriteString("\n")
	}
	return n, rows.Err()
}

// literal renders a scanned column value as SQLite source text.
func literal(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "1"
		}
		return "0"
	case time.Time:
		// DATE columns hold a bare date unless a time of day was stored
		if v.Equal(v.Truncate(24 * time.Hour)) {
			return quote(v.Format("2006-01-02"))
		}
		return quote(v.Format("2006-01-02 15:04:05"))
	case []byte:
		return quote(string(v))
	case string:
		return quote(v)
	default:
		return quote(fmt.Sprint(v))
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
