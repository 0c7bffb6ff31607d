package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/GuiaBolso/darwin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// ApplicationID marks SQLite files provisioned by this package.
// "SCDB" in ASCII: S=0x53, C=0x43, D=0x44, B=0x42
const ApplicationID = 0x53434442

// ErrInvalidDatabase is returned when the file belongs to another application.
var ErrInvalidDatabase = errors.New("not a supply chain database")

// defineMigrations returns the schema the gateway expects, for the embedded
// SQLite backend only. Production stores own their schema.
// Comments must only appear after sql on a line (they are stripped before the checksum).
// *NEVER* change/remove a step once released! (darwin stores a checksum per step)
func defineMigrations() []darwin.Migration {
	m := []darwin.Migration{

		{Version: 1.00, Description: "Set application_id", Script: `
		PRAGMA application_id = 0x53434442;`},

		{Version: 1.01, Description: "Create Table 'supplier'", Script: `
		CREATE TABLE IF NOT EXISTS supplier (
			supplier_id INTEGER PRIMARY KEY,
			name VARCHAR(255),
			address VARCHAR(255),
			phone_no VARCHAR(50),
			email VARCHAR(255)
		);`},

		{Version: 1.02, Description: "Create Table 'supplier_products'", Script: `
		CREATE TABLE IF NOT EXISTS supplier_products (
			supplier_id INTEGER NOT NULL,
			products_supplied VARCHAR(255)
		);`},

		{Version: 1.03, Description: "Create Index 'idx_supplier_products_supplier_id'", Script: `
		CREATE INDEX IF NOT EXISTS idx_supplier_products_supplier_id ON supplier_products (supplier_id ASC);`},

		{Version: 1.04, Description: "Create Table 'manufacturer'", Script: `
		CREATE TABLE IF NOT EXISTS manufacturer (
			manufacturer_id INTEGER PRIMARY KEY,
			name VARCHAR(255),
			address VARCHAR(255),
			phone_no VARCHAR(50),
			email VARCHAR(255)
		);`},

		{Version: 1.05, Description: "Create Table 'customer'", Script: `
		CREATE TABLE IF NOT EXISTS customer (
			customer_id INTEGER PRIMARY KEY,
			name VARCHAR(255),
			address VARCHAR(255),
			phone_no VARCHAR(50),
			email VARCHAR(255)
		);`},

		{Version: 1.06, Description: "Create Table 'product'", Script: `
		CREATE TABLE IF NOT EXISTS product (
			product_id INTEGER PRIMARY KEY,
			name VARCHAR(255),
			category VARCHAR(100),
			price NUMERIC(10,2)
		);`},

		{Version: 1.07, Description: "Create Table 'inventory'", Script: `
		CREATE TABLE IF NOT EXISTS inventory (
			inventory_id INTEGER PRIMARY KEY,
			product_id INTEGER,
			quantity INTEGER NOT NULL DEFAULT 0
		);`},

		{Version: 1.08, Description: "Create Table 'shipment'", Script: `
		CREATE TABLE IF NOT EXISTS shipment (
			shipment_id INTEGER PRIMARY KEY,
			dispatch_date DATE,
			delivery_date DATE
		);`},

		{Version: 1.09, Description: "Create Table 'return_order'", Script: `
		CREATE TABLE IF NOT EXISTS return_order (
			return_id INTEGER PRIMARY KEY,
			status VARCHAR(50)
		);`},

		{Version: 1.10, Description: "Create Table 'purchase_order'", Script: `
		CREATE TABLE IF NOT EXISTS purchase_order (
			purchase_order_id INTEGER PRIMARY KEY,
			customer_id INTEGER NOT NULL
		);`},

		{Version: 1.11, Description: "Create Index 'idx_purchase_order_customer_id'", Script: `
		CREATE INDEX IF NOT EXISTS idx_purchase_order_customer_id ON purchase_order (customer_id ASC);`},
	}
	return m
}

// changes returns a user-friendly display of database version changes
func changes(v1, v2 float64) string {
	if v1 != v2 {
		return fmt.Sprintf("DB Version: %.2f (migrated from %.2f to %.2f)", v2, v1, v2)
	}
	return fmt.Sprintf("DB Version: %.2f", v1)
}

// currentVersion reads from migration table to get the latest version and number of steps applied
func currentVersion(db *sql.DB) (count int, ver float64, err error) {
	// might not have any migrations yet...
	s := `select count(*) as n from sqlite_master where tbl_name = 'darwin_migrations';`
	err = db.QueryRow(s).Scan(&count)
	if err != nil || count == 0 {
		return 0, 0, err
	}

	s = `select count(*) as n, max(version) as ver from darwin_migrations;`
	err = db.QueryRow(s).Scan(&count, &ver)
	return count, ver, err
}

// minifiedMigrations returns our migrations with minified scripts so comments or formatting changes
// will not generate a new checksum
func minifiedMigrations() []darwin.Migration {
	migrations := defineMigrations()
	for i := range migrations {
		migrations[i].Script = minify(migrations[i].Script)
	}
	return migrations
}

// minify simplifies the script to keep certain changes (spaces, tabs, case and comments) from
// creating a new checksum
func minify(script string) string {
	b := strings.Builder{}
	s := strings.ToLower(strings.ReplaceAll(script, "/*", "--"))
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		if i := strings.Index(line, "--"); i != -1 {
			line = line[0:i]
		}
		b.WriteString(strings.TrimSpace(line) + "\n")
	}
	result := strings.TrimSpace(strings.ReplaceAll(b.String(), "\t", " "))
	before := 0
	for len(result) != before {
		before = len(result)
		result = strings.ReplaceAll(result, "  ", " ")
	}
	return strings.TrimSpace(result)
}

// progress returns the steps attempted during this migration
func progress(ch <-chan darwin.MigrationInfo) string {
	var b strings.Builder

	for info := range ch {
		_, _ = fmt.Fprintf(&b, "v%.2f: \"%s\" (%s) Error: %v\n",
			info.Migration.Version, info.Migration.Description, info.Status.String(), info.Error)
	}
	return b.String()
}

// Schema returns the current sqlite definitions as a string for display (without comments)
func Schema() string {
	var b strings.Builder

	schema := defineMigrations()
	for _, m := range schema {
		_, _ = fmt.Fprintf(&b, "-- %s (%.2f)\n%s\n\n", m.Description, m.Version, m.Script)
	}
	return b.String()
}

// VerifyApplicationID checks that the database has our application_id.
// Returns ErrInvalidDatabase if the database belongs to a different application.
// Returns nil for empty databases (application_id = 0, no tables) or supply chain databases.
func VerifyApplicationID(db *sql.DB) error {
	var appID int
	if err := db.QueryRow("PRAGMA application_id;").Scan(&appID); err != nil {
		return fmt.Errorf("read application_id: %w", err)
	}

	// Accept our application ID
	if appID == ApplicationID {
		return nil
	}

	// Reject non-zero application IDs that aren't ours
	if appID != 0 {
		return fmt.Errorf("%w (application_id 0x%X)", ErrInvalidDatabase, appID)
	}

	// appID is 0 - only accept if database is empty (no user tables)
	var tableCount int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%'`).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("check tables: %w", err)
	}
	if tableCount > 0 {
		return fmt.Errorf("%w (has tables but no application_id)", ErrInvalidDatabase)
	}

	return nil
}

// RunMigrations provisions the schema on an already-open *sql.DB.
func RunMigrations(db *sql.DB) error {
	// Refuse to touch another application's file
	if err := VerifyApplicationID(db); err != nil {
		return err
	}

	count, v1, err := currentVersion(db)
	if err != nil {
		return err
	}

	migrations := minifiedMigrations()
	if count == len(migrations) && v1 == migrations[count-1].Version {
		log.Debug().Float64("version", v1).Msg("schema is current")
		return nil // already up to date
	}

	// setup for the migrations
	driver := darwin.NewGenericDriver(db, darwin.SqliteDialect{})
	infoChan := make(chan darwin.MigrationInfo, len(migrations))
	d := darwin.New(driver, migrations, infoChan)

	// perform the migrations
	var v2 float64
	if err := d.Migrate(); err != nil {
		close(infoChan)
		_, v2, _ = currentVersion(db)
		prog := progress(infoChan)
		log.Error().Err(err).Float64("from", v1).Float64("to", v2).Str("progress", prog).Msg("schema migration failed")
		return fmt.Errorf("migration error: %w\n%s", err, prog)
	}
	close(infoChan)

	_, v2, err = currentVersion(db)
	if err != nil {
		return err
	}

	log.Info().Msg(changes(v1, v2))
	return nil
}
