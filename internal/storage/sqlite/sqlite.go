// Package sqlite opens a SQLite-backed student store.
//
// WHY SQLite?
// ───────────
// SQLite stores everything in a single file on disk. There is no
// network, no separate server process, and no credentials. It lets the
// application run without a MySQL server and backs the storage tests.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aanand-mishra/student-db-manager/internal/config"
	"github.com/aanand-mishra/student-db-manager/internal/storage/sqlstore"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// schema mirrors the MySQL students table. CREATE TABLE IF NOT EXISTS is
// idempotent, so it is safe to run on every startup.
const schema = `
	CREATE TABLE IF NOT EXISTS students (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT    NOT NULL,
		last_name  TEXT    NOT NULL,
		age        INTEGER NOT NULL,
		email      TEXT    NOT NULL
	)
`

// New opens the SQLite database at cfg.Path, creates the students table
// if it does not already exist, and returns a ready-to-use store.
func New(cfg config.Database) (*sqlstore.Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite.New: create directory: %w", err)
		}
	}

	// sql.Open does NOT connect yet; it only validates the driver name.
	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// SQLite allows a single writer at a time; concurrent inserts from
	// several background tasks would otherwise hit SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return sqlstore.New(db), nil
}
