// Package mysql opens a MySQL-backed student store.
//
// The students table is expected to exist already; this package never
// creates or migrates schema.
package mysql

import (
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"

	"github.com/aanand-mishra/student-db-manager/internal/config"
	"github.com/aanand-mishra/student-db-manager/internal/storage/sqlstore"
)

// connMaxLifetime keeps pooled connections younger than MySQL's default
// wait_timeout so the server never closes one underneath a query.
const connMaxLifetime = 3 * time.Minute

// DSN builds the driver connection string from the database settings.
// Empty credentials are passed through as-is.
func DSN(cfg config.Database) string {
	mc := mysqldriver.NewConfig()
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.DBName = cfg.Name
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	return mc.FormatDSN()
}

// New returns a store over a bounded connection pool. No connection is
// made here: a wrong host or missing credentials surface as an error on
// the first operation, which the window reports like any other failure.
func New(cfg config.Database) (*sqlstore.Store, error) {
	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("mysql.New: open db: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxOpenConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	return sqlstore.New(db), nil
}
