package db

import (
	"database/sql"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps sqlx.DB and rebinds queries so the same `?` placeholder SQL
// runs against both the sqlite and postgres drivers.
type DB struct {
	*sqlx.DB
}

// Open connects to the database named by dsn. A postgres:// DSN uses the
// pgx driver; anything else is treated as a sqlite file path (or :memory:).
func Open(dsn string) (*DB, error) {
	driver := "sqlite"
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		driver = "pgx"
	}
	conn, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == "pgx" {
		conn.SetMaxOpenConns(20)
		conn.SetMaxIdleConns(5)
		conn.SetConnMaxLifetime(30 * time.Minute)
	} else {
		// sqlite serializes writes anyway; a single pooled connection also
		// keeps :memory: databases coherent across goroutines.
		conn.SetMaxOpenConns(1)
	}
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return &DB{DB: conn}, nil
}

func (d *DB) Get(dest interface{}, query string, args ...interface{}) error {
	return d.DB.Get(dest, d.Rebind(query), args...)
}

func (d *DB) Select(dest interface{}, query string, args ...interface{}) error {
	return d.DB.Select(dest, d.Rebind(query), args...)
}

func (d *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	return d.DB.Exec(d.Rebind(query), args...)
}
