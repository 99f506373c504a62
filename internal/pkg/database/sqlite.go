package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// NewSQLiteDB opens (and migrates) an sqlite database through sqlx.
// path may be ":memory:" for a throwaway database.
func NewSQLiteDB(path string) (*sqlx.DB, error) {
	dsn := path
	if path != ":memory:" && !strings.Contains(path, "?") {
		dsn = path + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
	}

	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// sqlite allows a single writer; one connection also keeps an in-memory db alive.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply sqlite schema: %w", err)
	}

	return db, nil
}
