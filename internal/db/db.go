package db

import (
	"database/sql"
	"fmt"

	"wildfires-dashboard/internal/config"

	_ "github.com/mattn/go-sqlite3"
)

// The record index lives entirely in memory: cache=shared keeps the same
// database visible across pooled connections, and nothing is ever written
// after the startup bulk load.
const memoryDSN = "file:wildfires?mode=memory&cache=shared"

func Open(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns >= 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// Validate connectivity early
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return db, nil
}

func Close(db *sql.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}
