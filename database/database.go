// Package database is the local storage backend: a single SQLite file
// accessed through sqlx.
package database

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Open connects to the SQLite file at path and applies the schema.
// Foreign keys are switched on for every connection so that deleting a
// category removes its products.
func Open(path string) (*sqlx.DB, error) {
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := InitDatabase(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// InitDatabase applies schema.sql. Every statement is idempotent.
func InitDatabase(db *sqlx.DB) error {
	log.Println("Applying database schema...")
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	log.Println("Schema applied successfully.")
	return nil
}
