// Package database centralises sqlx connection helpers for the optional
// MySQL item source.  The default driver is go-sql-driver/mysql, which
// also works with MariaDB when configured for the MySQL wire protocol.
//
// Public entry points:
//
//	Open(dsn)                              – quick helper with small pool sizes.
//	OpenWithOptions(dsn, maxOpen, maxIdle) – fine-grained control.
//
// Both helpers Ping the database before returning so a build pass can fail
// fast instead of discovering a dead catalog source halfway through.
// Callers should Close() the returned *sqlx.DB when no longer needed.
package database

import (
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// Open returns a *sqlx.DB with defaults sized for a batch process: 4 max
// open, 2 idle, and a 30-minute connection lifetime.  A build pass runs a
// handful of sequential queries; it never needs a server-sized pool.
func Open(dsn string) (*sqlx.DB, error) {
	return OpenWithOptions(dsn, 4, 2)
}

// OpenWithOptions lets callers tune maxOpen and maxIdle per pool.
func OpenWithOptions(dsn string, maxOpen, maxIdle int) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
