// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open connects to the database and verifies the connection.
// dbType is "postgres" or "sqlite".
func Open(dbType, url string) (*sql.DB, error) {
	var conn *sql.DB
	var err error

	switch dbType {
	case DriverPostgres:
		conn, err = sql.Open(DriverPostgres, url)
	case DriverSQLite:
		conn, err = sql.Open(DriverSQLite, SQLiteDSN(url))
		if err == nil {
			// SQLite allows one writer; a single connection serializes
			// transactions instead of failing them with SQLITE_BUSY.
			conn.SetMaxOpenConns(1)
		}
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// SQLiteDSN adds the connection options the schema relies on:
// foreign keys (for cascades), a busy timeout and a sortable time format.
func SQLiteDSN(url string) string {
	var opts []string
	if !strings.Contains(url, "foreign_keys") {
		opts = append(opts, "_pragma=foreign_keys(1)")
	}
	if !strings.Contains(url, "busy_timeout") {
		opts = append(opts, "_pragma=busy_timeout(5000)")
	}
	if !strings.Contains(url, "_time_format") {
		opts = append(opts, "_time_format=sqlite")
	}
	if len(opts) == 0 {
		return url
	}

	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + strings.Join(opts, "&")
}

// IsUniqueViolation reports whether err was caused by a UNIQUE or
// PRIMARY KEY constraint on either supported driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
		return strings.Contains(sqliteErr.Error(), "UNIQUE constraint failed")
	}

	return false
}
