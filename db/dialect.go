// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect hides the differences between the supported SQL backends
type Dialect interface {
	// Name is the canonical DATABASE_TYPE value
	Name() string

	// DriverName returns the database/sql driver name
	DriverName() string

	// RewriteQuery converts ? placeholders to the backend's syntax
	RewriteQuery(query string) string

	// ConfigureConnection applies pool sizing and session settings
	ConfigureConnection(conn *sql.DB) error
}

// DialectFor resolves a DATABASE_TYPE value
func DialectFor(dbType string) (Dialect, error) {
	switch strings.ToLower(dbType) {
	case "sqlite", "sqlite3", "":
		return sqliteDialect{}, nil
	case "postgres", "postgresql":
		return postgresDialect{}, nil
	case "mysql":
		return mysqlDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}
}

var placeholderRegexp = regexp.MustCompile(`\?`)

func rewritePlaceholdersToNumbered(query string) string {
	n := 0
	return placeholderRegexp.ReplaceAllStringFunc(query, func(string) string {
		n++
		return "$" + strconv.Itoa(n)
	})
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string                     { return "sqlite" }
func (sqliteDialect) DriverName() string               { return "sqlite" }
func (sqliteDialect) RewriteQuery(query string) string { return query }

// SQLite serializes writers anyway, and a single connection keeps
// ":memory:" databases alive for the lifetime of the pool.
func (sqliteDialect) ConfigureConnection(conn *sql.DB) error {
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			return fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}
	return nil
}

type postgresDialect struct{}

func (postgresDialect) Name() string       { return "postgres" }
func (postgresDialect) DriverName() string { return "postgres" }

func (postgresDialect) RewriteQuery(query string) string {
	return rewritePlaceholdersToNumbered(query)
}

func (postgresDialect) ConfigureConnection(conn *sql.DB) error {
	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)
	conn.SetConnMaxIdleTime(1 * time.Minute)
	return nil
}

type mysqlDialect struct{}

func (mysqlDialect) Name() string                     { return "mysql" }
func (mysqlDialect) DriverName() string               { return "mysql" }
func (mysqlDialect) RewriteQuery(query string) string { return query }

func (mysqlDialect) ConfigureConnection(conn *sql.DB) error {
	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)
	conn.SetConnMaxIdleTime(1 * time.Minute)

	if _, err := conn.Exec("SET NAMES utf8mb4"); err != nil {
		return fmt.Errorf("failed to set charset: %w", err)
	}
	return nil
}
