// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// DB wraps a connection pool together with its dialect
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Open connects to the database described by dbType and url, verifies the
// connection and applies dialect-specific settings.
func Open(dbType, url string) (*DB, error) {
	dialect, err := DialectFor(dbType)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(dialect.DriverName(), url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := dialect.ConfigureConnection(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to configure connection: %w", err)
	}

	return &DB{DB: conn, Dialect: dialect}, nil
}

// Rebind rewrites a query written with ? placeholders for this dialect
func (d *DB) Rebind(query string) string {
	return d.Dialect.RewriteQuery(query)
}
