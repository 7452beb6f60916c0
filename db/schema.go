// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(conn *DB) error {
	for _, stmt := range schema {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// One statement per entry; go-sql-driver/mysql rejects multi-statement Exec
// unless multiStatements=true is in the DSN.
var schema = []string{
	// Trending items per category, three per category on the solution screen
	`CREATE TABLE IF NOT EXISTS trending_item (
    category VARCHAR(16) NOT NULL,
    sort_order INTEGER NOT NULL,
    name VARCHAR(128) NOT NULL,
    PRIMARY KEY (category, sort_order)
)`,

	// Outfit templates keyed by weather condition
	`CREATE TABLE IF NOT EXISTS outfit_template (
    weather VARCHAR(16) PRIMARY KEY,
    name VARCHAR(128) NOT NULL
)`,

	`CREATE TABLE IF NOT EXISTS template_item (
    weather VARCHAR(16) NOT NULL REFERENCES outfit_template(weather) ON DELETE CASCADE,
    sort_order INTEGER NOT NULL,
    name VARCHAR(128) NOT NULL,
    slot VARCHAR(16) NOT NULL,
    icon VARCHAR(16) NOT NULL DEFAULT '',
    PRIMARY KEY (weather, sort_order)
)`,

	// The planning week
	`CREATE TABLE IF NOT EXISTS forecast_day (
    day_index INTEGER PRIMARY KEY,
    day_name VARCHAR(16) NOT NULL,
    day_date INTEGER NOT NULL,
    weather VARCHAR(16) NOT NULL,
    temp_c INTEGER NOT NULL,
    icon VARCHAR(16) NOT NULL DEFAULT ''
)`,

	// Calendar magic fill
	`CREATE TABLE IF NOT EXISTS autofill_policy (
    id INTEGER PRIMARY KEY,
    threshold_c INTEGER NOT NULL,
    score_min INTEGER NOT NULL,
    score_max INTEGER NOT NULL
)`,

	`CREATE TABLE IF NOT EXISTS autofill_item (
    band VARCHAR(8) NOT NULL CHECK (band IN ('warm', 'cool')),
    sort_order INTEGER NOT NULL,
    name VARCHAR(128) NOT NULL,
    PRIMARY KEY (band, sort_order)
)`,
}
