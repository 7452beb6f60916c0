// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the reference-data database and creates its schema.

SQLite, PostgreSQL and MySQL are supported through a Dialect. Queries are
written with ? placeholders; Rebind converts them for the open dialect.
*/
package db
