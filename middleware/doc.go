// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package middleware provides HTTP middleware and JSON response helpers.
package middleware
