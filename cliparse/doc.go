// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package cliparse reads server configuration from flags, the environment
// and an optional .env file.
package cliparse
