// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Personal Stylist API server.

Personal Stylist drives a styling wizard for many clients at once: a splash
screen, a body profile, a simulated face scan, a look recommendation with
trending items, and a weekly outfit plan tied to the forecast. Every client
gets an in-memory session; the server owns the wizard's timers and the
client renders whatever state the session reports.

# Starting the Server

With no configuration beyond the session salt the server uses a local SQLite
file for its reference data:

	SESSION_KEY_SALT=dev go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -session-salt dev

A .env file in the working directory is read as well; real environment
variables take precedence over it.

# Configuration

Required settings:

  - SESSION_KEY_SALT (-session-salt): Secret for session key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or mysql (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:stylist.db)
  - SESSION_TTL (-session-ttl): Idle session lifetime (default: 30m)
  - STRICT_FLOW (-strict-flow): Only allow on-screen transitions
  - AUTOFILL_SEED (-seed): Fixed seed for auto-fill match scores
  - LOG_LEVEL (-log-level): debug, info, warn or error

# Architecture

  - handlers: HTTP request handlers (sessions, wizard intents, catalog)
  - router: Route definitions using Go 1.22+ routing
  - session: Session state machine and session manager
  - flow: Views, navigation history and the transition graph
  - stores: Profile, selection and reservation state
  - timing: Timer engine with cancellation and a manual clock
  - catalog: Reference data and its database repository
  - db: Dialects, connections and schema creation
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Session keys
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
