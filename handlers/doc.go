// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Personal Stylist API.

# Handler Types

  - SessionHandler: session lifecycle and every wizard intent
  - CatalogHandler: read-only reference data

Handlers are created via constructor functions:

	sessionHandler := handlers.NewSessionHandler(manager, cfg)
	catalogHandler := handlers.NewCatalogHandler(cat)

# Sessions

	POST   /sessions      → CreateSession (returns session_key)
	GET    /sessions/{id} → GetSession
	DELETE /sessions/{id} → DeleteSession

Every other session route requires the X-Session-Key header returned by
CreateSession. A missing or wrong key is 401; an unknown or expired session
is 404.

# Intents

Intent handlers return the session state after the intent has been applied.
Intents that start a timed screen (scan, magic fill, confirmation actions)
answer 202 Accepted; the client polls GetSession to follow progress.

Status codes follow the error returned by the session:

  - 400: unknown view, category, action or profile field; non-numeric value;
    day or item out of range
  - 409: intent not available on the current view, already in progress, or
    refused by strict flow
*/
package handlers
