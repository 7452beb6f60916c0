// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Personal Stylist API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(manager, cat, cfg)

# Endpoints

Health and reference data:

	GET /health
	GET /catalog

Sessions:

	POST   /sessions      - Start a session
	GET    /sessions/{id} - Current state
	DELETE /sessions/{id} - End a session

Navigation (requires X-Session-Key):

	POST /sessions/{id}/navigate - Go to a view
	POST /sessions/{id}/back     - Go back
	POST /sessions/{id}/replace  - Swap the current view

Profile and look:

	PUT    /sessions/{id}/profile    - Set height or weight
	PUT    /sessions/{id}/category   - Pick a trending category
	PUT    /sessions/{id}/final-look - Pick the final look
	DELETE /sessions/{id}/final-look - Back to the original base

Timed screens:

	POST /sessions/{id}/scan              - Start the face scan
	POST /sessions/{id}/actions/{action}  - weekly, purchase or save

Weekly plan:

	POST /sessions/{id}/reservations/{day}/items/{item} - Toggle an item
	POST /sessions/{id}/reservations/{day}              - Reserve a day
	POST /sessions/{id}/magic-fill                      - Fill empty days
*/
package router
