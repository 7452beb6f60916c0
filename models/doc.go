// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

  - NavigateRequest: view
  - ProfileFieldRequest: field, value (number or numeric string)
  - CategoryRequest: category
  - FinalLookRequest: category, index

# Response Types

  - SessionState: the full state of a session, returned by most routes
  - CreateSessionResponse: session_id, session_key, state
  - ProfileFieldResponse: field, stored value, state
  - ToggleItemResponse: day, item, selected, state
  - ReserveResponse: day, items, state
  - ErrorResponse: error, message
*/
package models
