// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "encoding/json"

// Request types

type NavigateRequest struct {
	View string `json:"view"`
}

// Value accepts a JSON number or a numeric string
type ProfileFieldRequest struct {
	Field string      `json:"field"`
	Value json.Number `json:"value"`
}

type CategoryRequest struct {
	Category string `json:"category"`
}

type FinalLookRequest struct {
	Category string `json:"category"`
	Index    *int   `json:"index"`
}

// Response types

type CreateSessionResponse struct {
	SessionID  string       `json:"session_id"`
	SessionKey string       `json:"session_key"`
	State      SessionState `json:"state"`
}

type ToggleItemResponse struct {
	Day      int          `json:"day"`
	Item     int          `json:"item"`
	Selected bool         `json:"selected"`
	State    SessionState `json:"state"`
}

type ReserveResponse struct {
	Day   int          `json:"day"`
	Items []string     `json:"items"`
	State SessionState `json:"state"`
}

type ProfileFieldResponse struct {
	Field  string       `json:"field"`
	Stored int          `json:"stored"`
	State  SessionState `json:"state"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
