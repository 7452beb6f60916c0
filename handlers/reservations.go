// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/frscoding-sono/personal-stylist/middleware"
	"github.com/frscoding-sono/personal-stylist/models"
)

// ToggleItem handles POST /sessions/{id}/reservations/{day}/items/{item}
func (h *SessionHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	day, ok := pathInt(r, "day")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "day must be a non-negative integer")
		return
	}
	item, ok := pathInt(r, "item")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item must be a non-negative integer")
		return
	}

	selected, err := s.ToggleItem(day, item)
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.ToggleItemResponse{
		Day:      day,
		Item:     item,
		Selected: selected,
		State:    s.Snapshot(),
	})
}

// Reserve handles POST /sessions/{id}/reservations/{day}
func (h *SessionHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	day, ok := pathInt(r, "day")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "day must be a non-negative integer")
		return
	}

	rec, err := s.Reserve(day)
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, models.ReserveResponse{
		Day:   rec.Day,
		Items: rec.Items,
		State: s.Snapshot(),
	})
}

// MagicFill handles POST /sessions/{id}/magic-fill
func (h *SessionHandler) MagicFill(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if err := s.MagicFill(); err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusAccepted, s.Snapshot())
}
