// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/frscoding-sono/personal-stylist/catalog"
	"github.com/frscoding-sono/personal-stylist/flow"
	"github.com/frscoding-sono/personal-stylist/middleware"
	"github.com/frscoding-sono/personal-stylist/models"
	"github.com/frscoding-sono/personal-stylist/session"
)

// Navigate handles POST /sessions/{id}/navigate
func (h *SessionHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req models.NavigateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	view, err := flow.ParseView(req.View)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.Navigate(view); err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, s.Snapshot())
}

// GoBack handles POST /sessions/{id}/back. Going back with an empty
// history leaves the view unchanged.
func (h *SessionHandler) GoBack(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	s.GoBack()
	middleware.JSONResponse(w, http.StatusOK, s.Snapshot())
}

// Replace handles POST /sessions/{id}/replace
func (h *SessionHandler) Replace(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req models.NavigateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	view, err := flow.ParseView(req.View)
	if err != nil {
		writeError(w, err)
		return
	}

	s.Replace(view)
	middleware.JSONResponse(w, http.StatusOK, s.Snapshot())
}

// SetProfileField handles PUT /sessions/{id}/profile
func (h *SessionHandler) SetProfileField(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req models.ProfileFieldRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	stored, err := s.SetProfileField(req.Field, req.Value.String())
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.ProfileFieldResponse{
		Field:  req.Field,
		Stored: stored,
		State:  s.Snapshot(),
	})
}

// SetCategory handles PUT /sessions/{id}/category
func (h *SessionHandler) SetCategory(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req models.CategoryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	c, err := catalog.ParseCategory(req.Category)
	if err != nil {
		writeError(w, err)
		return
	}

	s.SetCategory(c)
	middleware.JSONResponse(w, http.StatusOK, s.Snapshot())
}

// SetFinalLook handles PUT /sessions/{id}/final-look
func (h *SessionHandler) SetFinalLook(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req models.FinalLookRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Index == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "index is required")
		return
	}
	c, err := catalog.ParseCategory(req.Category)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := s.SetFinalLook(c, *req.Index); err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, s.Snapshot())
}

// ResetFinalLook handles DELETE /sessions/{id}/final-look
func (h *SessionHandler) ResetFinalLook(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	s.ResetFinalLook()
	middleware.JSONResponse(w, http.StatusOK, s.Snapshot())
}

// StartScan handles POST /sessions/{id}/scan
func (h *SessionHandler) StartScan(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if err := s.StartScan(); err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusAccepted, s.Snapshot())
}

// ChooseAction handles POST /sessions/{id}/actions/{action}
func (h *SessionHandler) ChooseAction(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	action, err := session.ParseAction(r.PathValue("action"))
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ChooseAction(action); err != nil {
		writeError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusAccepted, s.Snapshot())
}

// pathInt reads a non-negative integer path value
func pathInt(r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(r.PathValue(name))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
