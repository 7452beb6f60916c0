// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/frscoding-sono/personal-stylist/auth"
	"github.com/frscoding-sono/personal-stylist/catalog"
	"github.com/frscoding-sono/personal-stylist/cliparse"
	"github.com/frscoding-sono/personal-stylist/flow"
	"github.com/frscoding-sono/personal-stylist/middleware"
	"github.com/frscoding-sono/personal-stylist/models"
	"github.com/frscoding-sono/personal-stylist/session"
	"github.com/frscoding-sono/personal-stylist/stores"
)

type SessionHandler struct {
	manager *session.Manager
	cfg     cliparse.Config
}

func NewSessionHandler(manager *session.Manager, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{manager: manager, cfg: cfg}
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.manager.Create()
	key := auth.GenerateSessionKey(s.ID(), h.cfg.SessionKeySalt)

	slog.Info("session issued",
		"session_id", s.ID(),
		"client", auth.HashIP(middleware.GetClientIP(r), h.cfg.SessionKeySalt),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID:  s.ID(),
		SessionKey: key,
		State:      s.Snapshot(),
	})
}

// GetSession handles GET /sessions/{id}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, s.Snapshot())
}

// DeleteSession handles DELETE /sessions/{id}
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.manager.Delete(s.ID())
	w.WriteHeader(http.StatusNoContent)
}

// lookup checks the session key and resolves the session named in the path.
// It writes the error response itself and reports false on failure.
func (h *SessionHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session_id is required")
		return nil, false
	}

	key := r.Header.Get("X-Session-Key")
	if err := auth.ValidateSessionKey(sessionID, key, h.cfg.SessionKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid session key")
		return nil, false
	}

	s, ok := h.manager.Get(sessionID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return s, true
}

// writeError maps session and store errors onto status codes
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrWrongView),
		errors.Is(err, session.ErrBusy),
		errors.Is(err, session.ErrTransitionNotAllowed):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())

	case errors.Is(err, flow.ErrUnknownView),
		errors.Is(err, session.ErrUnknownAction),
		errors.Is(err, catalog.ErrUnknownCategory),
		errors.Is(err, stores.ErrUnknownField),
		errors.Is(err, stores.ErrInvalidValue),
		errors.Is(err, stores.ErrItemOutOfRange),
		errors.Is(err, stores.ErrDayOutOfRange):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())

	default:
		slog.Error("session operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
