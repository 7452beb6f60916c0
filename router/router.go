// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/frscoding-sono/personal-stylist/catalog"
	"github.com/frscoding-sono/personal-stylist/cliparse"
	"github.com/frscoding-sono/personal-stylist/handlers"
	"github.com/frscoding-sono/personal-stylist/middleware"
	"github.com/frscoding-sono/personal-stylist/session"
)

func NewRouter(manager *session.Manager, cat *catalog.Catalog, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(manager, cfg)
	catalogHandler := handlers.NewCatalogHandler(cat)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Reference data
	mux.HandleFunc("GET /catalog", middleware.WithLogging(catalogHandler.GetCatalog))

	// Session lifecycle
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("GET /sessions/{id}", middleware.WithLogging(sessionHandler.GetSession))
	mux.HandleFunc("DELETE /sessions/{id}", middleware.WithLogging(sessionHandler.DeleteSession))

	// Navigation (requires X-Session-Key)
	mux.HandleFunc("POST /sessions/{id}/navigate", middleware.WithLogging(sessionHandler.Navigate))
	mux.HandleFunc("POST /sessions/{id}/back", middleware.WithLogging(sessionHandler.GoBack))
	mux.HandleFunc("POST /sessions/{id}/replace", middleware.WithLogging(sessionHandler.Replace))

	// Profile and look selection
	mux.HandleFunc("PUT /sessions/{id}/profile", middleware.WithLogging(sessionHandler.SetProfileField))
	mux.HandleFunc("PUT /sessions/{id}/category", middleware.WithLogging(sessionHandler.SetCategory))
	mux.HandleFunc("PUT /sessions/{id}/final-look", middleware.WithLogging(sessionHandler.SetFinalLook))
	mux.HandleFunc("DELETE /sessions/{id}/final-look", middleware.WithLogging(sessionHandler.ResetFinalLook))

	// Timed screens
	mux.HandleFunc("POST /sessions/{id}/scan", middleware.WithLogging(sessionHandler.StartScan))
	mux.HandleFunc("POST /sessions/{id}/actions/{action}", middleware.WithLogging(sessionHandler.ChooseAction))

	// Weekly plan
	mux.HandleFunc("POST /sessions/{id}/reservations/{day}/items/{item}", middleware.WithLogging(sessionHandler.ToggleItem))
	mux.HandleFunc("POST /sessions/{id}/reservations/{day}", middleware.WithLogging(sessionHandler.Reserve))
	mux.HandleFunc("POST /sessions/{id}/magic-fill", middleware.WithLogging(sessionHandler.MagicFill))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("personal-stylist API v1"))
	})

	return mux
}
