// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/frscoding-sono/personal-stylist/catalog"
	"github.com/frscoding-sono/personal-stylist/middleware"
)

type CatalogHandler struct {
	cat *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{cat: cat}
}

// GetCatalog handles GET /catalog
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.cat)
}
