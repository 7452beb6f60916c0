// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/frscoding-sono/personal-stylist/auth"
	"github.com/frscoding-sono/personal-stylist/catalog"
	"github.com/frscoding-sono/personal-stylist/cliparse"
	"github.com/frscoding-sono/personal-stylist/db"
	"github.com/frscoding-sono/personal-stylist/session"
	"github.com/frscoding-sono/personal-stylist/timing"
)

// Epoch is the start time of every manual test clock
var Epoch = time.Date(2025, time.October, 27, 9, 0, 0, 0, time.UTC)

// SetupTestDB opens an in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *db.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// LoadTestCatalog seeds the default catalog into a fresh database and
// reads it back, the same way the server starts up.
func LoadTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	repo := catalog.NewRepository(SetupTestDB(t))
	ctx := context.Background()
	if _, err := repo.Seed(ctx, catalog.Default()); err != nil {
		t.Fatalf("Failed to seed catalog: %v", err)
	}
	cat, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	return cat
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseURL:    ":memory:",
		DatabaseType:   "sqlite",
		SessionKeySalt: "test-session-salt",
		SessionTTL:     30 * time.Minute,
		Seed:           42,
	}
}

// NewTestManager returns a manager driven by a manual clock. Timed
// transitions only fire when the test advances the clock and calls RunDue.
func NewTestManager(t *testing.T, cat *catalog.Catalog, cfg cliparse.Config) (*session.Manager, *timing.ManualClock) {
	t.Helper()

	clock := timing.NewManualClock(Epoch)
	m := session.NewManager(cat, session.ManagerOptions{
		TTL:        cfg.SessionTTL,
		StrictFlow: cfg.StrictFlow,
		Seed:       cfg.Seed,
		Clock:      clock,
	})
	t.Cleanup(m.Close)
	return m, clock
}

// SessionHeaders returns the headers that authorize requests for sessionID
func SessionHeaders(sessionID string, cfg cliparse.Config) map[string]string {
	return map[string]string{
		"X-Session-Key": auth.GenerateSessionKey(sessionID, cfg.SessionKeySalt),
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
