// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"testing"

	"github.com/frscoding-sono/personal-stylist/models"
	"github.com/frscoding-sono/personal-stylist/session"
	"github.com/frscoding-sono/personal-stylist/testutil"
)

func (e *testEnv) toggle(id string, day, item int) models.ToggleItemResponse {
	e.t.Helper()
	path := "/sessions/" + id + "/reservations/" + strconv.Itoa(day) + "/items/" + strconv.Itoa(item)
	req := e.request("POST", path, id, nil)
	req.SetPathValue("day", strconv.Itoa(day))
	req.SetPathValue("item", strconv.Itoa(item))

	w := httptest.NewRecorder()
	e.handler.ToggleItem(w, req)
	testutil.AssertStatus(e.t, w, http.StatusOK)

	var resp models.ToggleItemResponse
	testutil.AssertJSON(e.t, w, &resp)
	return resp
}

func (e *testEnv) reserve(id string, day, status int) models.ReserveResponse {
	e.t.Helper()
	req := e.request("POST", "/sessions/"+id+"/reservations/"+strconv.Itoa(day), id, nil)
	req.SetPathValue("day", strconv.Itoa(day))

	w := httptest.NewRecorder()
	e.handler.Reserve(w, req)
	testutil.AssertStatus(e.t, w, status)

	var resp models.ReserveResponse
	if w.Code == http.StatusCreated {
		testutil.AssertJSON(e.t, w, &resp)
	}
	return resp
}

func TestToggleItem(t *testing.T) {
	env := setupEnv(t, testutil.GetTestConfig())
	id := startAtHome(t, env)

	resp := env.toggle(id, 1, 2)
	if !resp.Selected {
		t.Error("Expected item to be selected")
	}
	if !reflect.DeepEqual(resp.State.Week.Days[1].Pending, []int{2}) {
		t.Errorf("Expected pending [2], got %v", resp.State.Week.Days[1].Pending)
	}

	resp = env.toggle(id, 1, 2)
	if resp.Selected {
		t.Error("Expected second toggle to deselect")
	}
	if len(resp.State.Week.Days[1].Pending) != 0 {
		t.Errorf("Expected empty pending, got %v", resp.State.Week.Days[1].Pending)
	}
}

func TestReserveDay(t *testing.T) {
	env := setupEnv(t, testutil.GetTestConfig())
	id := startAtHome(t, env)
	env.navigate(id, "weekly", http.StatusOK)

	env.toggle(id, 0, 0)
	resp := env.reserve(id, 0, http.StatusCreated)

	if !reflect.DeepEqual(resp.Items, []string{"Wool Coat"}) {
		t.Errorf("Expected [Wool Coat], got %v", resp.Items)
	}
	if !resp.State.Screen.ReserveConfirm {
		t.Error("Expected reserve confirmation to show")
	}
	if len(resp.State.Week.Days[0].Pending) != 0 {
		t.Errorf("Expected pending cleared, got %v", resp.State.Week.Days[0].Pending)
	}

	// A second reserve while confirming is refused
	env.reserve(id, 1, http.StatusConflict)

	env.advance(id, session.ReserveConfirmDelay)
	state := env.do(env.handler.GetSession, env.request("GET", "/sessions/"+id, id, nil), http.StatusOK)
	if state.View != "calendar" {
		t.Fatalf("Expected calendar, got %s", state.View)
	}
	rec := state.Week.Days[0].Reservation
	if rec == nil || rec.Source != "manual" || !reflect.DeepEqual(rec.Items, []string{"Wool Coat"}) {
		t.Errorf("Expected manual Wool Coat reservation, got %+v", rec)
	}
	for _, d := range state.Week.Days[1:] {
		if d.Reservation != nil {
			t.Errorf("Expected day %d to be empty, got %+v", d.Index, d.Reservation)
		}
	}
}

func TestReserveWithoutSelection(t *testing.T) {
	env := setupEnv(t, testutil.GetTestConfig())
	id := startAtHome(t, env)
	env.navigate(id, "weekly", http.StatusOK)

	resp := env.reserve(id, 2, http.StatusCreated)
	want := []string{"Long Padding", "Heattech", "Fleece-Lined Jeans", "Winter Boots"}
	if !reflect.DeepEqual(resp.Items, want) {
		t.Errorf("Expected full template %v, got %v", want, resp.Items)
	}
}

func TestMagicFill(t *testing.T) {
	env := setupEnv(t, testutil.GetTestConfig())
	id := startAtHome(t, env)
	env.navigate(id, "weekly", http.StatusOK)
	env.toggle(id, 0, 0)
	env.reserve(id, 0, http.StatusCreated)
	env.advance(id, session.ReserveConfirmDelay)

	fill := func(status int) models.SessionState {
		return env.do(env.handler.MagicFill, env.request("POST", "/sessions/"+id+"/magic-fill", id, nil), status)
	}

	state := fill(http.StatusAccepted)
	if !state.Screen.MagicFilling {
		t.Error("Expected magic fill to be pending")
	}

	env.advance(id, session.MagicFillDelay)
	state = env.do(env.handler.GetSession, env.request("GET", "/sessions/"+id, id, nil), http.StatusOK)
	if state.Screen.MagicFilling {
		t.Error("Expected magic fill to finish")
	}

	first := state.Week.Days[0].Reservation
	if first == nil || first.Source != "manual" || first.Fresh {
		t.Errorf("Expected manual reservation kept, got %+v", first)
	}
	for _, d := range state.Week.Days[1:] {
		rec := d.Reservation
		if rec == nil {
			t.Fatalf("Expected day %d to be filled", d.Index)
		}
		if rec.Source != "auto_fill" || !rec.Fresh {
			t.Errorf("Expected fresh auto-fill on day %d, got %+v", d.Index, rec)
		}
		if rec.MatchScore < 85 || rec.MatchScore > 94 {
			t.Errorf("Expected score in [85, 94] on day %d, got %d", d.Index, rec.MatchScore)
		}
		if !reflect.DeepEqual(rec.Items, []string{"Wool Blend", "Cashmere"}) {
			t.Errorf("Expected cool set on day %d, got %v", d.Index, rec.Items)
		}
	}

	// Leaving the calendar ends the fresh highlight
	env.navigate(id, "weekly", http.StatusOK)
	state = env.navigate(id, "calendar", http.StatusOK)
	for _, d := range state.Week.Days {
		if d.Reservation != nil && d.Reservation.Fresh {
			t.Errorf("Expected day %d no longer fresh", d.Index)
		}
	}
}
