// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flow

import (
	"errors"
	"testing"
)

func TestParseView(t *testing.T) {
	for _, v := range Order {
		got, err := ParseView(string(v))
		if err != nil || got != v {
			t.Errorf("ParseView(%q) = %q, %v", v, got, err)
		}
	}

	for _, bad := range []string{"", "Splash", "scan_complete", "settings"} {
		if _, err := ParseView(bad); !errors.Is(err, ErrUnknownView) {
			t.Errorf("ParseView(%q): expected ErrUnknownView, got %v", bad, err)
		}
	}
}

func TestStepIndex(t *testing.T) {
	if StepIndex(ViewSplash) != 0 {
		t.Error("Expected splash at index 0")
	}
	if StepIndex(ViewCheckout) != len(Order)-1 {
		t.Error("Expected checkout last")
	}
	if StepIndex("nowhere") != -1 {
		t.Error("Expected -1 for unknown view")
	}
}

func TestNavVisibleAndActiveTab(t *testing.T) {
	tests := []struct {
		view        ViewID
		wantVisible bool
		wantTab     ViewID
	}{
		{ViewSplash, false, ""},
		{ViewHome, true, ViewHome},
		{ViewProfile, true, ViewProfile},
		{ViewScan, false, ""},
		{ViewScanComplete, false, ""},
		{ViewSolution, true, ViewSolution},
		{ViewConfirmation, true, ViewSolution},
		{ViewWeekly, true, ViewWeekly},
		{ViewCalendar, true, ViewWeekly},
		{ViewCheckout, false, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			if got := NavVisible(tt.view); got != tt.wantVisible {
				t.Errorf("NavVisible = %v, want %v", got, tt.wantVisible)
			}
			tab, ok := ActiveTab(tt.view)
			if ok != (tt.wantTab != "") || tab != tt.wantTab {
				t.Errorf("ActiveTab = %q, %v; want %q", tab, ok, tt.wantTab)
			}
		})
	}
}

func TestDefaultGraph(t *testing.T) {
	g := DefaultGraph()

	allowed := [][2]ViewID{
		{ViewSplash, ViewHome},
		{ViewProfile, ViewScan},
		{ViewScan, ViewScanComplete},
		{ViewSolution, ViewConfirmation},
		{ViewWeekly, ViewCalendar},
		{ViewCalendar, ViewCheckout},
		// bottom navigation
		{ViewCalendar, ViewProfile},
		{ViewConfirmation, ViewWeekly},
		{ViewHome, ViewSolution},
	}
	for _, e := range allowed {
		if !g.Allows(e[0], e[1]) {
			t.Errorf("Expected %s → %s to be allowed", e[0], e[1])
		}
	}

	forbidden := [][2]ViewID{
		{ViewSplash, ViewCheckout},
		{ViewHome, ViewCheckout},
		{ViewScan, ViewWeekly},
		{ViewCheckout, ViewCalendar},
		{ViewHome, ViewHome},
	}
	for _, e := range forbidden {
		if g.Allows(e[0], e[1]) {
			t.Errorf("Expected %s → %s to be forbidden", e[0], e[1])
		}
	}

	for _, from := range Order {
		if from != ViewCheckout && len(g[from]) == 0 {
			t.Errorf("%s has no outgoing transitions", from)
		}
	}
}
