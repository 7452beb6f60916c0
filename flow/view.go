// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flow

import (
	"errors"
	"fmt"
)

var ErrUnknownView = errors.New("unknown view")

// ViewID identifies one screen of the wizard
type ViewID string

const (
	ViewSplash       ViewID = "splash"
	ViewHome         ViewID = "home"
	ViewProfile      ViewID = "profile"
	ViewScan         ViewID = "scan"
	ViewScanComplete ViewID = "scanComplete"
	ViewSolution     ViewID = "solution"
	ViewConfirmation ViewID = "confirmation"
	ViewWeekly       ViewID = "weekly"
	ViewCalendar     ViewID = "calendar"
	ViewCheckout     ViewID = "checkout"
)

// Order is the canonical wizard order, used for step indicators
var Order = []ViewID{
	ViewSplash,
	ViewHome,
	ViewProfile,
	ViewScan,
	ViewScanComplete,
	ViewSolution,
	ViewConfirmation,
	ViewWeekly,
	ViewCalendar,
	ViewCheckout,
}

// ParseView validates a wire value
func ParseView(s string) (ViewID, error) {
	for _, v := range Order {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
}

// StepIndex returns the position of v in Order, or -1
func StepIndex(v ViewID) int {
	for i, o := range Order {
		if o == v {
			return i
		}
	}
	return -1
}

// Bottom navigation
var (
	hideBottomNav = map[ViewID]bool{
		ViewSplash:       true,
		ViewScan:         true,
		ViewScanComplete: true,
		ViewCheckout:     true,
	}

	// Tabs lists the bottom navigation entries in display order
	Tabs = []ViewID{ViewHome, ViewProfile, ViewSolution, ViewWeekly}

	// views that highlight a tab other than their own
	tabAliases = map[ViewID]ViewID{
		ViewConfirmation: ViewSolution,
		ViewCalendar:     ViewWeekly,
	}
)

// NavVisible reports whether the bottom navigation bar is shown on v
func NavVisible(v ViewID) bool {
	return !hideBottomNav[v]
}

// ActiveTab returns the tab highlighted while v is shown. ok is false when
// no tab applies.
func ActiveTab(v ViewID) (tab ViewID, ok bool) {
	if !NavVisible(v) {
		return "", false
	}
	if alias, found := tabAliases[v]; found {
		return alias, true
	}
	for _, t := range Tabs {
		if t == v {
			return t, true
		}
	}
	return "", false
}
