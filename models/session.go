// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// SessionState is everything a client needs to render the current screen
type SessionState struct {
	SessionID     string         `json:"session_id"`
	View          string         `json:"view"`
	History       []string       `json:"history"`
	CanGoBack     bool           `json:"can_go_back"`
	Step          int            `json:"step"`
	StepCount     int            `json:"step_count"`
	NavVisible    bool           `json:"nav_visible"`
	ActiveTab     string         `json:"active_tab,omitempty"`
	Profile       ProfileState   `json:"profile"`
	Selection     SelectionState `json:"selection"`
	Screen        ScreenState    `json:"screen"`
	Week          WeekState      `json:"week"`
	PendingTimers int            `json:"pending_timers"`
}

type ProfileState struct {
	Height int `json:"height"`
	Weight int `json:"weight"`
}

type SelectionState struct {
	ActiveCategory string   `json:"active_category"`
	Trending       []string `json:"trending"`
	FinalLook      string   `json:"final_look"`
	FinalLookItem  string   `json:"final_look_item,omitempty"`
}

// ScreenState holds values that only live while their screen is shown
type ScreenState struct {
	ScanProgress     int    `json:"scan_progress"`
	Scanning         bool   `json:"scanning"`
	ResultsVisible   bool   `json:"results_visible"`
	CheckoutProgress int    `json:"checkout_progress"`
	Connected        bool   `json:"connected"`
	ReserveConfirm   bool   `json:"reserve_confirm"`
	MagicFilling     bool   `json:"magic_filling"`
	PendingAction    string `json:"pending_action,omitempty"`
	Toast            string `json:"toast,omitempty"`
}

type WeekState struct {
	Label string     `json:"label"`
	Days  []DayState `json:"days"`
}

type DayState struct {
	Index         int               `json:"index"`
	Day           string            `json:"day"`
	Date          int               `json:"date"`
	Condition     string            `json:"condition"`
	TempC         int               `json:"temp_c"`
	Icon          string            `json:"icon"`
	Template      string            `json:"template"`
	TemplateItems []string          `json:"template_items"`
	Pending       []int             `json:"pending"`
	Reservation   *ReservationState `json:"reservation,omitempty"`
}

type ReservationState struct {
	Template   string   `json:"template"`
	Items      []string `json:"items"`
	Source     string   `json:"source"`
	MatchScore int      `json:"match_score,omitempty"`
	Fresh      bool     `json:"fresh,omitempty"`
}
