// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/frscoding-sono/personal-stylist/catalog"
	"github.com/frscoding-sono/personal-stylist/flow"
	"github.com/frscoding-sono/personal-stylist/models"
	"github.com/frscoding-sono/personal-stylist/stores"
	"github.com/frscoding-sono/personal-stylist/timing"
)

var (
	ErrTransitionNotAllowed = errors.New("transition not allowed")
	ErrWrongView            = errors.New("operation not available on the current view")
	ErrBusy                 = errors.New("operation already in progress")
	ErrUnknownAction        = errors.New("unknown action")
)

// Screen timings
const (
	SplashDuration       = 2500 * time.Millisecond
	ScanTickInterval     = 50 * time.Millisecond
	ScanSettleDelay      = 500 * time.Millisecond
	ResultsDelay         = 800 * time.Millisecond
	AutoAdvanceDelay     = 3000 * time.Millisecond
	CheckoutTickInterval = 60 * time.Millisecond
	ReserveConfirmDelay  = 1500 * time.Millisecond
	MagicFillDelay       = 1500 * time.Millisecond
	ActionDelay          = 500 * time.Millisecond
	ToastDuration        = 2000 * time.Millisecond

	ProgressTarget = 100
	ProgressStep   = 2
)

// Action is a choice made on the confirmation screen
type Action string

const (
	ActionWeekly   Action = "weekly"
	ActionPurchase Action = "purchase"
	ActionSave     Action = "save"
)

func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionWeekly, ActionPurchase, ActionSave:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

const toastSaved = "Look saved"

// Options configures a Session
type Options struct {
	// Clock drives every timed transition; nil means the wall clock
	Clock timing.Clock

	// Rand drives auto-fill match scores; nil seeds from the clock
	Rand *rand.Rand

	// StrictFlow restricts Navigate to the edges of Graph
	StrictFlow bool
	Graph      flow.Graph
}

// screen holds values owned by the screen currently shown. Leaving a
// screen resets its part.
type screen struct {
	scanProgress     int
	scanning         bool
	scanDone         bool
	resultsVisible   bool
	checkoutProgress int
	connected        bool
	reserveConfirm   bool
	magicFilling     bool
	pendingAction    Action
	toast            string
}

// Session is one run of the styling wizard. All methods are safe for
// concurrent use; timed callbacks run under the same lock as user intents.
type Session struct {
	mu sync.Mutex

	id        string
	createdAt time.Time
	cat       *catalog.Catalog
	strict    bool
	graph     flow.Graph

	nav          *flow.Controller
	profile      *stores.ProfileStore
	selection    *stores.SelectionStore
	reservations *stores.ReservationStore
	engine       *timing.Engine
	screen       screen
}

// New creates a session on the splash screen and schedules its automatic
// advance to home.
func New(id string, cat *catalog.Catalog, opts Options) *Session {
	engine := timing.NewEngine(opts.Clock)

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(engine.Clock().Now().UnixNano()))
	}
	graph := opts.Graph
	if graph == nil {
		graph = flow.DefaultGraph()
	}

	s := &Session{
		id:           id,
		createdAt:    engine.Clock().Now(),
		cat:          cat,
		strict:       opts.StrictFlow,
		graph:        graph,
		nav:          flow.NewController(),
		profile:      stores.NewProfileStore(),
		selection:    stores.NewSelectionStore(cat),
		reservations: stores.NewReservationStore(cat, rng),
		engine:       engine,
	}
	s.nav.OnChange(s.onViewChange)
	s.enter(s.nav.Current())
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) CreatedAt() time.Time { return s.createdAt }

// Run fires timed transitions in real time until ctx is done
func (s *Session) Run(ctx context.Context) {
	s.engine.Run(ctx, &s.mu)
}

// RunDue fires every timed transition due at the clock's current time
func (s *Session) RunDue() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.RunDue(s.engine.Clock().Now())
}

// Close cancels every pending timed transition
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.CancelAll()
}

func (s *Session) Current() flow.ViewID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.Current()
}

func (s *Session) onViewChange(from, to flow.ViewID) {
	s.exit(from)
	s.enter(to)
	slog.Debug("view changed", "session_id", s.id, "from", from, "to", to)
}

func owner(v flow.ViewID) string { return string(v) }

func (s *Session) exit(v flow.ViewID) {
	if n := s.engine.CancelOwner(owner(v)); n > 0 {
		slog.Debug("cancelled timers on exit", "session_id", s.id, "view", v, "count", n)
	}

	switch v {
	case flow.ViewScan:
		s.screen.scanProgress = 0
		s.screen.scanning = false
		s.screen.scanDone = false
	case flow.ViewScanComplete:
		s.screen.resultsVisible = false
	case flow.ViewCheckout:
		s.screen.checkoutProgress = 0
		s.screen.connected = false
	case flow.ViewWeekly:
		s.screen.reserveConfirm = false
	case flow.ViewCalendar:
		s.screen.magicFilling = false
		s.reservations.ClearFresh()
	case flow.ViewConfirmation:
		s.screen.pendingAction = ""
		s.screen.toast = ""
	}
}

func (s *Session) enter(v flow.ViewID) {
	switch v {
	case flow.ViewSplash:
		s.engine.StartDelay(owner(v), SplashDuration, func() {
			s.nav.Replace(flow.ViewHome)
		})

	case flow.ViewScanComplete:
		s.engine.StartDelay(owner(v), ResultsDelay, func() {
			s.screen.resultsVisible = true
		})
		s.engine.StartDelay(owner(v), AutoAdvanceDelay, func() {
			s.nav.Replace(flow.ViewSolution)
		})

	case flow.ViewCheckout:
		spec := timing.ProgressSpec{Target: ProgressTarget, Step: ProgressStep, Interval: CheckoutTickInterval}
		s.engine.StartProgress(owner(v), spec,
			func(p int) { s.screen.checkoutProgress = p },
			func() {
				s.screen.connected = true
				slog.Info("checkout connected", "session_id", s.id)
			},
		)
	}
}

// Navigate moves forward to target. With strict flow enabled, targets
// outside the flow graph are refused.
func (s *Session) Navigate(target flow.ViewID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.nav.Current()
	if s.strict && from != target && !s.graph.Allows(from, target) {
		return fmt.Errorf("%w: %s → %s", ErrTransitionNotAllowed, from, target)
	}
	s.nav.Navigate(target)
	return nil
}

// GoBack returns to the previous view; it reports false at the bottom of
// the history.
func (s *Session) GoBack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.GoBack()
}

// Replace shows target without recording a history entry
func (s *Session) Replace(target flow.ViewID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.Replace(target)
}

func (s *Session) SetProfileField(key, raw string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.SetField(key, raw)
}

func (s *Session) SetCategory(c catalog.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.SetCategory(c)
}

func (s *Session) SetFinalLook(c catalog.Category, index int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.SetFinalLook(c, index)
}

func (s *Session) ResetFinalLook() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.ResetFinalLook()
}

// StartScan runs the face scan: progress to 100 in steps of 2 every 50ms,
// then a short pause and an automatic move to the scan-complete screen.
// Calling it again while the scan runs does nothing.
func (s *Session) StartScan() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nav.Current() != flow.ViewScan {
		return fmt.Errorf("%w: scan requires %s", ErrWrongView, flow.ViewScan)
	}
	if s.screen.scanning || s.screen.scanDone {
		return nil
	}

	s.screen.scanning = true
	spec := timing.ProgressSpec{Target: ProgressTarget, Step: ProgressStep, Interval: ScanTickInterval}
	s.engine.StartProgress(owner(flow.ViewScan), spec,
		func(p int) { s.screen.scanProgress = p },
		func() {
			s.screen.scanning = false
			s.screen.scanDone = true
			s.engine.StartDelay(owner(flow.ViewScan), ScanSettleDelay, func() {
				s.nav.Replace(flow.ViewScanComplete)
			})
		},
	)
	slog.Info("scan started", "session_id", s.id)
	return nil
}

// ToggleItem flips an item of day's outfit in the pending selection
func (s *Session) ToggleItem(day, item int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reservations.Toggle(day, item)
}

// Reserve commits day's reservation, shows the confirmation and then opens
// the calendar.
func (s *Session) Reserve(day int) (stores.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nav.Current() != flow.ViewWeekly {
		return stores.Record{}, fmt.Errorf("%w: reserve requires %s", ErrWrongView, flow.ViewWeekly)
	}
	if s.screen.reserveConfirm {
		return stores.Record{}, ErrBusy
	}

	rec, err := s.reservations.Commit(day)
	if err != nil {
		return stores.Record{}, err
	}

	s.screen.reserveConfirm = true
	s.engine.StartDelay(owner(flow.ViewWeekly), ReserveConfirmDelay, func() {
		s.screen.reserveConfirm = false
		s.nav.Navigate(flow.ViewCalendar)
	})
	slog.Info("day reserved", "session_id", s.id, "day", day, "items", len(rec.Items))
	return rec, nil
}

// MagicFill fills every unreserved day after a short delay. Calling it
// again while a fill is pending does nothing.
func (s *Session) MagicFill() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nav.Current() != flow.ViewCalendar {
		return fmt.Errorf("%w: magic fill requires %s", ErrWrongView, flow.ViewCalendar)
	}
	if s.screen.magicFilling {
		return nil
	}

	s.screen.magicFilling = true
	s.engine.StartDelay(owner(flow.ViewCalendar), MagicFillDelay, func() {
		filled := s.reservations.AutoFill()
		s.screen.magicFilling = false
		slog.Info("week auto-filled", "session_id", s.id, "days", len(filled))
	})
	return nil
}

// ChooseAction handles a confirmation-screen button. Weekly and purchase
// move on after a short delay; save shows a toast.
func (s *Session) ChooseAction(a Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nav.Current() != flow.ViewConfirmation {
		return fmt.Errorf("%w: actions require %s", ErrWrongView, flow.ViewConfirmation)
	}

	switch a {
	case ActionSave:
		s.screen.toast = toastSaved
		s.engine.StartDelay(owner(flow.ViewConfirmation), ToastDuration, func() {
			s.screen.toast = ""
		})
		return nil

	case ActionWeekly, ActionPurchase:
		if s.screen.pendingAction != "" {
			return ErrBusy
		}
		target := flow.ViewWeekly
		if a == ActionPurchase {
			target = flow.ViewCheckout
		}
		s.screen.pendingAction = a
		s.engine.StartDelay(owner(flow.ViewConfirmation), ActionDelay, func() {
			s.nav.Navigate(target)
		})
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownAction, a)
}

// Snapshot captures the full session state
func (s *Session) Snapshot() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.nav.Current()
	history := s.nav.History()
	historyNames := make([]string, len(history))
	for i, v := range history {
		historyNames[i] = string(v)
	}

	state := models.SessionState{
		SessionID:     s.id,
		View:          string(current),
		History:       historyNames,
		CanGoBack:     s.nav.CanGoBack(),
		Step:          flow.StepIndex(current),
		StepCount:     len(flow.Order),
		NavVisible:    flow.NavVisible(current),
		PendingTimers: s.engine.Pending(),
	}
	if tab, ok := flow.ActiveTab(current); ok {
		state.ActiveTab = string(tab)
	}

	p := s.profile.Profile()
	state.Profile = models.ProfileState{Height: p.Height, Weight: p.Weight}

	sel := s.selection.Selection()
	state.Selection = models.SelectionState{
		ActiveCategory: string(sel.ActiveCategory),
		Trending:       append([]string{}, s.cat.Trending[sel.ActiveCategory]...),
		FinalLook:      sel.FinalLook,
	}
	if name, ok := s.selection.FinalLookItem(); ok {
		state.Selection.FinalLookItem = name
	}

	state.Screen = models.ScreenState{
		ScanProgress:     s.screen.scanProgress,
		Scanning:         s.screen.scanning,
		ResultsVisible:   s.screen.resultsVisible,
		CheckoutProgress: s.screen.checkoutProgress,
		Connected:        s.screen.connected,
		ReserveConfirm:   s.screen.reserveConfirm,
		MagicFilling:     s.screen.magicFilling,
		PendingAction:    string(s.screen.pendingAction),
		Toast:            s.screen.toast,
	}

	state.Week = s.weekState()
	return state
}

func (s *Session) weekState() models.WeekState {
	week := models.WeekState{
		Label: s.cat.WeekLabel(),
		Days:  make([]models.DayState, 0, len(s.cat.Week)),
	}
	for _, d := range s.cat.Week {
		tmpl, _ := s.cat.TemplateFor(d.Index)
		items := make([]string, len(tmpl.Items))
		for i, item := range tmpl.Items {
			items[i] = item.Name
		}

		day := models.DayState{
			Index:         d.Index,
			Day:           d.Day,
			Date:          d.Date,
			Condition:     string(d.Condition),
			TempC:         d.TempC,
			Icon:          d.Icon,
			Template:      tmpl.Name,
			TemplateItems: items,
			Pending:       s.reservations.Pending(d.Index),
		}
		if rec, ok := s.reservations.Record(d.Index); ok {
			day.Reservation = &models.ReservationState{
				Template:   rec.Template,
				Items:      rec.Items,
				Source:     string(rec.Source),
				MatchScore: rec.MatchScore,
				Fresh:      rec.Fresh,
			}
		}
		week.Days = append(week.Days, day)
	}
	return week
}
