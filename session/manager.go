// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/frscoding-sono/personal-stylist/catalog"
	"github.com/frscoding-sono/personal-stylist/flow"
	"github.com/frscoding-sono/personal-stylist/timing"
)

// ManagerOptions configures a Manager
type ManagerOptions struct {
	// TTL is how long a session may sit idle before it is removed. Zero
	// disables expiry.
	TTL time.Duration

	StrictFlow bool

	// Seed makes auto-fill scores reproducible; zero seeds from the clock
	Seed int64

	// Clock is shared by every session. A nil clock means the wall clock
	// and starts a real-time run loop per session; any other clock leaves
	// firing to explicit RunDue calls.
	Clock timing.Clock
}

type managed struct {
	session  *Session
	lastSeen time.Time
	stop     context.CancelFunc
}

// Manager keeps the live sessions in memory
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*managed

	cat     *catalog.Catalog
	opts    ManagerOptions
	clock   timing.Clock
	autoRun bool
	graph   flow.Graph

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewManager creates a manager and starts its expiry loop when TTL is set
func NewManager(cat *catalog.Catalog, opts ManagerOptions) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	clock := opts.Clock
	autoRun := clock == nil
	if clock == nil {
		clock = timing.SystemClock{}
	}

	m := &Manager{
		sessions: make(map[string]*managed),
		cat:      cat,
		opts:     opts,
		clock:    clock,
		autoRun:  autoRun,
		graph:    flow.DefaultGraph(),
		ctx:      ctx,
		cancel:   cancel,
	}

	if opts.TTL > 0 {
		m.wg.Add(1)
		go m.reapLoop()
	}
	return m
}

// Create starts a new session
func (m *Manager) Create() *Session {
	seed := m.opts.Seed
	if seed == 0 {
		seed = m.clock.Now().UnixNano()
	}

	s := New(uuid.NewString(), m.cat, Options{
		Clock:      m.clock,
		Rand:       rand.New(rand.NewSource(seed)),
		StrictFlow: m.opts.StrictFlow,
		Graph:      m.graph,
	})

	entry := &managed{session: s, lastSeen: m.clock.Now(), stop: func() {}}
	if m.autoRun {
		ctx, stop := context.WithCancel(m.ctx)
		entry.stop = stop
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			s.Run(ctx)
		}()
	}

	m.mu.Lock()
	m.sessions[s.ID()] = entry
	total := len(m.sessions)
	m.mu.Unlock()

	slog.Info("session created", "session_id", s.ID(), "active", total)
	return s
}

// Get returns a live session and marks it as used
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	entry.lastSeen = m.clock.Now()
	return entry.session, true
}

// Delete stops and removes a session
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	entry, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return false
	}
	entry.stop()
	entry.session.Close()
	return true
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Reap removes sessions idle for longer than the TTL as of now and
// returns how many were removed.
func (m *Manager) Reap(now time.Time) int {
	if m.opts.TTL <= 0 {
		return 0
	}

	m.mu.Lock()
	var expired []*managed
	for id, entry := range m.sessions {
		if now.Sub(entry.lastSeen) > m.opts.TTL {
			expired = append(expired, entry)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, entry := range expired {
		entry.stop()
		entry.session.Close()
		slog.Info("session expired",
			"session_id", entry.session.ID(),
			"last_seen", humanize.RelTime(entry.lastSeen, now, "ago", "from now"),
		)
	}
	return len(expired)
}

func (m *Manager) reapLoop() {
	defer m.wg.Done()

	interval := max(m.opts.TTL/2, time.Second)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.Reap(m.clock.Now())
		}
	}
}

// Close stops every session and background loop
func (m *Manager) Close() {
	m.cancel()

	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*managed)
	m.mu.Unlock()

	for _, entry := range sessions {
		entry.session.Close()
	}
	m.wg.Wait()
}
