// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package timing

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ID identifies a scheduled sequence
type ID string

// ProgressSpec describes a counter that advances by Step every Interval
// until it reaches Target.
type ProgressSpec struct {
	Target   int
	Step     int
	Interval time.Duration
}

// Engine schedules progress sequences and one-shot delays against a Clock.
//
// Engine is not safe for concurrent use. Start, Cancel and RunDue must be
// called while holding the lock that is passed to Run.
type Engine struct {
	clock Clock
	queue queue
	byID  map[ID]*entry
	seq   uint64
	wake  chan struct{}

	// set while RunDue is firing, so callbacks schedule relative to the
	// firing's due time rather than the wall clock
	dispatching bool
	dispatchAt  time.Time
}

// NewEngine returns an engine reading time from clock. A nil clock means
// SystemClock.
func NewEngine(clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Engine{
		clock: clock,
		byID:  make(map[ID]*entry),
		wake:  make(chan struct{}, 1),
	}
}

func (e *Engine) Clock() Clock { return e.clock }

func (e *Engine) now() time.Time {
	if e.dispatching {
		return e.dispatchAt
	}
	return e.clock.Now()
}

func (e *Engine) schedule(ent *entry) ID {
	e.seq++
	ent.seq = e.seq
	ent.id = ID(uuid.NewString())
	e.byID[ent.id] = ent
	heap.Push(&e.queue, ent)

	select {
	case e.wake <- struct{}{}:
	default:
	}
	return ent.id
}

// StartProgress starts a counter at zero. Every spec.Interval the counter
// advances by spec.Step, clamped to spec.Target, and onTick receives the new
// value. When the counter reaches spec.Target the sequence ends and
// onComplete runs once.
//
// A non-positive Target, Step or Interval is a programming error and panics.
func (e *Engine) StartProgress(owner string, spec ProgressSpec, onTick func(int), onComplete func()) ID {
	if spec.Target <= 0 || spec.Step <= 0 || spec.Interval <= 0 {
		panic(fmt.Sprintf("timing: invalid progress spec %+v", spec))
	}
	return e.schedule(&entry{
		owner:      owner,
		due:        e.now().Add(spec.Interval),
		progress:   true,
		spec:       spec,
		onTick:     onTick,
		onComplete: onComplete,
	})
}

// StartDelay runs onFire once after delay
func (e *Engine) StartDelay(owner string, delay time.Duration, onFire func()) ID {
	if delay < 0 {
		delay = 0
	}
	return e.schedule(&entry{
		owner:  owner,
		due:    e.now().Add(delay),
		onFire: onFire,
	})
}

// Cancel stops a sequence before it completes. It reports whether the
// sequence was still pending.
func (e *Engine) Cancel(id ID) bool {
	ent, ok := e.byID[id]
	if !ok {
		return false
	}
	ent.cancelled = true
	delete(e.byID, id)
	return true
}

// CancelOwner cancels every pending sequence started by owner and returns
// how many were cancelled.
func (e *Engine) CancelOwner(owner string) int {
	n := 0
	for id, ent := range e.byID {
		if ent.owner == owner {
			ent.cancelled = true
			delete(e.byID, id)
			n++
		}
	}
	return n
}

// CancelAll cancels every pending sequence
func (e *Engine) CancelAll() int {
	n := len(e.byID)
	for id, ent := range e.byID {
		ent.cancelled = true
		delete(e.byID, id)
	}
	return n
}

// Active reports whether id is still pending
func (e *Engine) Active(id ID) bool {
	_, ok := e.byID[id]
	return ok
}

// Pending returns the number of sequences that have not completed or been
// cancelled.
func (e *Engine) Pending() int {
	return len(e.byID)
}

// NextDue returns when the earliest pending sequence fires
func (e *Engine) NextDue() (time.Time, bool) {
	e.dropCancelled()
	if len(e.queue) == 0 {
		return time.Time{}, false
	}
	return e.queue[0].due, true
}

func (e *Engine) dropCancelled() {
	for len(e.queue) > 0 && e.queue[0].cancelled {
		heap.Pop(&e.queue)
	}
}

// RunDue fires every sequence due at or before now, earliest first. Ties
// fire in the order they were scheduled. Sequences scheduled by a callback
// that are already due fire in the same call. It returns the number of
// callbacks fired.
func (e *Engine) RunDue(now time.Time) int {
	fired := 0
	for {
		e.dropCancelled()
		if len(e.queue) == 0 || e.queue[0].due.After(now) {
			break
		}
		ent := heap.Pop(&e.queue).(*entry)

		e.dispatching = true
		e.dispatchAt = ent.due
		e.fire(ent)
		e.dispatching = false
		fired++
	}
	return fired
}

func (e *Engine) fire(ent *entry) {
	if !ent.progress {
		delete(e.byID, ent.id)
		if ent.onFire != nil {
			ent.onFire()
		}
		return
	}

	ent.elapsed = min(ent.elapsed+ent.spec.Step, ent.spec.Target)
	if ent.onTick != nil {
		ent.onTick(ent.elapsed)
	}
	// onTick may have cancelled the sequence
	if ent.cancelled {
		return
	}

	if ent.elapsed >= ent.spec.Target {
		delete(e.byID, ent.id)
		if ent.onComplete != nil {
			ent.onComplete()
		}
		return
	}

	ent.due = ent.due.Add(ent.spec.Interval)
	e.seq++
	ent.seq = e.seq
	heap.Push(&e.queue, ent)
}

// Run fires due sequences in real time until ctx is done. mu guards the
// engine and everything its callbacks touch; Run holds it while firing.
func (e *Engine) Run(ctx context.Context, mu sync.Locker) {
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for {
		mu.Lock()
		if n := e.RunDue(e.clock.Now()); n > 0 {
			slog.Debug("timed callbacks fired", "count", n, "pending", e.Pending())
		}
		next, ok := e.NextDue()
		mu.Unlock()

		if ok {
			timer.Reset(max(next.Sub(e.clock.Now()), 0))
		}

		select {
		case <-ctx.Done():
			return
		case <-e.wake:
			timer.Stop()
		case <-timer.C:
		}
	}
}
