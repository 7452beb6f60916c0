// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package timing schedules delayed callbacks and progress sequences.

An Engine keeps every pending firing in one queue ordered by due time, with
ties broken by scheduling order. Each timer belongs to an owner; cancelling
an owner cancels everything it scheduled, and a cancelled timer never fires
again, even from inside its own tick.

Firings are driven either by Run, which sleeps until the next due time, or
by RunDue, which fires everything due at a given instant. Callbacks that
schedule new work do so relative to the firing's due time, so a clock that
jumps forward catches up in the same order real time would have produced:

	clock := timing.NewManualClock(start)
	e := timing.NewEngine(clock)
	e.StartProgress("scan", timing.ProgressSpec{Target: 100, Step: 2, Interval: 50 * time.Millisecond},
		onTick, onComplete)
	clock.Advance(3 * time.Second)
	e.RunDue(clock.Now())
*/
package timing
