// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session runs the styling wizard for one client.

A Session combines the navigation controller, the profile, selection and
reservation stores, and a timer engine under a single lock. Leaving a view
cancels the timers that view started and resets its screen state; entering
splash, scanComplete or checkout starts that screen's timers.

A Manager keeps sessions in memory, expires idle ones, and runs each
session's timers in real time unless it was given a manual clock.
*/
package session
