// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flow

// ChangeFunc is called after the current view changes
type ChangeFunc func(from, to ViewID)

// Controller tracks the current view and the back history.
//
// A Controller is not safe for concurrent use; callers serialize access.
// All methods are nil-safe.
type Controller struct {
	current   ViewID
	history   []ViewID
	listeners []ChangeFunc
}

// NewController returns a controller positioned on the splash screen with
// an empty history.
func NewController() *Controller {
	return NewControllerAt(ViewSplash)
}

// NewControllerAt returns a controller positioned on start
func NewControllerAt(start ViewID) *Controller {
	return &Controller{current: start}
}

// OnChange registers fn to run after every view change
func (c *Controller) OnChange(fn ChangeFunc) {
	if c == nil || fn == nil {
		return
	}
	c.listeners = append(c.listeners, fn)
}

// Current returns the view being shown
func (c *Controller) Current() ViewID {
	if c == nil {
		return ViewSplash
	}
	return c.current
}

// History returns a copy of the back stack, oldest first
func (c *Controller) History() []ViewID {
	if c == nil {
		return nil
	}
	out := make([]ViewID, len(c.history))
	copy(out, c.history)
	return out
}

// CanGoBack reports whether GoBack would change the view
func (c *Controller) CanGoBack() bool {
	return c != nil && len(c.history) > 0
}

// Navigate pushes the current view onto the history and shows target.
// Navigating to the view already shown does nothing.
func (c *Controller) Navigate(target ViewID) bool {
	if c == nil || target == c.current {
		return false
	}
	from := c.current
	c.history = append(c.history, from)
	c.current = target
	c.notify(from, target)
	return true
}

// GoBack shows the most recent history entry and removes it. With an
// empty history it does nothing.
func (c *Controller) GoBack() bool {
	if !c.CanGoBack() {
		return false
	}
	from := c.current
	last := len(c.history) - 1
	c.current = c.history[last]
	c.history = c.history[:last]
	c.notify(from, c.current)
	return true
}

// Replace shows target without recording the current view in the history.
// Used by automatic transitions.
func (c *Controller) Replace(target ViewID) bool {
	if c == nil || target == c.current {
		return false
	}
	from := c.current
	c.current = target
	c.notify(from, target)
	return true
}

func (c *Controller) notify(from, to ViewID) {
	for _, fn := range c.listeners {
		fn(from, to)
	}
}
