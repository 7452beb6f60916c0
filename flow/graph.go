// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flow

// Graph is an adjacency table of allowed forward transitions
type Graph map[ViewID][]ViewID

// Allows reports whether from → to is an edge of g
func (g Graph) Allows(from, to ViewID) bool {
	for _, next := range g[from] {
		if next == to {
			return true
		}
	}
	return false
}

// DefaultGraph returns the transitions reachable through on-screen buttons,
// automatic transitions and, where the bar is shown, the bottom navigation.
func DefaultGraph() Graph {
	g := Graph{
		ViewSplash:       {ViewHome},
		ViewHome:         {ViewProfile},
		ViewProfile:      {ViewHome, ViewScan},
		ViewScan:         {ViewProfile, ViewScanComplete, ViewSolution},
		ViewScanComplete: {ViewSolution},
		ViewSolution:     {ViewScan, ViewConfirmation, ViewWeekly, ViewCheckout},
		ViewConfirmation: {ViewSolution, ViewHome, ViewWeekly, ViewCheckout},
		ViewWeekly:       {ViewSolution, ViewCalendar},
		ViewCalendar:     {ViewWeekly, ViewCheckout},
		ViewCheckout:     {ViewSolution, ViewHome},
	}

	for _, from := range Order {
		if !NavVisible(from) {
			continue
		}
		for _, tab := range Tabs {
			if tab != from && !g.Allows(from, tab) {
				g[from] = append(g[from], tab)
			}
		}
	}
	return g
}
