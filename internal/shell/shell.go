// Package shell holds the tab state of the dashboard.
package shell

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTab = errors.New("unknown tab")

// Tab is one top-level page of the dashboard
type Tab struct {
	Key   string
	Label string
	Route string
}

// Shell tracks which tab is active. The tab set is fixed at construction.
type Shell struct {
	tabs   []Tab
	active int
}

// New creates a shell over tabs with the first tab active.
func New(tabs ...Tab) *Shell {
	return &Shell{tabs: append([]Tab(nil), tabs...)}
}

// DefaultTabs is the standard page set.
func DefaultTabs() []Tab {
	return []Tab{
		{Key: "bankers", Label: "Bankers", Route: "/dashboards"},
		{Key: "banker-directory", Label: "Banker Directory", Route: "/directory"},
		{Key: "lenders", Label: "Lenders", Route: "/lender"},
	}
}

func (s *Shell) Tabs() []Tab {
	return append([]Tab(nil), s.tabs...)
}

// Active returns the active tab. It is the zero Tab when the shell has no tabs.
func (s *Shell) Active() Tab {
	if len(s.tabs) == 0 {
		return Tab{}
	}
	return s.tabs[s.active]
}

func (s *Shell) ActiveIndex() int {
	return s.active
}

func (s *Shell) Select(key string) error {
	for i, t := range s.tabs {
		if t.Key == key {
			s.active = i
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownTab, key)
}

// Next activates the following tab, wrapping around.
func (s *Shell) Next() Tab {
	if len(s.tabs) > 0 {
		s.active = (s.active + 1) % len(s.tabs)
	}
	return s.Active()
}

// Prev activates the preceding tab, wrapping around.
func (s *Shell) Prev() Tab {
	if len(s.tabs) > 0 {
		s.active = (s.active - 1 + len(s.tabs)) % len(s.tabs)
	}
	return s.Active()
}

// FormFor picks the create form for a location path by the longest tab
// route that prefixes it.
func (s *Shell) FormFor(path string) (string, bool) {
	best, bestLen := "", -1
	for _, t := range s.tabs {
		if t.Route == "" || !hasRoutePrefix(path, t.Route) {
			continue
		}
		if len(t.Route) > bestLen {
			best, bestLen = t.Key, len(t.Route)
		}
	}
	return best, bestLen >= 0
}

func hasRoutePrefix(path, route string) bool {
	if !strings.HasPrefix(path, route) {
		return false
	}
	rest := path[len(route):]
	return rest == "" || rest[0] == '/' || rest[0] == '?' || strings.HasSuffix(route, "/")
}
