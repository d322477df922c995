// Package tabs models the overview/features/specifications panel switcher on
// product detail pages.
package tabs

import "strings"

// Tab is one of the fixed content panels.
type Tab string

const (
	Overview       Tab = "overview"
	Features       Tab = "features"
	Specifications Tab = "specifications"
)

// All lists the tabs in display order.
var All = []Tab{Overview, Features, Specifications}

// Label returns the button caption for t.
func (t Tab) Label() string {
	switch t {
	case Features:
		return "Technical Advantages"
	case Specifications:
		return "Specifications"
	default:
		return "Overview"
	}
}

// Valid reports whether t is a member of the enumeration.
func (t Tab) Valid() bool {
	switch t {
	case Overview, Features, Specifications:
		return true
	default:
		return false
	}
}

// Parse maps a raw value (e.g. a query parameter) to a tab, defaulting to Overview.
func Parse(raw string) Tab {
	t := Tab(strings.ToLower(strings.TrimSpace(raw)))
	if t.Valid() {
		return t
	}
	return Overview
}

// State tracks the active tab of one view.
type State struct {
	active Tab
}

// New returns a state on the default tab.
func New() *State { return &State{active: Overview} }

// Active returns the selected tab.
func (s *State) Active() Tab {
	if s == nil || s.active == "" {
		return Overview
	}
	return s.active
}

// SetActive selects t. Values outside the enumeration select Overview.
func (s *State) SetActive(t Tab) {
	if !t.Valid() {
		t = Overview
	}
	s.active = t
}

// Is reports whether t is active; handy in templates.
func (s *State) Is(t Tab) bool { return s.Active() == t }
