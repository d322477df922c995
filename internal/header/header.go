// Package header derives the site header's presentation flags from scroll
// position, route and menu interaction.
package header

import "strings"

const (
	// ScrolledOffset is the offset above which the header turns solid.
	ScrolledOffset = 20
	// HideOffset is the offset past which scrolling down hides the header.
	HideOffset = 150
)

// State is the header state for one mounted header.
type State struct {
	Scrolled bool
	Hidden   bool
	MenuOpen bool

	detail   bool
	previous float64
	observed bool
}

// New returns the initial state for path.
func New(path string) *State {
	return &State{detail: IsDetailPath(path)}
}

// IsDetailPath reports whether path is a product detail route (/products/{id}).
func IsDetailPath(path string) bool {
	rest, ok := strings.CutPrefix(path, "/products/")
	if !ok {
		return false
	}
	rest = strings.Trim(rest, "/")
	return rest != ""
}

// Detail reports whether the state belongs to a detail route.
func (s *State) Detail() bool { return s.detail }

// Solid reports whether the header draws its solid background. Detail routes
// always do.
func (s *State) Solid() bool { return s.detail || s.Scrolled }

// Observe feeds a new vertical scroll offset. The first observation only
// records the baseline for the hide rule.
func (s *State) Observe(offset float64) {
	if s.observed {
		delta := offset - s.previous
		s.Hidden = delta > 0 && offset > HideOffset
	}
	s.observed = true
	s.previous = offset
	s.Scrolled = offset > ScrolledOffset
	// the detail override wins over scroll hiding
	if s.detail {
		s.Hidden = false
	}
}

// ToggleMenu flips the mobile menu.
func (s *State) ToggleMenu() { s.MenuOpen = !s.MenuOpen }

// Navigate records activation of a navigation link: the mobile menu closes
// and the route class is re-evaluated.
func (s *State) Navigate(path string) {
	s.MenuOpen = false
	s.detail = IsDetailPath(path)
	if s.detail {
		s.Hidden = false
	}
}

// Classes returns the CSS modifier classes for the header element.
func (s *State) Classes() string {
	cls := []string{"site-header"}
	if s.Solid() {
		cls = append(cls, "site-header--solid")
	}
	if s.Hidden {
		cls = append(cls, "site-header--hidden")
	}
	if s.MenuOpen {
		cls = append(cls, "site-header--menu-open")
	}
	return strings.Join(cls, " ")
}
