// Package format holds small presentation helpers exposed to templates.
package format

import (
	"fmt"
	"strings"
	"time"
)

// Date formats t for display, e.g. "Mar 4, 2025". Zero times render empty.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// TelHref turns a display phone number into a tel: URI, keeping a leading
// plus and digits only. Example: "+91 90242 68374" => "tel:+919024268374".
func TelHref(display string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(display) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "tel:" + b.String()
}

// Step renders a 1-based position as a two digit label: 1 => "01".
func Step(i int) string {
	return fmt.Sprintf("%02d", i)
}

// Plus renders one-based values for zero-based indices in templates.
func Plus(i, n int) int { return i + n }
