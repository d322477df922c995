// Package gallery tracks the image carousel and fullscreen lightbox of a
// product detail view.
package gallery

import (
	"errors"

	"almil.org/almil-web/internal/events"
)

// Mode is the gallery's presentation state.
type Mode int

const (
	Browsing Mode = iota
	Fullscreen
)

func (m Mode) String() string {
	if m == Fullscreen {
		return "fullscreen"
	}
	return "browsing"
}

var (
	// ErrOutOfRange is returned by Select for an index outside the image list.
	ErrOutOfRange = errors.New("gallery: image index out of range")
	// ErrFullscreen is returned by Select while the lightbox is open.
	ErrFullscreen = errors.New("gallery: selection is disabled in fullscreen")
)

// Gallery is owned by a single view and is not safe for concurrent use.
type Gallery struct {
	images []string
	index  int
	mode   Mode
	keys   *events.Bus
	sub    *events.Subscription
	closed bool
}

// New starts a gallery at the first image in browsing mode. keys may be nil
// when no keyboard source is attached.
func New(images []string, keys *events.Bus) *Gallery {
	cp := make([]string, len(images))
	copy(cp, images)
	return &Gallery{images: cp, keys: keys}
}

// Restore rebuilds a gallery from serialized view state (e.g. query
// parameters). Out-of-range indices fall back to 0.
func Restore(images []string, index int, fullscreen bool, keys *events.Bus) *Gallery {
	g := New(images, keys)
	if index >= 0 && index < len(g.images) {
		g.index = index
	}
	if fullscreen {
		g.OpenFullscreen()
	}
	return g
}

// Len is the number of images.
func (g *Gallery) Len() int { return len(g.images) }

// Index is the selected image position.
func (g *Gallery) Index() int { return g.index }

// Mode reports browsing or fullscreen.
func (g *Gallery) Mode() Mode { return g.mode }

// IsFullscreen reports whether the lightbox is open.
func (g *Gallery) IsFullscreen() bool { return g.mode == Fullscreen }

// CanBrowse reports whether previous/next controls should be shown.
func (g *Gallery) CanBrowse() bool { return len(g.images) > 1 }

// Current returns the selected image path.
func (g *Gallery) Current() string {
	if len(g.images) == 0 {
		return ""
	}
	return g.images[g.index]
}

// Images returns a copy of the image list.
func (g *Gallery) Images() []string {
	out := make([]string, len(g.images))
	copy(out, g.images)
	return out
}

// NextIndex is the index Next would select.
func (g *Gallery) NextIndex() int {
	if len(g.images) <= 1 {
		return g.index
	}
	return (g.index + 1) % len(g.images)
}

// PreviousIndex is the index Previous would select.
func (g *Gallery) PreviousIndex() int {
	if len(g.images) <= 1 {
		return g.index
	}
	return (g.index - 1 + len(g.images)) % len(g.images)
}

// Select jumps to image i. Only valid while browsing.
func (g *Gallery) Select(i int) error {
	if g.mode == Fullscreen {
		return ErrFullscreen
	}
	if i < 0 || i >= len(g.images) {
		return ErrOutOfRange
	}
	if g.closed {
		return nil
	}
	g.index = i
	return nil
}

// Next advances one image, wrapping from the last to the first.
func (g *Gallery) Next() {
	if g.closed {
		return
	}
	g.index = g.NextIndex()
}

// Previous steps back one image, wrapping from the first to the last.
func (g *Gallery) Previous() {
	if g.closed {
		return
	}
	g.index = g.PreviousIndex()
}

// OpenFullscreen opens the lightbox on the current image and binds
// ArrowRight, ArrowLeft and Escape while it stays open.
func (g *Gallery) OpenFullscreen() {
	if g.closed || g.mode == Fullscreen {
		return
	}
	g.mode = Fullscreen
	if g.keys != nil {
		g.sub = g.keys.Subscribe(g.handleKey)
	}
}

// CloseFullscreen returns to browsing and releases the key binding.
func (g *Gallery) CloseFullscreen() {
	if g.mode != Fullscreen {
		return
	}
	g.mode = Browsing
	g.unbind()
}

// Close tears the view down. Later transitions are ignored and the key
// binding, if any, is released.
func (g *Gallery) Close() {
	g.unbind()
	g.closed = true
}

func (g *Gallery) unbind() {
	if g.sub != nil {
		g.sub.Close()
		g.sub = nil
	}
}

func (g *Gallery) handleKey(k events.Key) bool {
	if g.closed || g.mode != Fullscreen {
		return false
	}
	switch k {
	case events.ArrowRight:
		g.Next()
	case events.ArrowLeft:
		g.Previous()
	case events.Escape:
		g.CloseFullscreen()
	default:
		return false
	}
	return true
}
