// Package events dispatches key events to subscribers whose lifetime is bound
// to the view that created them.
package events

import "sync"

// Key names a keyboard key, using DOM KeyboardEvent.key values.
type Key string

const (
	ArrowRight Key = "ArrowRight"
	ArrowLeft  Key = "ArrowLeft"
	Escape     Key = "Escape"
)

// ParseKey maps a raw key name to a Key. Unknown names report false.
func ParseKey(raw string) (Key, bool) {
	switch Key(raw) {
	case ArrowRight, ArrowLeft, Escape:
		return Key(raw), true
	default:
		return "", false
	}
}

// Handler receives a key event and reports whether it handled it.
type Handler func(Key) bool

// Bus fans key events out to live subscriptions. The zero value is ready to use.
type Bus struct {
	mu   sync.Mutex
	next uint64
	subs map[uint64]Handler
}

// NewBus returns an empty bus.
func NewBus() *Bus { return &Bus{} }

// Subscribe registers h until the returned subscription is closed.
func (b *Bus) Subscribe(h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs == nil {
		b.subs = map[uint64]Handler{}
	}
	b.next++
	id := b.next
	b.subs[id] = h
	return &Subscription{bus: b, id: id}
}

// Dispatch delivers k to every live subscription and reports whether any
// handler consumed it. Handlers may close their own subscription.
func (b *Bus) Dispatch(k Key) bool {
	b.mu.Lock()
	ids := make([]uint64, 0, len(b.subs))
	for id := range b.subs {
		ids = append(ids, id)
	}
	b.mu.Unlock()

	handled := false
	for _, id := range ids {
		b.mu.Lock()
		h, ok := b.subs[id]
		b.mu.Unlock()
		// closed by an earlier handler in this dispatch
		if !ok {
			continue
		}
		if h(k) {
			handled = true
		}
	}
	return handled
}

// Len reports the number of live subscriptions.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	delete(b.subs, id)
	b.mu.Unlock()
}

// Subscription is a handle on a registered handler.
type Subscription struct {
	once sync.Once
	bus  *Bus
	id   uint64
}

// Close unregisters the handler. It is safe to call more than once.
func (s *Subscription) Close() {
	if s == nil {
		return
	}
	s.once.Do(func() { s.bus.remove(s.id) })
}
