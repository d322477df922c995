package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatchReachesLiveSubscribers(t *testing.T) {
	bus := NewBus()
	var got []Key
	sub := bus.Subscribe(func(k Key) bool {
		got = append(got, k)
		return true
	})
	require.True(t, bus.Dispatch(ArrowRight))
	require.True(t, bus.Dispatch(Escape))
	require.Equal(t, []Key{ArrowRight, Escape}, got)

	sub.Close()
	require.False(t, bus.Dispatch(ArrowLeft))
	require.Len(t, got, 2)
	require.Zero(t, bus.Len())
}

func TestCloseIsIdempotent(t *testing.T) {
	var bus Bus
	sub := bus.Subscribe(func(Key) bool { return true })
	sub.Close()
	sub.Close()
	var nilSub *Subscription
	nilSub.Close()
	require.Zero(t, bus.Len())
}

func TestHandlerClosingDuringDispatchStopsLaterDelivery(t *testing.T) {
	bus := NewBus()
	calls := 0
	var first, second *Subscription
	h := func(Key) bool {
		calls++
		first.Close()
		second.Close()
		return true
	}
	first = bus.Subscribe(h)
	second = bus.Subscribe(h)
	bus.Dispatch(Escape)
	require.Equal(t, 1, calls)
}

func TestParseKey(t *testing.T) {
	k, ok := ParseKey("ArrowLeft")
	require.True(t, ok)
	require.Equal(t, ArrowLeft, k)
	_, ok = ParseKey("Enter")
	require.False(t, ok)
}
