package header

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScrollSequence(t *testing.T) {
	s := New("/")
	var scrolled, hidden []bool
	for _, off := range []float64{0, 30, 200, 180} {
		s.Observe(off)
		scrolled = append(scrolled, s.Scrolled)
		hidden = append(hidden, s.Hidden)
	}
	require.Equal(t, []bool{false, true, true, true}, scrolled)
	require.Equal(t, []bool{false, false, true, false}, hidden)
}

func TestNeverStuckHiddenAtTop(t *testing.T) {
	s := New("/about")
	for _, off := range []float64{0, 400, 800} {
		s.Observe(off)
	}
	require.True(t, s.Hidden)
	s.Observe(10)
	require.False(t, s.Hidden)
	require.False(t, s.Scrolled)
}

func TestShallowDownwardScrollKeepsHeader(t *testing.T) {
	s := New("/")
	s.Observe(0)
	s.Observe(100)
	require.False(t, s.Hidden)
	require.True(t, s.Scrolled)
}

func TestDetailRouteForcesSolidAndVisible(t *testing.T) {
	s := New("/products/sliding")
	require.True(t, s.Detail())
	require.True(t, s.Solid())
	s.Observe(0)
	s.Observe(500)
	require.False(t, s.Hidden)
	require.Contains(t, s.Classes(), "site-header--solid")
}

func TestIsDetailPath(t *testing.T) {
	require.True(t, IsDetailPath("/products/casement"))
	require.True(t, IsDetailPath("/products/casement/"))
	require.False(t, IsDetailPath("/products"))
	require.False(t, IsDetailPath("/products/"))
	require.False(t, IsDetailPath("/contact"))
}

func TestMenuToggleAndNavigate(t *testing.T) {
	s := New("/")
	s.ToggleMenu()
	require.True(t, s.MenuOpen)
	require.Contains(t, s.Classes(), "site-header--menu-open")
	s.Navigate("/products/fixed")
	require.False(t, s.MenuOpen)
	require.True(t, s.Solid())
	s.ToggleMenu()
	s.ToggleMenu()
	require.False(t, s.MenuOpen)
}

func TestTransparentAtTopOfLandingPage(t *testing.T) {
	s := New("/")
	s.Observe(0)
	require.False(t, s.Solid())
	require.Equal(t, "site-header", s.Classes())
}
