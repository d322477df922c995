package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	require.Equal(t, "Mar 4, 2025", Date(time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)))
	require.Empty(t, Date(time.Time{}))
}

func TestTelHref(t *testing.T) {
	require.Equal(t, "tel:+919024268374", TelHref("+91 90242 68374"))
	require.Equal(t, "tel:02212345", TelHref("(022) 12-345"))
	require.Empty(t, TelHref("call us"))
}

func TestStep(t *testing.T) {
	require.Equal(t, "01", Step(1))
	require.Equal(t, "12", Step(12))
	require.Equal(t, 3, Plus(2, 1))
}
