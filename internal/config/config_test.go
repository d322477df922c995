package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(mapLookup(nil))
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Server.Port)
	require.False(t, cfg.Server.Dev)
	require.Equal(t, "local", cfg.Server.Environment)
	require.Equal(t, "content", cfg.Site.ContentDir)
	require.Equal(t, 1500*time.Millisecond, cfg.Contact.Delay)
	require.Zero(t, cfg.Contact.Retries)
	require.Empty(t, cfg.Contact.Endpoint)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(mapLookup(map[string]string{
		"PORT":                        "9000",
		"ALMIL_WEB_DEV":               "1",
		"ALMIL_WEB_BASE_URL":          "https://example.org/",
		"ALMIL_WEB_CONTACT_ENDPOINT":  "https://leads.example.org/hook",
		"ALMIL_WEB_CONTACT_DELAY":     "250ms",
		"ALMIL_WEB_CONTACT_RETRIES":   "2",
		"ALMIL_WEB_GA_MEASUREMENT_ID": "G-TEST",
	}))
	require.NoError(t, err)
	require.Equal(t, "9000", cfg.Server.Port)
	require.True(t, cfg.Server.Dev)
	require.Equal(t, "https://example.org", cfg.Site.BaseURL)
	require.Equal(t, 250*time.Millisecond, cfg.Contact.Delay)
	require.Equal(t, 2, cfg.Contact.Retries)
	require.Equal(t, "G-TEST", cfg.Analytics.GA4MeasurementID)
}

func TestPrefixedPortWins(t *testing.T) {
	cfg, err := Load(mapLookup(map[string]string{"PORT": "9000", "ALMIL_WEB_PORT": "7000"}))
	require.NoError(t, err)
	require.Equal(t, "7000", cfg.Server.Port)
}

func TestLoadValidation(t *testing.T) {
	_, err := Load(mapLookup(map[string]string{
		"ALMIL_WEB_PORT":             "http",
		"ALMIL_WEB_CONTACT_DELAY":    "soon",
		"ALMIL_WEB_CONTACT_RETRIES":  "50",
		"ALMIL_WEB_CONTACT_ENDPOINT": "ftp://x",
		"ALMIL_WEB_ENV":              "prod",
	}))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.ElementsMatch(t, []string{
		"ALMIL_WEB_PORT",
		"ALMIL_WEB_CONTACT_DELAY",
		"ALMIL_WEB_CONTACT_RETRIES",
		"ALMIL_WEB_CONTACT_ENDPOINT",
		"ALMIL_WEB_SESSION_SIGNING_KEY",
	}, verr.Fields())
}

func TestLoadEnvFile(t *testing.T) {
	require.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ALMIL_WEB_TEST_ONLY_KEY=from-file\n"), 0o600))
	t.Setenv("ALMIL_WEB_TEST_ONLY_KEY", "")
	require.NoError(t, os.Unsetenv("ALMIL_WEB_TEST_ONLY_KEY"))
	require.NoError(t, LoadEnvFile(path))
	require.Equal(t, "from-file", os.Getenv("ALMIL_WEB_TEST_ONLY_KEY"))
}
