// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	envPrefix          = "ALMIL_WEB_"
	defaultPort        = "8080"
	defaultEnvFile     = ".env"
	defaultContentDir  = "content"
	defaultBaseURL     = "https://www.almilsystems.in"
	defaultContactWait = 1500 * time.Millisecond
	maxContactRetries  = 5
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Site      SiteConfig
	Contact   ContactConfig
	Analytics AnalyticsConfig
}

// ServerConfig configures the HTTP listener and template handling.
type ServerConfig struct {
	Port         string
	Dev          bool
	Environment  string
	SigningKey   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Prod reports whether the server runs in production.
func (s ServerConfig) Prod() bool { return s.Environment == "prod" }

// SiteConfig holds public site settings.
type SiteConfig struct {
	BaseURL    string
	ContentDir string
}

// ContactConfig controls the lead submission boundary. An empty Endpoint
// keeps submissions simulated.
type ContactConfig struct {
	Endpoint string
	Delay    time.Duration
	Retries  int
}

// AnalyticsConfig holds client instrumentation identifiers.
type AnalyticsConfig struct {
	GA4MeasurementID string
	GTMContainerID   string
}

// ValidationError is returned when configuration values are invalid.
type ValidationError struct {
	fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// LoadEnvFile loads variables from path (default .env) without overriding
// ones already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads configuration using lookup (os.LookupEnv when nil).
func Load(lookup func(string) (string, bool)) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(key string) string {
		v, _ := lookup(envPrefix + key)
		return strings.TrimSpace(v)
	}

	var invalid []string
	cfg := Config{
		Server: ServerConfig{
			Port:         firstNonEmpty(get("PORT"), plain(lookup, "PORT"), defaultPort),
			Dev:          truthy(get("DEV")) || truthy(plain(lookup, "DEV")),
			Environment:  strings.ToLower(firstNonEmpty(get("ENV"), "local")),
			SigningKey:   get("SESSION_SIGNING_KEY"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Site: SiteConfig{
			BaseURL:    strings.TrimRight(firstNonEmpty(get("BASE_URL"), defaultBaseURL), "/"),
			ContentDir: firstNonEmpty(get("CONTENT_DIR"), defaultContentDir),
		},
		Contact: ContactConfig{
			Endpoint: get("CONTACT_ENDPOINT"),
			Delay:    defaultContactWait,
		},
		Analytics: AnalyticsConfig{
			GA4MeasurementID: get("GA_MEASUREMENT_ID"),
			GTMContainerID:   get("GTM_CONTAINER_ID"),
		},
	}

	if _, err := strconv.Atoi(cfg.Server.Port); err != nil {
		invalid = append(invalid, envPrefix+"PORT")
	}
	if raw := get("CONTACT_DELAY"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			invalid = append(invalid, envPrefix+"CONTACT_DELAY")
		} else {
			cfg.Contact.Delay = d
		}
	}
	if raw := get("CONTACT_RETRIES"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > maxContactRetries {
			invalid = append(invalid, envPrefix+"CONTACT_RETRIES")
		} else {
			cfg.Contact.Retries = n
		}
	}
	if ep := cfg.Contact.Endpoint; ep != "" && !strings.HasPrefix(ep, "http://") && !strings.HasPrefix(ep, "https://") {
		invalid = append(invalid, envPrefix+"CONTACT_ENDPOINT")
	}
	if cfg.Server.Prod() && cfg.Server.SigningKey == "" {
		invalid = append(invalid, envPrefix+"SESSION_SIGNING_KEY")
	}

	if len(invalid) > 0 {
		return cfg, &ValidationError{fields: invalid}
	}
	return cfg, nil
}

func plain(lookup func(string) (string, bool), key string) string {
	v, _ := lookup(key)
	return strings.TrimSpace(v)
}

func truthy(v string) bool {
	switch strings.ToLower(v) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
