// Package config builds the process configuration from the environment.
// The signing secret is required; everything else has a workable default.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config is immutable after FromEnv; the rest of the process shares one copy.
type Config struct {
	Env  string // "production" or anything else
	Addr string // listen address for the HTTP server

	// SessionSecret signs the session cookie. It never leaves the process
	// and must never be logged.
	SessionSecret string
	CookieName    string
	CookieSecure  bool
	SessionTTL    time.Duration

	AuthBaseURL       string
	GatewayBaseURL    string
	ProcessingBaseURL string

	GatewayTimeout    time.Duration
	ProcessingTimeout time.Duration
}

// ErrMissingSecret makes a forgotten SESSION_SECRET fail startup instead of
// silently signing with an empty key.
var ErrMissingSecret = errors.New("SESSION_SECRET is not set")

// FromEnv reads configuration from the environment.
func FromEnv() (*Config, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, ErrMissingSecret
	}

	env := envOr("APP_ENV", "development")

	return &Config{
		Env:               env,
		Addr:              envOr("ADDR", ":8080"),
		SessionSecret:     secret,
		CookieName:        envOr("SESSION_COOKIE_NAME", "session"),
		CookieSecure:      boolOr("SESSION_COOKIE_SECURE", env == "production"),
		SessionTTL:        durationOr("SESSION_TTL", 24*time.Hour),
		AuthBaseURL:       envOr("AUTH_BASE_URL", "http://localhost:9000"),
		GatewayBaseURL:    envOr("GATEWAY_BASE_URL", "http://localhost:9001"),
		ProcessingBaseURL: envOr("PROCESSING_BASE_URL", "http://localhost:9002"),
		GatewayTimeout:    durationOr("GATEWAY_TIMEOUT", 30*time.Second),
		ProcessingTimeout: durationOr("PROCESSING_TIMEOUT", 120*time.Second),
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func boolOr(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func durationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
