package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_MissingSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	cfg, err := FromEnv()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "session", cfg.CookieName)
	assert.False(t, cfg.CookieSecure, "insecure cookies outside production")
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.GatewayTimeout)
	assert.Equal(t, 120*time.Second, cfg.ProcessingTimeout)
}

func TestFromEnv_ProductionDefaultsToSecureCookies(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("APP_ENV", "production")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.CookieSecure)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_COOKIE_NAME", "ezdocu_session")
	t.Setenv("SESSION_TTL", "12h")
	t.Setenv("PROCESSING_TIMEOUT", "90s")
	t.Setenv("AUTH_BASE_URL", "https://auth.internal")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "ezdocu_session", cfg.CookieName)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 90*time.Second, cfg.ProcessingTimeout)
	assert.Equal(t, "https://auth.internal", cfg.AuthBaseURL)
}

func TestFromEnv_BadDurationFallsBack(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "tomorrow")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}
