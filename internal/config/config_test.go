package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV", "HTTP_ADDR", "SESSION_SECRET_KEY", "TEACHERS_FILE",
		"STATIC_DIR", "DB_DSN", "CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Equal(t, ":8000", cfg.HTTPAddr)
	assert.Equal(t, "teachers.json", cfg.TeachersFile)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.False(t, cfg.JournalEnabled())
	assert.False(t, cfg.IsProduction())

	assert.True(t, cfg.InsecureSessionSecret)
	assert.Equal(t, devSessionSecret, cfg.SessionSecret)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("HTTP_ADDR", "127.0.0.1:9090")
	t.Setenv("SESSION_SECRET_KEY", "super-secret")
	t.Setenv("TEACHERS_FILE", "/etc/mergington/teachers.json")
	t.Setenv("DB_DSN", "postgres://localhost/mergington")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTPAddr)
	assert.Equal(t, "super-secret", cfg.SessionSecret)
	assert.False(t, cfg.InsecureSessionSecret)
	assert.Equal(t, "/etc/mergington/teachers.json", cfg.TeachersFile)
	assert.True(t, cfg.JournalEnabled())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestFromEnv_ProductionRequiresSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")

	_, err := FromEnv()

	assert.ErrorContains(t, err, "SESSION_SECRET_KEY")
}

func TestFromEnv_InvalidShutdownTimeout(t *testing.T) {
	clearEnv(t)

	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	_, err := FromEnv()
	assert.ErrorContains(t, err, "SHUTDOWN_TIMEOUT")

	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "must be positive")
}
