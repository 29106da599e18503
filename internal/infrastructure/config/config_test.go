package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from an empty directory so no config.toml or .env
// from the repository is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		chdirTemp(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "po-builder", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "stdout", cfg.Log.Output)
		assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
		assert.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
		assert.Equal(t, int64(1<<20), cfg.HTTP.MaxBodySize)
		assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
		assert.Contains(t, cfg.HTTP.CORSAllowMethods, "PATCH")
		assert.False(t, cfg.HTTP.RateLimitEnabled)
		assert.Equal(t, 300, cfg.HTTP.RateLimitRequests)
		assert.Equal(t, time.Minute, cfg.HTTP.RateLimitWindow)
		assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
		assert.Equal(t, time.Minute, cfg.Session.CleanupInterval)
		assert.Equal(t, 10000, cfg.Session.MaxSessions)
		assert.False(t, cfg.Swagger.Enabled)
		assert.False(t, cfg.Telemetry.Enabled)
		assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
		assert.Equal(t, "po-builder", cfg.Telemetry.ServiceName)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("loads values from environment variables with POB prefix", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("POB_APP_NAME", "po-test")
		t.Setenv("POB_APP_PORT", "9000")
		t.Setenv("POB_LOG_LEVEL", "debug")
		t.Setenv("POB_SESSION_TTL", "15m")
		t.Setenv("POB_SESSION_MAX_SESSIONS", "25")
		t.Setenv("POB_TELEMETRY_ENABLED", "true")
		t.Setenv("POB_TELEMETRY_SAMPLING_RATIO", "0.25")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "po-test", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 15*time.Minute, cfg.Session.TTL)
		assert.Equal(t, 25, cfg.Session.MaxSessions)
		assert.True(t, cfg.Telemetry.Enabled)
		assert.Equal(t, 0.25, cfg.Telemetry.SamplingRatio)
		assert.Equal(t, "po-test", cfg.Telemetry.ServiceName)
	})

	t.Run("reads config.toml", func(t *testing.T) {
		dir := chdirTemp(t)
		toml := "[app]\nport = \"7070\"\n\n[session]\nttl = \"30m\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0o644))

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.App.Port)
		assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	})

	t.Run("environment overrides config.toml", func(t *testing.T) {
		dir := chdirTemp(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[app]\nport = \"7070\"\n"), 0o644))
		t.Setenv("POB_APP_PORT", "6060")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "6060", cfg.App.Port)
	})

	t.Run("reads .env outside production", func(t *testing.T) {
		dir := chdirTemp(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("POB_APP_PORT=5050\n"), 0o644))
		t.Setenv("POB_APP_PORT", "")
		require.NoError(t, os.Unsetenv("POB_APP_PORT"))

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "5050", cfg.App.Port)
		_ = os.Unsetenv("POB_APP_PORT")
	})

	t.Run("production defaults to json logs", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("POB_APP_ENV", "production")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "json", cfg.Log.Format)
	})
}

func TestLoad_Validation(t *testing.T) {
	t.Run("sampling ratio out of range", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("POB_TELEMETRY_SAMPLING_RATIO", "1.5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sampling_ratio")
	})

	t.Run("wildcard CORS in production", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("POB_APP_ENV", "production")
		t.Setenv("POB_HTTP_CORS_ALLOW_ORIGINS", "*")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cors_allow_origins")
	})

	t.Run("open swagger in production", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("POB_APP_ENV", "production")
		t.Setenv("POB_SWAGGER_ENABLED", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "swagger")
	})

	t.Run("negative session ttl", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("POB_SESSION_TTL", "-1m")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "session.ttl")
	})
}
