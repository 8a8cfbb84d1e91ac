package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_AllVariables verifies that every supported environment
// variable lands in the right config field.
func TestParseEnv_AllVariables(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("APP_TOKEN_DURATION", "12h")
	t.Setenv("APP_ADMIN_USERNAME", "root")
	t.Setenv("APP_ADMIN_PASSWORD", "secret")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9090")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/stock")
	t.Setenv("CONFIG", "/tmp/config.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "env-sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "root", cfg.App.AdminUsername)
	assert.Equal(t, "secret", cfg.App.AdminPassword)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost:5432/stock", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
}

// TestParseEnv_EmptyEnvironment verifies that an empty environment leaves the
// config zero-valued rather than failing.
func TestParseEnv_EmptyEnvironment(t *testing.T) {
	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

// TestParseEnv_InvalidDuration verifies that an unparseable duration value
// surfaces as an error instead of being silently skipped.
func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	var cfg StructuredConfig
	err := parseEnv(&cfg)

	assert.Error(t, err)
}
