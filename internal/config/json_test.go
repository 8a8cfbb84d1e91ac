package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── Duration ──────────────────────────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"duration string", `"12h"`, 12 * time.Hour, false},
		{"seconds string", `"30s"`, 30 * time.Second, false},
		{"nanoseconds number", `1000000000`, time.Second, false},
		{"invalid string", `"twelve hours"`, 0, true},
		{"bool", `true`, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tc.in), &d)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, d.Duration)
		})
	}
}

// ── parseJSON ─────────────────────────────────────────────────────────────────

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"token_sign_key": "json-sign-key",
			"token_issuer":   "json-issuer",
			"token_duration": "12h",
			"admin_username": "root",
			"admin_password": "secret",
		},
		"storage": map[string]any{
			"db": map[string]any{
				"dsn": "postgres://localhost:5432/stock",
			},
		},
		"server": map[string]any{
			"http_address":    "0.0.0.0:9090",
			"request_timeout": "45s",
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "root", cfg.App.AdminUsername)
	assert.Equal(t, "secret", cfg.App.AdminPassword)
	assert.Equal(t, "postgres://localhost:5432/stock", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_PartialConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{
			"http_address": "127.0.0.1:3000",
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:3000", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Zero(t, cfg.App.TokenDuration)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")

	assert.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = parseJSON(f.Name())
	assert.Error(t, err)
}
