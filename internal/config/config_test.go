package config

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-dash/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.SlogFormat())
	assert.Equal(t, configs.SourceBuiltin, cfg.Dash.Source)
	assert.Equal(t, 5, cfg.Dash.PageSize)
	assert.Equal(t, 30*time.Second, cfg.Dash.RefreshInterval)
	assert.False(t, cfg.Psql.RunMigrations)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("DASH_SOURCE", "file")
	t.Setenv("DASH_DATASET", "/data/campaigns.yaml")
	t.Setenv("DASH_PAGE_SIZE", "10")
	t.Setenv("DASH_REFRESH_INTERVAL", "1m")
	t.Setenv("PSQL_MAX_CONNS", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, "/data/campaigns.yaml", cfg.Dash.Dataset)
	assert.Equal(t, 10, cfg.Dash.PageSize)
	assert.Equal(t, time.Minute, cfg.Dash.RefreshInterval)
	assert.Equal(t, int32(8), cfg.Psql.MaxConns)
}

func TestLoadRejectsInvalidDashboard(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown source":       {"DASH_SOURCE": "s3"},
		"file without dataset": {"DASH_SOURCE": "file"},
		"zero page size":       {"DASH_PAGE_SIZE": "0"},
		"page size too large":  {"DASH_PAGE_SIZE": "101"},
		"negative interval":    {"DASH_REFRESH_INTERVAL": "-1s"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedValue(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoggerFallbacks(t *testing.T) {
	c := configs.Logger{Level: "verbose", Format: "xml"}
	assert.Equal(t, slog.LevelInfo, c.SlogLevel())
	assert.Equal(t, "text", c.SlogFormat())
	assert.NotNil(t, c.NewLogger(io.Discard))

	assert.Equal(t, slog.LevelWarn, configs.Logger{Level: "WARNING"}.SlogLevel())
	assert.Equal(t, slog.LevelError, configs.Logger{Level: "err"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn+2, configs.Logger{Level: "WARN+2"}.SlogLevel())
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := configs.Logger{Level: "debug", Format: "json"}.NewLogger(&buf)
	logger.Debug("loaded", slog.Int("records", 15))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "loaded", line["msg"])
	assert.Equal(t, float64(15), line["records"])
}
