package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, Level(false, false))
	assert.Equal(t, slog.LevelDebug, Level(true, false))
	assert.Equal(t, slog.LevelWarn, Level(false, true))
	assert.Equal(t, slog.LevelWarn, Level(true, true), "quiet should win over verbose")
}

func TestSetup(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Setup(&buf, false, true)

	ctx := context.Background()
	handler := slog.Default().Handler()
	assert.False(t, handler.Enabled(ctx, slog.LevelInfo), "INFO should be suppressed in quiet mode")
	assert.True(t, handler.Enabled(ctx, slog.LevelWarn))

	slog.Warn("disk almost full")
	assert.Contains(t, buf.String(), "disk almost full")
}
