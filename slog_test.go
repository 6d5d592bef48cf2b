package lantern

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogHandlerRoutesLevels(t *testing.T) {
	l, buf := newBufferLogger(t, Config{MinLevel: DebugLevel})
	log := slog.New(NewSlogHandler(l))

	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")

	out := buf.String()
	assert.Contains(t, out, "DEBUG: d")
	assert.Contains(t, out, "INFO: i")
	assert.Contains(t, out, "WARNING: w")
	assert.Contains(t, out, "ERROR: e")
}

func TestSlogHandlerEnabled(t *testing.T) {
	l, _ := newBufferLogger(t, Config{MinLevel: WarningLevel})
	h := NewSlogHandler(l)

	ctx := context.Background()
	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))
	assert.True(t, h.Enabled(ctx, slog.LevelError))
}

func TestSlogHandlerAttrsAndGroups(t *testing.T) {
	l, buf := newBufferLogger(t, Config{})
	log := slog.New(NewSlogHandler(l)).With("job", "train").WithGroup("run")

	log.Info("step", "epoch", 7)

	out := buf.String()
	assert.Contains(t, out, "job=train")
	assert.Contains(t, out, "run.epoch=7")
}

func TestSlogLevelMapping(t *testing.T) {
	assert.Equal(t, DebugLevel, slogLevelToLantern(slog.LevelDebug))
	assert.Equal(t, InfoLevel, slogLevelToLantern(slog.LevelInfo))
	assert.Equal(t, WarningLevel, slogLevelToLantern(slog.LevelWarn))
	assert.Equal(t, ErrorLevel, slogLevelToLantern(slog.LevelError))
	assert.Equal(t, CriticalLevel, slogLevelToLantern(slog.LevelError+4))
}

func TestSlogHandlerSatisfiesInterface(t *testing.T) {
	var _ slog.Handler = (*SlogHandler)(nil)
	l, _ := newBufferLogger(t, Config{})
	require.NotNil(t, NewSlogHandler(l).WithGroup("g").WithAttrs([]slog.Attr{slog.String("k", "v")}))
}
