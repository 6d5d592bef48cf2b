package lantern

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(t *testing.T, cfg Config) (*Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	cfg.Console = true
	cfg.ConsoleOutput = buf
	l, err := New("test", cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Shutdown() })
	return l, buf
}

func newFileLogger(t *testing.T, cfg Config) (*Logger, string) {
	t.Helper()
	dir := t.TempDir()
	cfg.File = true
	cfg.Dir = dir
	l, err := New("test", cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Shutdown() })
	return l, dir
}

func readCurrentFile(t *testing.T, l *Logger) string {
	t.Helper()
	require.NotEmpty(t, l.FileName())
	data, err := os.ReadFile(l.FileName())
	require.NoError(t, err)
	return string(data)
}

func TestNewRejectsEmptyConfig(t *testing.T) {
	_, err := New("test", Config{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoggerDisabledLevelSkipsWork(t *testing.T) {
	var filterCalls int
	l, buf := newBufferLogger(t, Config{
		MinLevel: WarningLevel,
		Filters:  []Filter{func(*Record) bool { filterCalls++; return true }},
	})

	l.Debug("ignored")
	l.Info("ignored too")
	assert.Zero(t, buf.Len())
	assert.Zero(t, filterCalls, "filters must not run for disabled levels")

	l.Warning("heard")
	assert.Contains(t, buf.String(), "heard")
	assert.Equal(t, 1, filterCalls)
}

func TestLoggerSetLevel(t *testing.T) {
	l, buf := newBufferLogger(t, Config{})

	l.Debug("quiet")
	assert.Zero(t, buf.Len())

	l.SetLevel(DebugLevel)
	l.Debug("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestLoggerSetLevelName(t *testing.T) {
	l, _ := newBufferLogger(t, Config{})

	require.NoError(t, l.SetLevelName("debug"))
	assert.Equal(t, DebugLevel, l.Level())

	err := l.SetLevelName("verbose")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, DebugLevel, l.Level(), "a rejected name must not change the level")
}

func TestLoggerRedactsSecrets(t *testing.T) {
	l, buf := newBufferLogger(t, Config{})

	l.Info("login with password hunter2")
	out := buf.String()
	assert.NotContains(t, out, "password")
	assert.Contains(t, out, DefaultMask)
}

func TestLoggerAttrs(t *testing.T) {
	l, buf := newBufferLogger(t, Config{})

	l.Info("epoch done", "epoch", 3, "loss", 0.125)
	out := buf.String()
	assert.Contains(t, out, "epoch done")
	assert.Contains(t, out, "epoch=3")
	assert.Contains(t, out, "loss=0.125")
}

func TestLoggerFormatVariants(t *testing.T) {
	l, buf := newBufferLogger(t, Config{})

	l.Infof("run %d of %d", 2, 5)
	assert.Contains(t, buf.String(), "run 2 of 5")
}

func TestLoggerTimer(t *testing.T) {
	l, buf := newBufferLogger(t, Config{})

	l.StartTimer("training")
	l.EndTimer("training")

	out := buf.String()
	assert.Contains(t, out, "training completed")
	assert.Contains(t, out, "elapsed_ms=")
	assert.Contains(t, out, "INFO")
}

func TestLoggerTimerNeverStarted(t *testing.T) {
	l, buf := newBufferLogger(t, Config{})

	l.EndTimer("missing")

	out := buf.String()
	assert.Contains(t, out, `timer "missing" was never started`)
	assert.Contains(t, out, "WARNING")
}

func TestLoggerException(t *testing.T) {
	l, buf := newBufferLogger(t, Config{})

	l.Exception("training step failed", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "training step failed")
	assert.Contains(t, out, "Exception (*errors.errorString): boom")
	assert.Contains(t, out, "ERROR")
}

func TestLoggerExceptionNilError(t *testing.T) {
	l, buf := newBufferLogger(t, Config{})

	l.Exception("no cause", nil)
	assert.Contains(t, buf.String(), "no cause")
}

func TestLoggerErrorAttrCapturesStack(t *testing.T) {
	l, buf := newBufferLogger(t, Config{})

	l.Error("checkpoint write failed", "err", errors.New("disk full"))

	out := buf.String()
	assert.Contains(t, out, "Exception (*errors.errorString): disk full")

	// The same attribute below ErrorLevel must not grow a trace.
	buf.Reset()
	l.Info("retrying", "err", errors.New("disk full"))
	assert.NotContains(t, buf.String(), "Exception")
}

func TestLoggerPlainFileOutput(t *testing.T) {
	l, _ := newFileLogger(t, Config{})

	l.Info("written to disk")
	require.NoError(t, l.Shutdown())

	content := readCurrentFile(t, l)
	assert.Contains(t, content, "INFO: written to disk")
	assert.Contains(t, content, "logger_test.go")
}

func TestLoggerStructuredFileOutput(t *testing.T) {
	l, _ := newFileLogger(t, Config{Structured: true})

	l.Info("metrics", "epoch", 3)
	require.NoError(t, l.Shutdown())

	lines := strings.Split(strings.TrimSpace(readCurrentFile(t, l)), "\n")
	require.Len(t, lines, 1)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &m))
	assert.Equal(t, "metrics", m["message"])
	assert.Equal(t, "INFO", m["level"])
	assert.Equal(t, float64(3), m["epoch"])
	assert.Contains(t, m, "time")
	assert.Contains(t, m, "file")
	assert.Contains(t, m, "line")
}

func TestLoggerRotationUnderLoad(t *testing.T) {
	dir := t.TempDir()
	buf := &bytes.Buffer{}
	l, err := New("train", Config{
		MinLevel:      InfoLevel,
		Console:       true,
		ConsoleOutput: buf,
		File:          true,
		Dir:           dir,
		MaxBytes:      100,
		BackupCount:   2,
	})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		l.Info("batch finished, loss steady")
	}
	require.NoError(t, l.Shutdown())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(entries), 2, "expected at least one rotation")
	require.LessOrEqual(t, len(entries), 3, "backup count must bound retained files")

	backups := 0
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".1") || strings.HasSuffix(e.Name(), ".2") {
			backups++
		}
	}
	assert.LessOrEqual(t, backups, 2)

	// Every message still reached the console.
	assert.Equal(t, 5, strings.Count(buf.String(), "batch finished"))
}

func TestLoggerAsyncSync(t *testing.T) {
	l, buf := newBufferLogger(t, Config{Async: true})

	for i := 0; i < 20; i++ {
		l.Info("async record", "i", i)
	}
	l.Sync()

	assert.Equal(t, 20, strings.Count(buf.String(), "async record"))
}

func TestLoggerShutdownDropsLateRecords(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := New("test", Config{Console: true, ConsoleOutput: buf, Async: true})
	require.NoError(t, err)

	l.Info("before")
	require.NoError(t, l.Shutdown())

	l.Info("after")
	assert.Contains(t, buf.String(), "before")
	assert.NotContains(t, buf.String(), "after")
}

func TestLoggerFileNameShape(t *testing.T) {
	l, dir := newFileLogger(t, Config{})

	name := filepath.Base(l.FileName())
	assert.Regexp(t, `^test_\d{4}-\d{2}-\d{2}-\d{2}-\d{2}-\d{2}\.log$`, name)
	assert.Equal(t, dir, filepath.Dir(l.FileName()))
}
