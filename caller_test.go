package lantern

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every exported producer must resolve its caller to the call site, not to a
// frame inside the logger. These tests pin the facade depth: a wrong skip
// count surfaces as logger.go or testing.go in the output.
func TestCallerResolution(t *testing.T) {
	tests := []struct {
		name string
		log  func(l *Logger)
	}{
		{"Info", func(l *Logger) { l.Info("m") }},
		{"Debug", func(l *Logger) { l.Debug("m") }},
		{"Warning", func(l *Logger) { l.Warning("m") }},
		{"Error", func(l *Logger) { l.Error("m") }},
		{"Critical", func(l *Logger) { l.Critical("m") }},
		{"Log", func(l *Logger) { l.Log(InfoLevel, "m") }},
		{"Infof", func(l *Logger) { l.Infof("m %d", 1) }},
		{"Errorf", func(l *Logger) { l.Errorf("m %d", 1) }},
		{"Exception", func(l *Logger) { l.Exception("m", errors.New("e")) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			l, err := New("test", Config{
				MinLevel:      DebugLevel,
				Console:       true,
				ConsoleOutput: buf,
			})
			require.NoError(t, err)

			tt.log(l)
			require.NoError(t, l.Shutdown())

			line := buf.String()
			assert.Contains(t, line, "caller_test.go",
				"record must carry the call site, got: %s", line)
			assert.NotContains(t, strings.SplitN(line, ":", 2)[0], "logger.go")
		})
	}
}

func TestCallerResolutionTimer(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := New("test", Config{Console: true, ConsoleOutput: buf})
	require.NoError(t, err)

	l.StartTimer("step")
	l.EndTimer("step")
	require.NoError(t, l.Shutdown())

	assert.Contains(t, buf.String(), "caller_test.go")
}

func TestResolveCallerUnknown(t *testing.T) {
	file, line, fn := resolveCaller(100)
	assert.Equal(t, callerUnknownFile, file)
	assert.Equal(t, callerUnknownLine, line)
	assert.Equal(t, callerUnknownFunc, fn)
}
