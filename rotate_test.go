package lantern

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileSink(t *testing.T, maxBytes int64, backupCount int) *RotatingFileSink {
	t.Helper()
	s, err := NewRotatingFileSink(t.TempDir(), "app", PlainFormatter, maxBytes, backupCount)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func generationFiles(t *testing.T, s *RotatingFileSink) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRotatingFileSinkName(t *testing.T) {
	s := newTestFileSink(t, 1024, 2)
	base := filepath.Base(s.Path())
	assert.Regexp(t, `^app_\d{4}-\d{2}-\d{2}-\d{2}-\d{2}-\d{2}\.log$`, base)
}

func TestRotatingFileSinkAppends(t *testing.T) {
	s := newTestFileSink(t, 1024, 2)
	require.NoError(t, s.Write([]byte("first\n")))
	require.NoError(t, s.Write([]byte("second\n")))
	require.NoError(t, s.Flush())

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestRotatingFileSinkRotates(t *testing.T) {
	s := newTestFileSink(t, 50, 2)
	line := bytes.Repeat([]byte("x"), 29)
	line = append(line, '\n')

	// Each pair of writes crosses the bound and must roll the file.
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Write(line))
	}

	names := generationFiles(t, s)
	assert.Contains(t, names, filepath.Base(s.Path())+".1")
	assert.LessOrEqual(t, len(names), 3, "retained generations must not exceed backupCount+1")
}

func TestRotatingFileSinkDiscardsOldest(t *testing.T) {
	s := newTestFileSink(t, 10, 1)
	for i := 0; i < 6; i++ {
		require.NoError(t, s.Write([]byte("0123456789AB\n")))
	}

	names := generationFiles(t, s)
	base := filepath.Base(s.Path())
	assert.Contains(t, names, base)
	assert.Contains(t, names, base+".1")
	assert.NotContains(t, names, base+".2")
}

func TestRotatingFileSinkCurrentBounded(t *testing.T) {
	s := newTestFileSink(t, 40, 3)
	for i := 0; i < 20; i++ {
		require.NoError(t, s.Write([]byte("ten bytes\n")))
	}
	// The size counter resets on rotation, so the current file holds at most
	// one write past the bound.
	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), int64(50))
}

func TestRotatingFileSinkClosedWrite(t *testing.T) {
	s := newTestFileSink(t, 1024, 2)
	require.NoError(t, s.Close())
	err := s.Write([]byte("late\n"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "closed"))
}
