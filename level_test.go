package lantern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{"info", InfoLevel},
		{"INFO", InfoLevel},
		{"", InfoLevel},
		{"warning", WarningLevel},
		{"WARN", WarningLevel},
		{"error", ErrorLevel},
		{"critical", CriticalLevel},
		{"CRITICAL", CriticalLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLevelUnknown(t *testing.T) {
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLevelOrdering(t *testing.T) {
	assert.Less(t, DebugLevel, InfoLevel)
	assert.Less(t, InfoLevel, WarningLevel)
	assert.Less(t, WarningLevel, ErrorLevel)
	assert.Less(t, ErrorLevel, CriticalLevel)

	var zero Level
	assert.Equal(t, InfoLevel, zero)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "WARNING", WarningLevel.String())
	assert.Equal(t, "CRITICAL", CriticalLevel.String())
	assert.Equal(t, `"level":"ERROR"`, ErrorLevel.JSONField())
}

func TestLevelMarshalRoundTrip(t *testing.T) {
	for _, l := range []Level{DebugLevel, InfoLevel, WarningLevel, ErrorLevel, CriticalLevel} {
		text, err := l.MarshalText()
		require.NoError(t, err)

		var back Level
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, l, back)
	}
}
