package lantern

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContextRoundTrip(t *testing.T) {
	l, _ := newBufferLogger(t, Config{})

	ctx := WithContext(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
}

func TestFromContextFallsBack(t *testing.T) {
	got := FromContext(context.Background())
	require.NotNil(t, got)
	assert.Same(t, Default(), got)
}

func TestDefaultIsStable(t *testing.T) {
	assert.Same(t, Default(), Default())
}
