package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	got, err := Generate("work")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "work-"))
	// Default NanoID is 21 characters plus prefix and separator.
	assert.Len(t, got, len("work-")+21)
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		got, err := Generate("fav")
		require.NoError(t, err)
		assert.False(t, seen[got], "duplicate ID generated: %s", got)
		seen[got] = true
	}
}

func TestMustGenerate(t *testing.T) {
	assert.NotPanics(t, func() {
		got := MustGenerate("session")
		assert.True(t, strings.HasPrefix(got, "session-"))
	})
}
