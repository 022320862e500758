package arch

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownTerminals(t *testing.T) {
	names := KnownTerminals()

	require.NotEmpty(t, names)
	assert.True(t, slices.IsSorted(names), "terminal names should be sorted")
	assert.Len(t, names, len(terminals))
}

func TestLookupTerminal(t *testing.T) {
	first := KnownTerminals()[0]

	t.Run("by name", func(t *testing.T) {
		term, ok := LookupTerminal(first)
		require.True(t, ok)
		assert.Equal(t, first, term.Name)
		assert.Equal(t, terminals[first], term.Args)
	})

	t.Run("by path", func(t *testing.T) {
		term, ok := LookupTerminal(filepath.Join("opt", "bin", first))
		require.True(t, ok)
		assert.Equal(t, first, term.Name)
	})

	t.Run("unknown", func(t *testing.T) {
		_, ok := LookupTerminal("definitely-not-a-terminal")
		assert.False(t, ok)
	})

	t.Run("args are a copy", func(t *testing.T) {
		term, ok := LookupTerminal(first)
		require.True(t, ok)
		if len(term.Args) == 0 {
			t.Skip("terminal has no arguments")
		}
		term.Args[0] = "mutated"
		assert.NotEqual(t, "mutated", terminals[first][0])
	})
}

func TestPlatformValues(t *testing.T) {
	assert.NotEmpty(t, Platform())
	assert.NotEmpty(t, DefaultHashcatBinaryName())
	assert.NotNil(t, DetachAttr())
}
