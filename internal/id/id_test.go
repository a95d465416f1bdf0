package id

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormat(t *testing.T) {
	t.Parallel()

	got := New()
	assert.Len(t, got, 26)
}

func TestNewMonotonicWithinBurst(t *testing.T) {
	t.Parallel()

	ids := make([]string, 100)
	for i := range ids {
		ids[i] = New()
	}

	require.True(t, sort.StringsAreSorted(ids), "burst of IDs must sort in generation order")

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
