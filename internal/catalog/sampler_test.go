package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample_ReturnsDistinctExercisesFromEntry(t *testing.T) {
	c := Default()
	s := NewSampler(c)
	entry := c.Lookup("legs")

	got := s.Sample("legs", 3)

	require.Len(t, got, 3)
	seen := make(map[string]bool)
	for _, ex := range got {
		assert.Contains(t, entry, ex)
		assert.False(t, seen[ex], "duplicate exercise %q", ex)
		seen[ex] = true
	}
}

func TestSample_ZeroAndNegativeCountsReturnEmpty(t *testing.T) {
	s := NewSampler(Default())

	assert.Empty(t, s.Sample("legs", 0))
	assert.Empty(t, s.Sample("legs", -2))
}

func TestSample_CountAboveEntrySizeReturnsWholeEntry(t *testing.T) {
	c := Default()
	s := NewSampler(c)

	got := s.Sample("core", 50)

	assert.ElementsMatch(t, c.Lookup("core"), got)
}

func TestSample_UnknownLabelDrawsFromDefaultEntry(t *testing.T) {
	c := Default()
	s := NewSampler(c)
	fallback := c.Lookup(DefaultLabel)

	got := s.Sample("swimming", 3)

	require.Len(t, got, 3)
	for _, ex := range got {
		assert.Contains(t, fallback, ex)
	}
}

func TestSample_DoesNotMutateCatalog(t *testing.T) {
	c := Default()
	s := NewSampler(c)
	before := c.Lookup("full body")

	for i := 0; i < 20; i++ {
		s.Sample("full body", 2)
	}

	assert.Equal(t, before, c.Lookup("full body"))
}
