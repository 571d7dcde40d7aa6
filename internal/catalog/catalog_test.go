package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ContainsBodyAreasAndSports(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{
		"legs", "upper body", "core", "full body",
		"basketball", "soccer", "running", "tennis", "volleyball",
	}, c.Labels())
}

func TestLookup_KnownLabel(t *testing.T) {
	c := Default()

	got := c.Lookup("legs")

	assert.Equal(t, []string{
		"Bodyweight Squats",
		"Walking Lunges",
		"Glute Bridges",
		"Romanian Deadlifts (dumbbells or barbell)",
		"Calf Raises",
	}, got)
}

func TestLookup_IsCaseAndSpaceInsensitive(t *testing.T) {
	c := Default()

	assert.Equal(t, c.Lookup("upper body"), c.Lookup("  Upper Body "))
	assert.Equal(t, c.Lookup("core"), c.Lookup("CORE"))
}

func TestLookup_UnknownLabelFallsBackToFullBody(t *testing.T) {
	c := Default()

	got := c.Lookup("swimming")

	assert.Equal(t, c.Lookup(DefaultLabel), got)
	assert.Contains(t, got, "Burpees")
}

func TestLookup_ReturnsACopy(t *testing.T) {
	c := Default()

	first := c.Lookup("core")
	require.NotEmpty(t, first)
	first[0] = "mutated"

	assert.Equal(t, "Plank", c.Lookup("core")[0])
}

func TestHas_NoFallback(t *testing.T) {
	c := Default()

	assert.True(t, c.Has("basketball"))
	assert.True(t, c.Has("Full Body"))
	assert.False(t, c.Has("swimming"))
}

func TestNew_DuplicateLabelKeepsLastEntryAndOrder(t *testing.T) {
	c := New([]Group{
		{Label: "legs", Exercises: []string{"A"}},
		{Label: "Legs", Exercises: []string{"B"}},
	})

	assert.Equal(t, []string{"legs"}, c.Labels())
	assert.Equal(t, []string{"B"}, c.Lookup("legs"))
}
