package formatter

import (
	"testing"

	"github.com/branxiety/gameplan-ai/internal/coach"
	"github.com/stretchr/testify/assert"
)

func TestHeader_UppercasesAndUnderlines(t *testing.T) {
	out := Header("legs")
	assert.Contains(t, out, "LEGS")
	assert.Contains(t, out, "────")
}

func TestSportBadge(t *testing.T) {
	assert.Contains(t, SportBadge("basketball", true), "● basketball")
	assert.Contains(t, SportBadge("", false), "no sport detected")
}

func TestMoodColor_UnknownFallsBackToDim(t *testing.T) {
	assert.Equal(t, StyleDim, MoodColor(coach.Mood("confused")))
}
