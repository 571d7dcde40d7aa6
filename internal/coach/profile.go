// Package coach holds the workout-planning domain: the user profile the form
// collects, the prompt construction, and the planner that turns a profile
// into a generated plan.
package coach

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

type Goal string

const (
	GoalGeneralFitness Goal = "General fitness"
	GoalStrength       Goal = "Strength"
	GoalHypertrophy    Goal = "Hypertrophy / muscle gain"
	GoalEndurance      Goal = "Endurance"
	GoalSportSpecific  Goal = "Sport-specific (e.g., basketball)"
)

type Mood string

const (
	MoodTired         Mood = "Tired / low energy"
	MoodNeutral       Mood = "Neutral"
	MoodMotivated     Mood = "Motivated"
	MoodVeryMotivated Mood = "Very motivated"
)

type FocusArea string

const (
	FocusFullBody  FocusArea = "Full body"
	FocusLegs      FocusArea = "Legs"
	FocusUpperBody FocusArea = "Upper body"
	FocusCore      FocusArea = "Core"
)

// Levels returns every experience level in display order.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// Goals returns every training goal in display order.
func Goals() []Goal {
	return []Goal{GoalGeneralFitness, GoalStrength, GoalHypertrophy, GoalEndurance, GoalSportSpecific}
}

// Moods returns every mood in display order.
func Moods() []Mood {
	return []Mood{MoodTired, MoodNeutral, MoodMotivated, MoodVeryMotivated}
}

// FocusAreas returns every focus area in display order.
func FocusAreas() []FocusArea {
	return []FocusArea{FocusFullBody, FocusLegs, FocusUpperBody, FocusCore}
}

// Session length bounds for the minutes slider.
const (
	MinMinutes     = 10
	MaxMinutes     = 90
	MinutesStep    = 5
	DefaultMinutes = 30
)

// ErrEmptyRequest flags a profile whose free-text request is blank.
var ErrEmptyRequest = errors.New("empty workout request")

// EmptyRequestHint is the user-facing nudge shown instead of calling the model.
const EmptyRequestHint = "Please type something about the workout you want."

// GenerationFailureMessage renders err the way the shells present a failed
// plan generation: one message, underlying cause included.
func GenerationFailureMessage(err error) string {
	return "Something went wrong while generating your plan: " + err.Error()
}

// Profile is everything the form collects about one session request.
type Profile struct {
	Level   Level
	Goal    Goal
	Minutes int
	Mood    Mood
	Focus   FocusArea
	Request string
}

// DefaultProfile returns the form's initial selections.
func DefaultProfile() Profile {
	return Profile{
		Level:   LevelBeginner,
		Goal:    GoalGeneralFitness,
		Minutes: DefaultMinutes,
		Mood:    MoodNeutral,
		Focus:   FocusFullBody,
	}
}

// Validate checks enum membership, the minutes range, and that the free-text
// request is non-blank. It returns ErrEmptyRequest for the latter so shells
// can show a hint instead of an error.
func (p Profile) Validate() error {
	if !slices.Contains(Levels(), p.Level) {
		return fmt.Errorf("unknown level %q (valid: %s)", p.Level, optionList(Levels()))
	}
	if !slices.Contains(Goals(), p.Goal) {
		return fmt.Errorf("unknown goal %q (valid: %s)", p.Goal, optionList(Goals()))
	}
	if !slices.Contains(Moods(), p.Mood) {
		return fmt.Errorf("unknown mood %q (valid: %s)", p.Mood, optionList(Moods()))
	}
	if !slices.Contains(FocusAreas(), p.Focus) {
		return fmt.Errorf("unknown focus area %q (valid: %s)", p.Focus, optionList(FocusAreas()))
	}
	if p.Minutes < MinMinutes || p.Minutes > MaxMinutes {
		return fmt.Errorf("session length %d is outside %d-%d minutes", p.Minutes, MinMinutes, MaxMinutes)
	}
	if strings.TrimSpace(p.Request) == "" {
		return ErrEmptyRequest
	}
	return nil
}

// ParseLevel matches s against the known levels, ignoring case and accepting
// a leading shorthand ("inter" resolves to Intermediate).
func ParseLevel(s string) (Level, error) {
	if v, ok := matchOption(Levels(), s); ok {
		return v, nil
	}
	return "", fmt.Errorf("unknown level %q (valid: %s)", s, optionList(Levels()))
}

// ParseGoal matches s against the known goals, ignoring case and accepting a
// leading shorthand ("hypertrophy" resolves to the full label).
func ParseGoal(s string) (Goal, error) {
	if v, ok := matchOption(Goals(), s); ok {
		return v, nil
	}
	return "", fmt.Errorf("unknown goal %q (valid: %s)", s, optionList(Goals()))
}

// ParseMood matches s against the known moods, ignoring case and accepting a
// leading shorthand ("tired" resolves to the full label).
func ParseMood(s string) (Mood, error) {
	if v, ok := matchOption(Moods(), s); ok {
		return v, nil
	}
	return "", fmt.Errorf("unknown mood %q (valid: %s)", s, optionList(Moods()))
}

// ParseFocusArea matches s against the known focus areas, ignoring case and
// accepting a leading shorthand ("upper" resolves to Upper body).
func ParseFocusArea(s string) (FocusArea, error) {
	if v, ok := matchOption(FocusAreas(), s); ok {
		return v, nil
	}
	return "", fmt.Errorf("unknown focus area %q (valid: %s)", s, optionList(FocusAreas()))
}

// ClampMinutes snaps n into the slider's range and its 5-minute step,
// rounding halves up.
func ClampMinutes(n int) int {
	if n < MinMinutes {
		return MinMinutes
	}
	if n > MaxMinutes {
		return MaxMinutes
	}
	return MinMinutes + (n-MinMinutes+MinutesStep/2)/MinutesStep*MinutesStep
}

// matchOption resolves s to an option by exact case-insensitive match first,
// then by prefix in display order.
func matchOption[T ~string](opts []T, s string) (T, bool) {
	for _, o := range opts {
		if strings.EqualFold(s, string(o)) {
			return o, true
		}
	}
	lowered := strings.ToLower(strings.TrimSpace(s))
	if lowered != "" {
		for _, o := range opts {
			if strings.HasPrefix(strings.ToLower(string(o)), lowered) {
				return o, true
			}
		}
	}
	var zero T
	return zero, false
}

func optionList[T ~string](opts []T) string {
	parts := make([]string, len(opts))
	for i, o := range opts {
		parts[i] = string(o)
	}
	return strings.Join(parts, ", ")
}
