package cli

import (
	"github.com/branxiety/gameplan-ai/internal/coach"
	"github.com/spf13/pflag"
)

// The flag values below adapt the coach option parsers to pflag.Value so
// generate flags accept the same shorthands as the shell, e.g.
// --level inter or --goal sport.

var (
	_ pflag.Value = levelValue{}
	_ pflag.Value = goalValue{}
	_ pflag.Value = moodValue{}
	_ pflag.Value = focusValue{}
)

type levelValue struct{ v *coach.Level }

func (f levelValue) String() string { return string(*f.v) }
func (f levelValue) Type() string   { return "level" }

func (f levelValue) Set(s string) error {
	parsed, err := coach.ParseLevel(s)
	if err != nil {
		return err
	}
	*f.v = parsed
	return nil
}

type goalValue struct{ v *coach.Goal }

func (f goalValue) String() string { return string(*f.v) }
func (f goalValue) Type() string   { return "goal" }

func (f goalValue) Set(s string) error {
	parsed, err := coach.ParseGoal(s)
	if err != nil {
		return err
	}
	*f.v = parsed
	return nil
}

type moodValue struct{ v *coach.Mood }

func (f moodValue) String() string { return string(*f.v) }
func (f moodValue) Type() string   { return "mood" }

func (f moodValue) Set(s string) error {
	parsed, err := coach.ParseMood(s)
	if err != nil {
		return err
	}
	*f.v = parsed
	return nil
}

type focusValue struct{ v *coach.FocusArea }

func (f focusValue) String() string { return string(*f.v) }
func (f focusValue) Type() string   { return "focus" }

func (f focusValue) Set(s string) error {
	parsed, err := coach.ParseFocusArea(s)
	if err != nil {
		return err
	}
	*f.v = parsed
	return nil
}
