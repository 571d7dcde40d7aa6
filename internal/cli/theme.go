package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/branxiety/gameplan-ai/internal/cli/formatter"
	"github.com/branxiety/gameplan-ai/internal/coach"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// gameplanHuhTheme returns a custom huh theme using the existing Nord palette.
func gameplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: warm accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorYellow)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorYellow)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

const requestPlaceholder = "Example: I play intramural basketball and want a " +
	"20-minute leg workout to improve my explosiveness."

// newProfileForm creates the huh form collecting all training preferences.
// The form writes directly into the provided profile.
func newProfileForm(p *coach.Profile) *huh.Form {
	minuteOptions := make([]huh.Option[int], 0, (coach.MaxMinutes-coach.MinMinutes)/coach.MinutesStep+1)
	for m := coach.MinMinutes; m <= coach.MaxMinutes; m += coach.MinutesStep {
		minuteOptions = append(minuteOptions, huh.NewOption(fmt.Sprintf("%d minutes", m), m))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[coach.Level]().
				Title("Experience level").
				Options(huh.NewOptions(coach.Levels()...)...).
				Value(&p.Level),
			huh.NewSelect[coach.Goal]().
				Title("Main goal").
				Options(huh.NewOptions(coach.Goals()...)...).
				Value(&p.Goal),
			huh.NewSelect[int]().
				Title("Session length (minutes)").
				Options(minuteOptions...).
				Value(&p.Minutes),
			huh.NewSelect[coach.Mood]().
				Title("How are you feeling today?").
				Options(huh.NewOptions(coach.Moods()...)...).
				Value(&p.Mood),
			huh.NewSelect[coach.FocusArea]().
				Title("Focus area").
				Options(huh.NewOptions(coach.FocusAreas()...)...).
				Value(&p.Focus),
		),
		huh.NewGroup(
			huh.NewText().
				Title("What kind of workout do you want today?").
				Placeholder(requestPlaceholder).
				Lines(4).
				CharLimit(600).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New(coach.EmptyRequestHint)
					}
					return nil
				}).
				Value(&p.Request),
		),
	).WithTheme(gameplanHuhTheme()).WithShowHelp(true)
}
