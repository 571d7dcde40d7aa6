package formatter

import (
	"fmt"
	"strings"

	"github.com/branxiety/gameplan-ai/internal/coach"
	"github.com/charmbracelet/lipgloss"
)

// Nord-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#a3be8c")
	ColorYellow = lipgloss.Color("#ebcb8b")
	ColorRed    = lipgloss.Color("#bf616a")
	ColorBlue   = lipgloss.Color("#81a1c1")
	ColorTeal   = lipgloss.Color("#8fbcbb")
	ColorDim    = lipgloss.Color("#616e88")
	ColorFg     = lipgloss.Color("#e5e9f0")
	ColorHeader = lipgloss.Color("#d08770")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleTeal   = lipgloss.NewStyle().Foreground(ColorTeal)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// MoodColor returns the lipgloss style corresponding to the given mood.
func MoodColor(mood coach.Mood) lipgloss.Style {
	switch mood {
	case coach.MoodTired:
		return StyleYellow
	case coach.MoodNeutral:
		return StyleBlue
	case coach.MoodMotivated:
		return StyleGreen
	case coach.MoodVeryMotivated:
		return StyleTeal
	default:
		return StyleDim
	}
}

// SportBadge returns a colored detection result string such as "● basketball".
func SportBadge(sport string, detected bool) string {
	if !detected {
		return StyleDim.Render("● no sport detected")
	}
	return StyleGreen.Render("● " + sport)
}

// Header renders a section header with the header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
