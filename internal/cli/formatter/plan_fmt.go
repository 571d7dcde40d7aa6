package formatter

import (
	"fmt"
	"strings"

	"github.com/branxiety/gameplan-ai/internal/coach"
)

// FormatPlan renders a generated plan with its header and call metadata.
// The plan body is shown exactly as the model returned it.
func FormatPlan(p *coach.Plan) string {
	var b strings.Builder
	b.WriteString(Header("Your GamePlan"))
	b.WriteString("\n\n")
	b.WriteString(p.Markdown)
	if !strings.HasSuffix(p.Markdown, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("model %s · %s · exercise hints from %s: %s",
		p.Model,
		FormatLatency(p.LatencyMs),
		p.Focus,
		strings.Join(p.Exercises, ", "))))
	b.WriteString("\n")
	return b.String()
}

// FormatProfile renders the sticky training profile used by shell commands.
func FormatProfile(p coach.Profile) string {
	var b strings.Builder
	b.WriteString(Header("Training Profile"))
	b.WriteString("\n")
	b.WriteString(RenderTable(
		[]string{"Setting", "Value"},
		[][]string{
			{Dim("Level"), StyleFg.Render(string(p.Level))},
			{Dim("Goal"), StyleFg.Render(string(p.Goal))},
			{Dim("Length"), StyleFg.Render(FormatMinutes(p.Minutes))},
			{Dim("Mood"), MoodPill(p.Mood)},
			{Dim("Focus"), StyleFg.Render(string(p.Focus))},
		},
	))
	return b.String()
}
