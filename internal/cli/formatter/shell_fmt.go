package formatter

import (
	"fmt"
	"strings"
)

// FormatShellWelcome renders the welcome banner shown on shell startup.
func FormatShellWelcome() string {
	var b strings.Builder

	logo := StyleTeal.Render("  gameplan")
	b.WriteString("\n")
	b.WriteString(logo + "\n")
	b.WriteString(StyleDim.Render("  ─────────────────────────────") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Describe the workout you want and get a plan. Settings stick between plans.") + "\n")
	b.WriteString("\n")
	b.WriteString("  " + StyleGreen.Render("<anything>") + StyleDim.Render("        Describe a workout to generate a plan") + "\n")
	b.WriteString("  " + StyleGreen.Render("set focus legs") + StyleDim.Render("    Change a profile setting") + "\n")
	b.WriteString("  " + StyleGreen.Render("profile") + StyleDim.Render("           Show the current profile") + "\n")
	b.WriteString("  " + StyleGreen.Render("catalog") + StyleDim.Render("           Show the exercise groups") + "\n")
	b.WriteString("  " + StyleGreen.Render("help") + StyleDim.Render("              Show all commands") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Tab for autocomplete. Type 'exit' to leave.") + "\n")
	b.WriteString("\n")

	return b.String()
}

// helpCategory groups commands under a section header for the help display.
type helpCategory struct {
	title    string
	commands [][]string
}

// renderHelpCategory renders a single category section with header and command rows.
func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		b.WriteString(fmt.Sprintf("  %-24s %s\n",
			StyleGreen.Render(c[0]),
			StyleDim.Render(c[1])))
	}
	return b.String()
}

// FormatShellHelp renders the categorized command reference.
func FormatShellHelp() string {
	categories := []helpCategory{
		{
			title: "Planning",
			commands: [][]string{
				{"<request>", "Generate a plan from free text"},
				{"plan <request>", "Same, explicit form"},
				{"detect <text>", "Show which sport the text mentions"},
				{"catalog [focus]", "Show the exercise groups (or one group)"},
			},
		},
		{
			title: "Profile",
			commands: [][]string{
				{"profile", "Show the current training profile"},
				{"set level <v>", "Beginner, Intermediate, Advanced"},
				{"set goal <v>", "General, Strength, Hypertrophy, Endurance, Sport"},
				{"set minutes <n>", "Session length (10-90, steps of 5)"},
				{"set mood <v>", "Tired, Neutral, Motivated, Very motivated"},
				{"set focus <v>", "Full body, Legs, Upper body, Core"},
			},
		},
		{
			title: "Utilities",
			commands: [][]string{
				{"help", "Show this command reference"},
				{"clear", "Clear the screen"},
				{"exit / quit", "Leave the shell"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}

	b.WriteString("\n" + StyleDim.Render(
		"Shorthands work everywhere: 'set level inter', 'set goal sport'.\n"+
			"Profile changes apply to every plan until you change them again."))

	return RenderBox("Commands", b.String())
}
