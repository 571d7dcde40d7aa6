package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/branxiety/gameplan-ai/internal/cli/formatter"
	"github.com/branxiety/gameplan-ai/internal/coach"
	prompt "github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"
)

// shellSession holds mutable state across the REPL loop.
type shellSession struct {
	app      *App
	profile  coach.Profile
	wantExit bool
}

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell with a sticky training profile and autocomplete",
		Long: `Start an interactive shell session. The training profile (level, goal,
session length, mood, focus) persists between plans, so you can tweak one
setting and generate again.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(app)
		},
	}
}

func runShell(app *App) error {
	sess := &shellSession{
		app:     app,
		profile: coach.DefaultProfile(),
	}

	fmt.Print(formatter.FormatShellWelcome())

	// History persistence wraps the executor so the session logic stays free
	// of file I/O.
	executor := func(input string) {
		appendShellHistory(input)
		sess.executor(input)
	}

	p := prompt.New(
		executor,
		sess.completer,
		prompt.OptionLivePrefix(sess.livePrefix),
		prompt.OptionHistory(loadShellHistory()),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			return sess.wantExit
		}),
		prompt.OptionTitle("gameplan shell"),
		prompt.OptionPrefixTextColor(prompt.Cyan),
		prompt.OptionSuggestionBGColor(prompt.DarkGray),
		prompt.OptionSuggestionTextColor(prompt.White),
		prompt.OptionSelectedSuggestionBGColor(prompt.Cyan),
		prompt.OptionSelectedSuggestionTextColor(prompt.Black),
		prompt.OptionDescriptionBGColor(prompt.DarkGray),
		prompt.OptionDescriptionTextColor(prompt.LightGray),
		prompt.OptionMaxSuggestion(10),
	)
	p.Run()
	return nil
}

func (s *shellSession) livePrefix() (string, bool) {
	return fmt.Sprintf("gameplan (%s %s) ❯ ",
		formatter.FormatMinutes(s.profile.Minutes),
		strings.ToLower(string(s.profile.Focus)),
	), true
}

func (s *shellSession) executor(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "profile":
		fmt.Print(formatter.FormatProfile(s.profile))
	case "set":
		s.execSet(args)
	case "catalog":
		s.execCatalog(args)
	case "detect":
		s.execDetect(args)
	case "plan", "generate":
		s.execPlan(strings.TrimSpace(strings.TrimPrefix(input, parts[0])))
	case "clear":
		fmt.Print("\033[H\033[2J")
	case "help":
		fmt.Print(formatter.FormatShellHelp())
	case "exit", "quit":
		fmt.Println(formatter.Dim("Good session. See you next time."))
		s.wantExit = true
	default:
		// Anything that is not a command is a workout request.
		s.execPlan(input)
	}
}

func (s *shellSession) execSet(args []string) {
	if len(args) < 2 {
		fmt.Println(formatter.StyleYellow.Render("Usage: set level|goal|minutes|mood|focus <value>"))
		return
	}

	field := strings.ToLower(args[0])
	value := strings.Join(args[1:], " ")

	var err error
	switch field {
	case "level":
		s.profile.Level, err = coach.ParseLevel(value)
	case "goal":
		s.profile.Goal, err = coach.ParseGoal(value)
	case "minutes":
		var n int
		n, err = strconv.Atoi(value)
		if err != nil {
			err = fmt.Errorf("invalid minutes %q — expected a number", value)
		} else {
			s.profile.Minutes = coach.ClampMinutes(n)
		}
	case "mood":
		s.profile.Mood, err = coach.ParseMood(value)
	case "focus":
		s.profile.Focus, err = coach.ParseFocusArea(value)
	default:
		fmt.Println(formatter.StyleYellow.Render(
			fmt.Sprintf("Unknown setting %q. Try level, goal, minutes, mood, or focus.", field)))
		return
	}

	if err != nil {
		fmt.Println(formatter.StyleRed.Render(fmt.Sprintf("Error: %v", err)))
		return
	}
	fmt.Print(formatter.FormatProfile(s.profile))
}

func (s *shellSession) execPlan(request string) {
	if strings.TrimSpace(request) == "" {
		fmt.Println(formatter.StyleYellow.Render(coach.EmptyRequestHint))
		return
	}

	profile := s.profile
	profile.Request = request

	stop := formatter.StartSpinner("Designing your GamePlan...")
	plan, err := s.app.Planner.GeneratePlan(context.Background(), profile)
	stop()

	if err != nil {
		fmt.Println(formatter.StyleRed.Render(coach.GenerationFailureMessage(err)))
		return
	}
	fmt.Print(formatter.FormatPlan(plan))
}

func (s *shellSession) execCatalog(args []string) {
	if len(args) > 0 {
		fmt.Print(formatter.FormatCatalogEntry(s.app.Catalog, strings.Join(args, " ")))
		return
	}
	fmt.Print(formatter.FormatCatalog(s.app.Catalog))
}

func (s *shellSession) execDetect(args []string) {
	if len(args) == 0 {
		fmt.Println(formatter.StyleYellow.Render("Usage: detect <text>"))
		return
	}
	sport, ok := s.app.Detector.Detect(strings.Join(args, " "))
	fmt.Println(formatter.SportBadge(sport, ok))
}

// ── autocomplete ─────────────────────────────────────────────────────────────

// shellCommands are the suggestions offered at the start of a line.
var shellCommands = []prompt.Suggest{
	{Text: "plan", Description: "Generate a plan from free text"},
	{Text: "set", Description: "Change a profile setting"},
	{Text: "profile", Description: "Show the current training profile"},
	{Text: "catalog", Description: "Show the exercise groups"},
	{Text: "detect", Description: "Show which sport a text mentions"},
	{Text: "help", Description: "Show all commands"},
	{Text: "clear", Description: "Clear the screen"},
	{Text: "exit", Description: "Leave the shell"},
}

var setFieldSuggestions = []prompt.Suggest{
	{Text: "level", Description: "Experience level"},
	{Text: "goal", Description: "Main goal"},
	{Text: "minutes", Description: "Session length in minutes"},
	{Text: "mood", Description: "Today's mood"},
	{Text: "focus", Description: "Focus area"},
}

func (s *shellSession) completer(d prompt.Document) []prompt.Suggest {
	text := d.TextBeforeCursor()
	fields := strings.Fields(text)

	if len(fields) == 0 {
		return shellCommands
	}

	if len(fields) == 1 && !strings.HasSuffix(text, " ") {
		return prompt.FilterHasPrefix(shellCommands, d.GetWordBeforeCursor(), true)
	}

	switch strings.ToLower(fields[0]) {
	case "set":
		return s.completeSet(d, fields, strings.HasSuffix(text, " "))
	case "catalog":
		return prompt.FilterHasPrefix(catalogSuggestions(s.app), d.GetWordBeforeCursor(), true)
	}

	// Anything else is free text for a workout request.
	return nil
}

func (s *shellSession) completeSet(d prompt.Document, fields []string, trailingSpace bool) []prompt.Suggest {
	word := d.GetWordBeforeCursor()

	typingField := (len(fields) == 1 && trailingSpace) || (len(fields) == 2 && !trailingSpace)
	if typingField {
		return prompt.FilterHasPrefix(setFieldSuggestions, word, true)
	}

	return prompt.FilterHasPrefix(setValueSuggestions(strings.ToLower(fields[1])), word, true)
}

func setValueSuggestions(field string) []prompt.Suggest {
	var out []prompt.Suggest
	switch field {
	case "level":
		for _, v := range coach.Levels() {
			out = append(out, prompt.Suggest{Text: string(v)})
		}
	case "goal":
		for _, v := range coach.Goals() {
			out = append(out, prompt.Suggest{Text: string(v)})
		}
	case "minutes":
		for m := coach.MinMinutes; m <= coach.MaxMinutes; m += coach.MinutesStep {
			out = append(out, prompt.Suggest{Text: strconv.Itoa(m)})
		}
	case "mood":
		for _, v := range coach.Moods() {
			out = append(out, prompt.Suggest{Text: string(v)})
		}
	case "focus":
		for _, v := range coach.FocusAreas() {
			out = append(out, prompt.Suggest{Text: string(v)})
		}
	}
	return out
}

func catalogSuggestions(app *App) []prompt.Suggest {
	labels := app.Catalog.Labels()
	out := make([]prompt.Suggest, 0, len(labels))
	for _, l := range labels {
		out = append(out, prompt.Suggest{Text: l})
	}
	return out
}
