package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/branxiety/gameplan-ai/internal/cli/formatter"
	"github.com/branxiety/gameplan-ai/internal/coach"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	profile := coach.DefaultProfile()
	var minutes int

	cmd := &cobra.Command{
		Use:   "generate [request...]",
		Short: "Generate a workout plan without the interactive form",
		Long: `Generate a plan in one shot. The positional arguments form the free-text
workout request; flags set the rest of the training profile.

Example:
  gameplan generate --level inter --minutes 20 --focus legs \
    "leg day that helps my basketball game"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile.Request = strings.TrimSpace(strings.Join(args, " "))
			if profile.Request == "" {
				return errors.New(coach.EmptyRequestHint)
			}
			profile.Minutes = coach.ClampMinutes(minutes)

			stop := formatter.StartSpinner("Designing your GamePlan...")
			plan, err := app.Planner.GeneratePlan(context.Background(), profile)
			stop()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(plan))
			return nil
		},
	}

	cmd.Flags().Var(levelValue{&profile.Level}, "level", "Experience level (beginner, intermediate, advanced)")
	cmd.Flags().Var(goalValue{&profile.Goal}, "goal", "Main goal (general, strength, hypertrophy, endurance, sport)")
	cmd.Flags().IntVar(&minutes, "minutes", coach.DefaultMinutes, "Session length in minutes (10-90, snapped to steps of 5)")
	cmd.Flags().Var(moodValue{&profile.Mood}, "mood", "Today's mood (tired, neutral, motivated, very)")
	cmd.Flags().Var(focusValue{&profile.Focus}, "focus", "Focus area (full, legs, upper, core)")

	return cmd
}
