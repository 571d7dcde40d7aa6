package cli

import (
	"fmt"
	"strings"

	"github.com/branxiety/gameplan-ai/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDetectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "detect <request...>",
		Short: "Show which sport a request mentions and where its hints come from",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			sport, ok := app.Detector.Detect(text)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.SportBadge(sport, ok))
			switch {
			case ok && app.Catalog.Has(sport):
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("exercise hints will come from the %s group", sport)))
			case ok:
				fmt.Fprintln(out, formatter.Dim("no exercise group for this sport; hints follow the chosen focus area"))
			default:
				fmt.Fprintln(out, formatter.Dim("hints follow the chosen focus area"))
			}
			return nil
		},
	}
}
