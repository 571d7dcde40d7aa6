package cli

import (
	"fmt"

	"github.com/branxiety/gameplan-ai/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [focus]",
		Short: "Show the exercise groups used for plan hints",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				fmt.Fprint(out, formatter.FormatCatalogEntry(app.Catalog, args[0]))
				return nil
			}
			fmt.Fprint(out, formatter.FormatCatalog(app.Catalog))
			return nil
		},
	}
}
