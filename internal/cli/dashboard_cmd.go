package cli

import (
	"fmt"

	"github.com/alexanderramin/tidvakt/internal/tui"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the live timer dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("dashboard requires an interactive terminal")
			}
			return tui.Run(tui.Deps{
				Timer:  app.Timer,
				Ledger: app.Ledger,
				Week:   app.Week,
				Clock:  app.Clock,
			})
		},
	}
}
