package cli

import (
	"github.com/alexanderramin/tidvakt/internal/domain"
	"github.com/alexanderramin/tidvakt/internal/repository"
	"github.com/alexanderramin/tidvakt/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Ledger    service.LedgerService
	Timer     service.TimerService
	Week      service.WeekService
	Reminders service.ReminderService
	Settings  repository.SettingsRepo
	Clock     domain.Clock

	// IsInteractive reports whether stdin is a terminal; it gates the
	// interactive entry form.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tidvakt" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tidvakt",
		Short: "Time tracking with weekly approval and bill reminders",
	}

	root.AddCommand(
		newTimerCmd(app),
		newEntryCmd(app),
		newWeekCmd(app),
		newRemindCmd(app),
		newConfigCmd(app),
		newWatchCmd(app),
		newDashboardCmd(app),
	)

	return root
}
