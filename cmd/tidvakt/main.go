package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/tidvakt/internal/cli"
	"github.com/alexanderramin/tidvakt/internal/db"
	"github.com/alexanderramin/tidvakt/internal/domain"
	"github.com/alexanderramin/tidvakt/internal/repository"
	"github.com/alexanderramin/tidvakt/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tidvakt/tidvakt.db
	dbPath := os.Getenv("TIDVAKT_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tidvakt", "tidvakt.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	entryRepo := repository.NewSQLiteEntryRepo(database)
	timerRepo := repository.NewSQLiteTimerRepo(database)
	submissionRepo := repository.NewSQLiteSubmissionRepo(database)
	reminderRepo := repository.NewSQLiteReminderRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	clock := domain.SystemClock{}

	// The watch loop surfaces notifications and telemetry on stderr;
	// TIDVAKT_DEBUG=1 enables telemetry for every invocation.
	notifier := service.NewLogNotifier(os.Stderr)
	var observerOut io.Writer
	if os.Getenv("TIDVAKT_DEBUG") != "" {
		observerOut = os.Stderr
	}
	observer := service.NewLogObserver(observerOut)

	// Wire services
	weekSvc := service.NewWeekService(submissionRepo, entryRepo, clock)
	app := &cli.App{
		Ledger:    service.NewLedgerService(entryRepo, weekSvc, clock),
		Timer:     service.NewTimerService(timerRepo, settingsRepo, weekSvc, uow, clock, notifier, observer),
		Week:      weekSvc,
		Reminders: service.NewReminderService(reminderRepo, settingsRepo, clock, notifier, observer),
		Settings:  settingsRepo,
		Clock:     clock,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
