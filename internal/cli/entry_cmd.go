package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tidvakt/internal/cli/formatter"
	"github.com/alexanderramin/tidvakt/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Manage logged time",
	}

	cmd.AddCommand(
		newEntryLogCmd(app),
		newEntryListCmd(app),
		newEntryRemoveCmd(app),
		newEntryBillCmd(app),
		newEntrySumCmd(app),
	)

	return cmd
}

func newEntryLogCmd(app *App) *cobra.Command {
	var date, duration, customer, project, note string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log worked time manually",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a duration flag, collect the entry interactively.
			if duration == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("--hours is required in non-interactive mode")
				}
				if err := entryLogForm(&date, &duration, &customer, &project, &note); err != nil {
					return err
				}
			}

			day := app.Clock.Now()
			if date != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				day = parsed
			}

			minutes, err := domain.ParseHoursOrHM(duration)
			if err != nil {
				return err
			}

			e := &domain.TimeEntry{
				Date:     day,
				Minutes:  minutes,
				Customer: customer,
				Project:  project,
				Note:     note,
			}
			if err := app.Ledger.Add(context.Background(), e); err != nil {
				return err
			}

			fmt.Printf("Logged %s on %s\n",
				domain.FormatMinutesHuman(minutes), e.Date.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Calendar day (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&duration, "hours", "", "Worked time as H:MM or decimal hours (7:30, 7.5)")
	cmd.Flags().StringVar(&customer, "customer", "", "Customer name")
	cmd.Flags().StringVar(&project, "project", "", "Project name")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")

	return cmd
}

func entryLogForm(date, duration, customer, project, note *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Worked time (H:MM or decimal hours)").
				Placeholder("7:30").
				Value(duration).
				Validate(func(v string) error {
					_, err := domain.ParseHoursOrHM(v)
					return err
				}),
			huh.NewInput().
				Title("Date (YYYY-MM-DD, blank for today)").
				Placeholder("2025-06-16").
				Value(date).
				Validate(func(v string) error {
					if v == "" {
						return nil
					}
					_, err := time.Parse("2006-01-02", v)
					return err
				}),
			huh.NewInput().Title("Customer").Value(customer),
			huh.NewInput().Title("Project").Value(project),
			huh.NewInput().Title("Note").Value(note),
		),
	).WithShowHelp(false).Run()
}

func newEntryListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged entries grouped by day",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Ledger.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No entries logged.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatEntryList(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include billed entries")

	return cmd
}

func newEntryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Ledger.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed entry %s\n", args[0])
			return nil
		},
	}
}

func newEntryBillCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "bill ID",
		Short: "Mark an entry as billed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Ledger.MarkBilled(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Billed entry %s\n", args[0])
			return nil
		},
	}
}

func newEntrySumCmd(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "sum",
		Short: "Aggregate logged time over a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			fromDate, err := time.Parse("2006-01-02", from)
			if err != nil {
				return fmt.Errorf("invalid --from date %q: %w", from, err)
			}
			toDate := app.Clock.Now()
			if to != "" {
				toDate, err = time.Parse("2006-01-02", to)
				if err != nil {
					return fmt.Errorf("invalid --to date %q: %w", to, err)
				}
			}

			agg, err := app.Ledger.Aggregate(context.Background(), fromDate, toDate)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatAggregate(agg))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
