package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tidvakt/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRemindCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Schedule and manage bill reminders",
	}

	cmd.AddCommand(
		newRemindAddCmd(app),
		newRemindListCmd(app),
		newRemindDueCmd(app),
		newRemindSnoozeCmd(app),
		newRemindSentCmd(app),
		newRemindCancelCmd(app),
	)

	return cmd
}

func newRemindAddCmd(app *App) *cobra.Command {
	var bill, due string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule the reminder ladder for a bill",
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := time.Parse("2006-01-02", due)
			if err != nil {
				return fmt.Errorf("invalid due date %q: %w", due, err)
			}

			batch, err := app.Reminders.Generate(context.Background(), bill, dueDate)
			if err != nil {
				return err
			}
			fmt.Printf("Scheduled %d reminders for bill %s\n", len(batch), bill)
			return nil
		},
	}

	cmd.Flags().StringVar(&bill, "bill", "", "Bill identifier")
	cmd.Flags().StringVar(&due, "due", "", "Bill due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("bill")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}

func newRemindListCmd(app *App) *cobra.Command {
	var bill string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scheduled reminders for a bill",
		RunE: func(cmd *cobra.Command, args []string) error {
			reminders, err := app.Reminders.ListByBill(context.Background(), bill)
			if err != nil {
				return err
			}
			if len(reminders) == 0 {
				fmt.Println("No reminders scheduled.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatReminderList(reminders))
			return nil
		},
	}

	cmd.Flags().StringVar(&bill, "bill", "", "Bill identifier")
	_ = cmd.MarkFlagRequired("bill")

	return cmd
}

func newRemindDueCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "List reminders due right now",
		RunE: func(cmd *cobra.Command, args []string) error {
			due, err := app.Reminders.GetDue(context.Background(), app.Clock.Now())
			if err != nil {
				return err
			}
			if len(due) == 0 {
				fmt.Println("Nothing due.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatReminderList(due))
			return nil
		},
	}
}

func newRemindSnoozeCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "snooze ID",
		Short: "Defer a reminder by a number of days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Reminders.Snooze(context.Background(), args[0], days); err != nil {
				return err
			}
			fmt.Printf("Snoozed reminder %s for %d days\n", args[0], days)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 1, "Days to defer")

	return cmd
}

func newRemindSentCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sent ID",
		Short: "Mark a reminder as handled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Reminders.MarkSent(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Marked reminder %s as sent\n", args[0])
			return nil
		},
	}
}

func newRemindCancelCmd(app *App) *cobra.Command {
	var bill string

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel all reminders for a bill",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Reminders.CancelAll(context.Background(), bill); err != nil {
				return err
			}
			fmt.Printf("Cancelled reminders for bill %s\n", bill)
			return nil
		},
	}

	cmd.Flags().StringVar(&bill, "bill", "", "Bill identifier")
	_ = cmd.MarkFlagRequired("bill")

	return cmd
}
