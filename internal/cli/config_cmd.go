package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tidvakt/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and change timer and reminder settings",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigTimerCmd(app),
		newConfigQuietCmd(app),
	)

	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ts, err := app.Settings.TimerSettings(ctx)
			if err != nil {
				return err
			}
			rs, err := app.Settings.ReminderSettings(ctx)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Timer"))
			fmt.Printf("%-24s %d min\n", "Auto-stop after", ts.AutoStopAfterMinutes)
			fmt.Printf("%-24s %d min\n", "Auto-pause after", ts.AutoPauseAfterMinutes)
			fmt.Printf("%-24s %d min\n", "Remind every", ts.ReminderIntervalMinutes)
			fmt.Printf("%-24s %t\n", "Activity detection", ts.EnableActivityDetection)
			fmt.Printf("%-24s %t\n", "Multiple timers", ts.EnableMultipleTimers)

			fmt.Println()
			fmt.Println(formatter.Header("Reminders"))
			fmt.Printf("%-24s %s to %s\n", "Quiet hours", rs.QuietStart, rs.QuietEnd)
			fmt.Printf("%-24s %t\n", "Quiet weekends", rs.QuietWeekends)
			return nil
		},
	}
}

func newConfigTimerCmd(app *App) *cobra.Command {
	var autoStop, autoPause, interval int
	var activity, multi bool

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Change the timer policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ts, err := app.Settings.TimerSettings(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("auto-stop") {
				ts.AutoStopAfterMinutes = autoStop
			}
			if cmd.Flags().Changed("auto-pause") {
				ts.AutoPauseAfterMinutes = autoPause
			}
			if cmd.Flags().Changed("remind-every") {
				ts.ReminderIntervalMinutes = interval
			}
			if cmd.Flags().Changed("activity-detection") {
				ts.EnableActivityDetection = activity
			}
			if cmd.Flags().Changed("multiple-timers") {
				ts.EnableMultipleTimers = multi
			}

			if err := app.Settings.SaveTimerSettings(ctx, ts); err != nil {
				return err
			}
			fmt.Println("Timer settings updated.")
			return nil
		},
	}

	cmd.Flags().IntVar(&autoStop, "auto-stop", 0, "Auto-stop threshold in minutes")
	cmd.Flags().IntVar(&autoPause, "auto-pause", 0, "Auto-pause idle threshold in minutes")
	cmd.Flags().IntVar(&interval, "remind-every", 0, "Periodic reminder interval in minutes")
	cmd.Flags().BoolVar(&activity, "activity-detection", true, "Auto-pause idle timers")
	cmd.Flags().BoolVar(&multi, "multiple-timers", false, "Allow concurrent timers")

	return cmd
}

func newConfigQuietCmd(app *App) *cobra.Command {
	var start, end string
	var weekends bool

	cmd := &cobra.Command{
		Use:   "quiet",
		Short: "Change the reminder quiet hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rs, err := app.Settings.ReminderSettings(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("start") {
				rs.QuietStart = start
			}
			if cmd.Flags().Changed("end") {
				rs.QuietEnd = end
			}
			if cmd.Flags().Changed("weekends") {
				rs.QuietWeekends = weekends
			}

			if err := app.Settings.SaveReminderSettings(ctx, rs); err != nil {
				return err
			}
			fmt.Println("Reminder settings updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Quiet window start (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "Quiet window end (HH:MM)")
	cmd.Flags().BoolVar(&weekends, "weekends", true, "Suppress reminders on weekends")

	return cmd
}
