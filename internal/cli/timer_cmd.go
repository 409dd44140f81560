package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tidvakt/internal/cli/formatter"
	"github.com/alexanderramin/tidvakt/internal/domain"
	"github.com/spf13/cobra"
)

// resolveTimerID accepts a full id, a unique id prefix, or nothing at all
// when exactly one timer is running.
func resolveTimerID(ctx context.Context, app *App, input string) (string, error) {
	timers, err := app.Timer.List(ctx)
	if err != nil {
		return "", err
	}

	if input == "" {
		switch len(timers) {
		case 0:
			return "", fmt.Errorf("no timer is running")
		case 1:
			return timers[0].ID, nil
		default:
			return "", fmt.Errorf("%d timers running, specify an ID", len(timers))
		}
	}

	var matches []string
	for _, t := range timers {
		if t.ID == input {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("timer not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("timer ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newTimerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run live timers",
	}

	cmd.AddCommand(
		newTimerStartCmd(app),
		newTimerPauseCmd(app),
		newTimerResumeCmd(app),
		newTimerStopCmd(app),
		newTimerTouchCmd(app),
		newTimerListCmd(app),
	)

	return cmd
}

func newTimerStartCmd(app *App) *cobra.Command {
	var customer, project, note string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Timer.Start(context.Background(), customer, project, note)
			if err != nil {
				return err
			}
			fmt.Printf("Started timer %s\n", t.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "Customer name")
	cmd.Flags().StringVar(&project, "project", "", "Project name")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")

	return cmd
}

func newTimerPauseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pause [ID]",
		Short: "Pause a running timer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTimerID(ctx, app, firstArg(args))
			if err != nil {
				return err
			}
			if err := app.Timer.Pause(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Paused timer %s\n", id[:8])
			return nil
		},
	}
}

func newTimerResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume [ID]",
		Short: "Resume a paused timer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTimerID(ctx, app, firstArg(args))
			if err != nil {
				return err
			}
			if err := app.Timer.Resume(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Resumed timer %s\n", id[:8])
			return nil
		},
	}
}

func newTimerStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop [ID]",
		Short: "Stop a timer and log the worked time",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTimerID(ctx, app, firstArg(args))
			if err != nil {
				return err
			}
			entry, err := app.Timer.Stop(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Logged %s on %s\n",
				domain.FormatMinutesHuman(entry.Minutes), entry.Date.Format("2006-01-02"))
			return nil
		},
	}
}

func newTimerTouchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "touch [ID]",
		Short: "Record activity on a timer to defer auto-pause",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTimerID(ctx, app, firstArg(args))
			if err != nil {
				return err
			}
			return app.Timer.RecordActivity(ctx, id)
		},
	}
}

func newTimerListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List running timers",
		RunE: func(cmd *cobra.Command, args []string) error {
			timers, err := app.Timer.List(context.Background())
			if err != nil {
				return err
			}
			if len(timers) == 0 {
				fmt.Println("No timer is running.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatTimerList(timers, app.Clock.Now()))
			return nil
		},
	}
}

func firstArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
