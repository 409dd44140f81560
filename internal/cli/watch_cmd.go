package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// newWatchCmd runs the tick loop in the foreground: every interval it
// evaluates timer policy and dispatches due bill reminders until interrupted.
func newWatchCmd(app *App) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the timer policy and reminder loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Printf("Watching every %s. Ctrl-C to stop.\n", interval)

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					fmt.Println("Stopped.")
					return nil
				case <-ticker.C:
					now := app.Clock.Now()
					if _, err := app.Timer.Tick(ctx, now); err != nil {
						fmt.Fprintf(os.Stderr, "tick: %v\n", err)
					}
					if _, err := app.Reminders.Dispatch(ctx, now); err != nil {
						fmt.Fprintf(os.Stderr, "dispatch: %v\n", err)
					}
				}
			}
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", time.Minute, "Time between policy passes")

	return cmd
}
