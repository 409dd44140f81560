package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tidvakt/internal/cli/formatter"
	"github.com/alexanderramin/tidvakt/internal/domain"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Submit and approve weekly timesheets",
	}

	cmd.AddCommand(
		newWeekStatusCmd(app),
		newWeekSubmitCmd(app),
		newWeekApproveCmd(app),
		newWeekReopenCmd(app),
		newWeekPendingCmd(app),
		newWeekApprovedCmd(app),
	)

	return cmd
}

// weekKeyArg resolves an optional week-key argument, defaulting to the week
// containing today. A plain date is also accepted.
func weekKeyArg(app *App, args []string) (string, error) {
	if len(args) == 0 {
		return domain.WeekKeyFor(app.Clock.Now()), nil
	}
	if d, err := time.Parse("2006-01-02", args[0]); err == nil {
		return domain.WeekKeyFor(d), nil
	}
	if _, _, err := domain.WeekRange(args[0]); err != nil {
		return "", err
	}
	return args[0], nil
}

func newWeekStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status [WEEK]",
		Short: "Show a week's workflow state and total",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := weekKeyArg(app, args)
			if err != nil {
				return err
			}
			st, err := app.Week.Status(context.Background(), key)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatWeekStatus(st))
			if st.State == domain.WeekOpen && st.TotalMinutes > 0 {
				fmt.Println(formatter.Dim("Not submitted yet. Run: tidvakt week submit " + key))
			}
			return nil
		},
	}
}

func newWeekSubmitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "submit [WEEK]",
		Short: "Submit a week for approval, locking its entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := weekKeyArg(app, args)
			if err != nil {
				return err
			}
			if _, err := app.Week.Submit(context.Background(), key); err != nil {
				return err
			}
			fmt.Printf("Submitted week %s\n", key)
			return nil
		},
	}
}

func newWeekApproveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "approve WEEK",
		Short: "Approve a submitted week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := weekKeyArg(app, args)
			if err != nil {
				return err
			}
			if err := app.Week.Approve(context.Background(), key); err != nil {
				return err
			}
			fmt.Printf("Approved week %s\n", key)
			return nil
		},
	}
}

func newWeekReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen WEEK",
		Short: "Reopen a week, discarding submission and approval",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := weekKeyArg(app, args)
			if err != nil {
				return err
			}
			if err := app.Week.Reopen(context.Background(), key); err != nil {
				return err
			}
			fmt.Printf("Reopened week %s\n", key)
			return nil
		},
	}
}

func newWeekPendingCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List weeks waiting for approval",
		RunE: func(cmd *cobra.Command, args []string) error {
			weeks, err := app.Week.ListPending(context.Background())
			if err != nil {
				return err
			}
			if len(weeks) == 0 {
				fmt.Println("No weeks pending approval.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatWeekList(weeks))
			return nil
		},
	}
}

func newWeekApprovedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "approved",
		Short: "List approved weeks",
		RunE: func(cmd *cobra.Command, args []string) error {
			weeks, err := app.Week.ListApproved(context.Background())
			if err != nil {
				return err
			}
			if len(weeks) == 0 {
				fmt.Println("No approved weeks.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatWeekList(weeks))
			return nil
		},
	}
}
