package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/gateway"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/report"
)

// dashboardCmd prints today's submission summary without the TUI.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show today's submission summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd); err != nil {
			return err
		}
		ctx := cmd.Context()

		data, err := app.Client.Dashboard(ctx)
		if err != nil && !gateway.IsUnauthorized(err) {
			// Older backends do not serve the summary endpoint; derive
			// the counts from the reports and roster instead.
			data, err = deriveDashboard(cmd, app)
		}
		if err != nil {
			return fmt.Errorf("failed to load dashboard: %w", err)
		}

		fmt.Printf("%s: %d\n", app.Tr.T("dashboard.totalMembers"), data.TotalMembers)
		fmt.Printf("%s: %d\n", app.Tr.T("dashboard.submittedToday"), data.SubmittedToday)
		fmt.Printf("%s: %d\n", app.Tr.T("dashboard.pendingToday"), data.PendingToday)
		return nil
	},
}

func deriveDashboard(cmd *cobra.Command, app *appContext) (*gateway.DashboardData, error) {
	ctx := cmd.Context()

	today := report.FormatDate(time.Now())
	reports, err := app.Client.Reports(ctx, today, 100, 0)
	if err != nil {
		return nil, err
	}
	users, err := app.Client.Users(ctx, 100, 0)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(reports))
	for _, r := range reports {
		seen[r.UserID] = true
	}

	data := &gateway.DashboardData{
		TotalMembers:   len(users),
		SubmittedToday: len(seen),
	}
	if data.TotalMembers > data.SubmittedToday {
		data.PendingToday = data.TotalMembers - data.SubmittedToday
	}
	return data, nil
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
