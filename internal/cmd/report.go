package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/gateway"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/report"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/tui"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Submit and manage daily reports",
	Long: `Submit and manage daily standup reports.

Subcommands:
  submit  Submit or update today's report
  list    List reports for a date
  delete  Delete one of your reports

Examples:
  standup report submit
  standup report submit --yesterday "Shipped the exporter" --today "Start on imports"
  standup report list --date 2026-08-28`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// reportSubmitCmd creates today's report, or updates it if one exists.
var reportSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit or update today's report",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd); err != nil {
			return err
		}
		ctx := cmd.Context()

		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = report.FormatDate(time.Now())
		} else if _, err := report.ParseDate(date); err != nil {
			return err
		}

		reports, err := app.Client.Reports(ctx, date, 100, 0)
		if err != nil {
			return fmt.Errorf("failed to load reports: %w", err)
		}
		existing := report.FindOwn(reports, app.Store.User().ID)

		draft := gateway.ReportDraft{ReportDate: date}
		draft.Yesterday, _ = cmd.Flags().GetString("yesterday")
		draft.TodayPlan, _ = cmd.Flags().GetString("today")
		draft.Issues, _ = cmd.Flags().GetString("issues")

		if draft.Yesterday == "" && draft.TodayPlan == "" {
			if !tui.IsInteractive() {
				return fmt.Errorf("--yesterday and --today are required in non-interactive mode")
			}
			filled, err := tui.RunReportForm(app.Tr, existing)
			if err != nil {
				return err
			}
			filled.ReportDate = date
			draft = filled
		}

		if missing := report.ValidateDraft(draft); len(missing) > 0 {
			return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
		}

		if existing != nil {
			if _, err := app.Client.UpdateReport(ctx, existing.ID, draft); err != nil {
				return fmt.Errorf("failed to update report: %w", err)
			}
		} else {
			if _, err := app.Client.CreateReport(ctx, draft); err != nil {
				return fmt.Errorf("failed to submit report: %w", err)
			}
		}

		fmt.Println(app.Tr.Tf("dailyReport.submitted", map[string]string{"date": date}))
		return nil
	},
}

// reportListCmd prints the reports for a date.
var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reports for a date (default today)",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd); err != nil {
			return err
		}

		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = report.FormatDate(time.Now())
		} else if _, err := report.ParseDate(date); err != nil {
			return err
		}

		reports, err := app.Client.Reports(cmd.Context(), date, 100, 0)
		if err != nil {
			return fmt.Errorf("failed to load reports: %w", err)
		}

		if len(reports) == 0 {
			fmt.Println(app.Tr.T("dailyReport.noReport"))
			return nil
		}

		for _, r := range reports {
			fmt.Printf("%s (%s)\n", r.UserName, r.ReportDate)
			printField(app.Tr.T("dailyReport.yesterdayWork"), r.Yesterday)
			printField(app.Tr.T("dailyReport.todayWork"), r.TodayPlan)
			if r.Issues != "" {
				printField(app.Tr.T("dailyReport.blockingIssues"), r.Issues)
			}
			fmt.Println()
		}
		return nil
	},
}

// reportEditCmd updates an existing report; unlike submit it refuses to
// create one.
var reportEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit your existing report for a date (default today)",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd); err != nil {
			return err
		}
		ctx := cmd.Context()

		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = report.FormatDate(time.Now())
		} else if _, err := report.ParseDate(date); err != nil {
			return err
		}

		reports, err := app.Client.Reports(ctx, date, 100, 0)
		if err != nil {
			return fmt.Errorf("failed to load reports: %w", err)
		}

		existing := report.FindOwn(reports, app.Store.User().ID)
		if existing == nil {
			return fmt.Errorf("no report for %s; use 'standup report submit'", date)
		}

		draft := gateway.ReportDraft{ReportDate: date}
		draft.Yesterday, _ = cmd.Flags().GetString("yesterday")
		draft.TodayPlan, _ = cmd.Flags().GetString("today")
		draft.Issues, _ = cmd.Flags().GetString("issues")

		if draft.Yesterday == "" && draft.TodayPlan == "" {
			if !tui.IsInteractive() {
				return fmt.Errorf("--yesterday and --today are required in non-interactive mode")
			}
			filled, err := tui.RunReportForm(app.Tr, existing)
			if err != nil {
				return err
			}
			filled.ReportDate = date
			draft = filled
		}

		if missing := report.ValidateDraft(draft); len(missing) > 0 {
			return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
		}

		if _, err := app.Client.UpdateReport(ctx, existing.ID, draft); err != nil {
			return fmt.Errorf("failed to update report: %w", err)
		}
		fmt.Println(app.Tr.Tf("dailyReport.submitted", map[string]string{"date": date}))
		return nil
	},
}

// reportDeleteCmd removes one of the caller's reports.
var reportDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete your report for a date (default today)",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd); err != nil {
			return err
		}
		ctx := cmd.Context()

		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = report.FormatDate(time.Now())
		} else if _, err := report.ParseDate(date); err != nil {
			return err
		}

		reports, err := app.Client.Reports(ctx, date, 100, 0)
		if err != nil {
			return fmt.Errorf("failed to load reports: %w", err)
		}

		own := report.FindOwn(reports, app.Store.User().ID)
		if own == nil {
			fmt.Println(app.Tr.T("dailyReport.noReport"))
			return nil
		}

		if err := app.Client.DeleteReport(ctx, own.ID); err != nil {
			return fmt.Errorf("failed to delete report: %w", err)
		}
		fmt.Printf("Deleted report for %s\n", date)
		return nil
	},
}

func printField(label, value string) {
	fmt.Printf("  %s: %s\n", label, value)
}

func init() {
	for _, c := range []*cobra.Command{reportSubmitCmd, reportEditCmd, reportListCmd, reportDeleteCmd} {
		c.Flags().String("date", "", "report date as YYYY-MM-DD (default today)")
	}
	for _, c := range []*cobra.Command{reportSubmitCmd, reportEditCmd} {
		c.Flags().String("yesterday", "", "what you worked on yesterday")
		c.Flags().String("today", "", "what you plan to work on today")
		c.Flags().String("issues", "", "blockers, if any")
	}

	reportCmd.AddCommand(reportSubmitCmd)
	reportCmd.AddCommand(reportEditCmd)
	reportCmd.AddCommand(reportListCmd)
	reportCmd.AddCommand(reportDeleteCmd)
	rootCmd.AddCommand(reportCmd)
}
