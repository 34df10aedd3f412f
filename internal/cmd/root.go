package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "standup",
	Short: "Daily standup client",
	Long: `standup is the terminal client for the daily standup service.

It manages your session with the standup backend, submits and edits
daily reports, shows the team's submissions, and handles member
invitations. Run it without a subcommand for the interactive screen.

The session token is stored locally; when the backend invalidates it,
the client signs you out and asks you to log in again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUp(cmd)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a context, so in-flight
// requests are cancelled on interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "standup backend base URL (overrides config)")
	rootCmd.PersistentFlags().String("config", "", "config file (default is ~/.config/daily-standup/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")
	rootCmd.SilenceUsage = true
}
