package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/health"
)

// doctorCmd diagnoses the local setup: backend reachability, stored
// credentials, config file.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the local setup",
	Long: `Check everything the client depends on and report problems.

Checks:
  backend           The standup backend answers requests
  credentials-file  The stored token file is readable and private
  config-file       The config file parses

Exit code is non-zero when any check is unhealthy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		manager := health.NewManager()
		manager.AddChecker(health.NewBackendChecker(app.Client))
		manager.AddChecker(health.NewCredentialsChecker(app.Creds))
		manager.AddChecker(health.NewConfigChecker(app.ConfigPath))

		results := manager.Check(cmd.Context())

		names := make([]string, 0, len(results))
		for name := range results {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(health.Summarize(name, results[name]))
		}

		if health.Overall(results) == health.StatusUnhealthy {
			return fmt.Errorf("some checks failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
