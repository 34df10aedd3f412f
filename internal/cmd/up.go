package cmd

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/config"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/tui"
)

// upCmd starts the interactive screen; it is also the default when the
// binary runs without a subcommand.
var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Start the interactive standup screen",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUp(cmd)
	},
}

func runUp(cmd *cobra.Command) error {
	app, err := newAppContext(cmd)
	if err != nil {
		return err
	}

	if !tui.IsInteractive() {
		return fmt.Errorf("the interactive screen requires a terminal; see 'standup --help' for scriptable commands")
	}

	// Theme edits in the config file take effect when the screen next
	// starts (after login or an unauthorized bounce).
	var theme atomic.Value
	theme.Store(app.Config.Theme)

	watchCtx, stopWatch := context.WithCancel(cmd.Context())
	defer stopWatch()
	go func() {
		_ = config.Watch(watchCtx, app.ConfigPath, app.Logger, func(cfg config.Config) {
			theme.Store(cfg.Theme)
		})
	}()

	return tui.Run(cmd.Context(), app.Store, app.Client, app.Tr, func() string {
		return theme.Load().(string)
	})
}

func init() {
	rootCmd.AddCommand(upCmd)
}
