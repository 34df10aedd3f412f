package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/config"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/i18n"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/tui"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change client settings",
	Long: `Show and change client settings.

Preference changes are written to the config file. Account changes
(display name, password) are sent to the backend.

Subcommands:
  theme          Set the color scheme: light, dark or auto
  language       Set the UI language
  notifications  Toggle the daily report reminder
  name           Change your display name
  password       Change your password

Examples:
  standup settings
  standup settings theme dark
  standup settings language en
  standup settings notifications off`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("Config file:  %s\n", app.ConfigPath)
		fmt.Printf("Backend:      %s\n", app.Config.APIBaseURL)
		fmt.Printf("Theme:        %s\n", app.Config.Theme)
		fmt.Printf("Language:     %s (%s)\n", app.Tr.Language(), i18n.LanguageName(app.Tr.Language()))
		fmt.Printf("Reminder:     %v\n", app.Config.NotifyDailyReport)
		return nil
	},
}

var settingsThemeCmd = &cobra.Command{
	Use:   "theme <light|dark|auto>",
	Short: "Set the color scheme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		theme := strings.ToLower(args[0])
		switch theme {
		case config.ThemeLight, config.ThemeDark, config.ThemeAuto:
		default:
			return fmt.Errorf("unknown theme %q (use light, dark or auto)", args[0])
		}

		app.Config.Theme = theme
		if err := app.Config.Save(app.ConfigPath); err != nil {
			return err
		}
		fmt.Printf("Theme set to %s\n", theme)
		return nil
	},
}

var settingsLanguageCmd = &cobra.Command{
	Use:   "language <code>",
	Short: "Set the UI language",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		lang := strings.ToLower(args[0])
		if !i18n.IsSupported(lang) {
			return fmt.Errorf("unsupported language %q (supported: %s)",
				args[0], strings.Join(i18n.Supported(), ", "))
		}

		app.Config.Language = lang
		if err := app.Config.Save(app.ConfigPath); err != nil {
			return err
		}
		fmt.Printf("Language set to %s (%s)\n", lang, i18n.LanguageName(lang))
		return nil
	},
}

var settingsNotificationsCmd = &cobra.Command{
	Use:   "notifications <on|off>",
	Short: "Toggle the daily report reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		var enabled bool
		switch strings.ToLower(args[0]) {
		case "on", "true":
			enabled = true
		case "off", "false":
			enabled = false
		default:
			return fmt.Errorf("expected on or off, got %q", args[0])
		}

		app.Config.NotifyDailyReport = enabled
		if err := app.Config.Save(app.ConfigPath); err != nil {
			return err
		}
		fmt.Printf("Daily report reminder: %v\n", enabled)
		return nil
	},
}

var settingsNameCmd = &cobra.Command{
	Use:   "name <new-name>",
	Short: "Change your display name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd); err != nil {
			return err
		}

		user := app.Store.User()
		if err := app.Client.UpdateName(cmd.Context(), args[0], user.Email); err != nil {
			return fmt.Errorf("failed to update name: %w", err)
		}
		fmt.Printf("Name changed to %s\n", args[0])
		return nil
	},
}

var settingsPasswordCmd = &cobra.Command{
	Use:   "password",
	Short: "Change your password",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd); err != nil {
			return err
		}

		if !tui.IsInteractive() {
			return fmt.Errorf("password changes require an interactive terminal")
		}

		input, err := tui.RunPasswordChangeForm(app.Tr)
		if err != nil {
			return err
		}

		if err := app.Client.ChangePassword(cmd.Context(), input.Current, input.New); err != nil {
			return fmt.Errorf("failed to change password: %w", err)
		}
		fmt.Println(app.Tr.T("settings.password.changed"))
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsThemeCmd)
	settingsCmd.AddCommand(settingsLanguageCmd)
	settingsCmd.AddCommand(settingsNotificationsCmd)
	settingsCmd.AddCommand(settingsNameCmd)
	settingsCmd.AddCommand(settingsPasswordCmd)
	rootCmd.AddCommand(settingsCmd)
}
