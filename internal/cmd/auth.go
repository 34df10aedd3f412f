package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/gateway"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/session"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/tui"
)

// loginCmd establishes a session with the standup backend
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the standup backend",
	Long: `Log in to the standup backend with your username and password.

The access token is stored locally and reused by later commands until
it expires or you log out. Without flags, the credentials are prompted
interactively.

Examples:
  standup login
  standup login --username alice --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		// Settle the stored-token state first; a stale token just means
		// we log in fresh.
		_ = app.Store.Initialize(ctx)
		if app.Store.IsAuthenticated() {
			user := app.Store.User()
			fmt.Printf("Already logged in as: %s\n", user.Name)
			return nil
		}

		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		if username == "" || password == "" {
			if !tui.IsInteractive() {
				return fmt.Errorf("--username and --password are required in non-interactive mode")
			}
			input, err := tui.RunLoginForm(app.Tr)
			if err != nil {
				return err
			}
			username, password = input.Username, input.Password
		}

		if err := app.Store.Login(ctx, username, password); err != nil {
			if session.IsLoginRejected(err) {
				return fmt.Errorf("%s", app.Tr.T("login.loginError"))
			}
			return fmt.Errorf("login failed: %w", err)
		}

		user := app.Store.User()
		fmt.Printf("Logged in as: %s\n", user.Name)
		return nil
	},
}

// logoutCmd ends the session
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and remove the stored token",
	Long: `Log out from the standup backend.

The stored token is always removed locally, even when the backend
cannot be reached.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		_ = app.Store.Initialize(ctx)
		app.Store.Logout(ctx)

		fmt.Println("Logged out.")
		return nil
	},
}

// statusCmd shows the current session
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session status",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		if err := app.Store.Initialize(cmd.Context()); err != nil && !session.IsProfileFetchFailed(err) {
			return err
		}

		snap := app.Store.Snapshot()
		if !snap.IsAuthenticated {
			fmt.Println("Not logged in.")
			fmt.Println("Use 'standup login' to log in.")
			return nil
		}

		fmt.Printf("Logged in as: %s\n", snap.User.Name)
		if snap.User.Email != "" {
			fmt.Printf("Email:        %s\n", snap.User.Email)
		}
		if snap.User.Role != "" {
			fmt.Printf("Role:         %s\n", snap.User.Role)
		}
		fmt.Printf("Backend:      %s\n", app.Client.BaseURL())
		return nil
	},
}

// registerCmd creates a new account from an invitation
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	Long: `Register a new account with the standup backend.

Examples:
  standup register --name Alice --email alice@example.com --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetString("role")

		if name == "" || email == "" || password == "" {
			return fmt.Errorf("--name, --email and --password are required")
		}

		user, err := app.Client.Register(cmd.Context(), gateway.RegisterRequest{
			Name:     name,
			Email:    email,
			Password: password,
			Role:     role,
		})
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		fmt.Printf("Registered: %s\n", user.Name)
		fmt.Println("Use 'standup login' to log in.")
		return nil
	},
}

func init() {
	loginCmd.Flags().String("username", "", "account username")
	loginCmd.Flags().String("password", "", "account password")

	registerCmd.Flags().String("name", "", "display name")
	registerCmd.Flags().String("email", "", "account email")
	registerCmd.Flags().String("password", "", "account password")
	registerCmd.Flags().String("role", "", "team role (e.g. developer)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(registerCmd)
}
