package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/tui"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Show the team and manage invitations",
	Long: `Show the team roster and manage member invitations.

Subcommands:
  list     List team members
  invite   Invite a new member by email
  invites  Show, resend or cancel pending invitations

Examples:
  standup team list
  standup team invite --email bob@example.com --role developer
  standup team invites
  standup team invites resend <id>`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List team members",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd); err != nil {
			return err
		}

		users, err := app.Client.Users(cmd.Context(), 100, 0)
		if err != nil {
			return fmt.Errorf("failed to load team: %w", err)
		}

		for _, u := range users {
			fmt.Printf("%-24s %-16s %s\n", u.Name, u.Role, u.Email)
		}
		return nil
	},
}

var teamInviteCmd = &cobra.Command{
	Use:   "invite",
	Short: "Invite a new member by email",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd); err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		role, _ := cmd.Flags().GetString("role")

		if email == "" {
			if !tui.IsInteractive() {
				return fmt.Errorf("--email is required in non-interactive mode")
			}
			input, err := tui.RunInviteForm(app.Tr)
			if err != nil {
				return err
			}
			email, role = input.Email, input.Role
		}

		if _, err := app.Client.InviteUser(cmd.Context(), email, role); err != nil {
			return fmt.Errorf("%s: %w", app.Tr.T("team.inviteError"), err)
		}

		fmt.Println(app.Tr.Tf("team.inviteSuccess", map[string]string{"email": email}))
		return nil
	},
}

var teamInvitesCmd = &cobra.Command{
	Use:   "invites",
	Short: "List pending invitations",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd); err != nil {
			return err
		}

		invites, err := app.Client.PendingInvites(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load invitations: %w", err)
		}

		if len(invites) == 0 {
			fmt.Println("No pending invitations.")
			return nil
		}
		for _, inv := range invites {
			fmt.Printf("%-36s %-28s %s\n", inv.ID, inv.Email, inv.Role)
		}
		return nil
	},
}

var teamInvitesResendCmd = &cobra.Command{
	Use:   "resend <id>",
	Short: "Resend a pending invitation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd); err != nil {
			return err
		}

		if err := app.Client.ResendInvite(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to resend invitation: %w", err)
		}
		fmt.Println("Invitation resent.")
		return nil
	},
}

var teamInvitesCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel a pending invitation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd)
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd); err != nil {
			return err
		}

		if err := app.Client.CancelInvite(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to cancel invitation: %w", err)
		}
		fmt.Println("Invitation cancelled.")
		return nil
	},
}

func init() {
	teamInviteCmd.Flags().String("email", "", "invitee email address")
	teamInviteCmd.Flags().String("role", "member", "invitee role")

	teamInvitesCmd.AddCommand(teamInvitesResendCmd)
	teamInvitesCmd.AddCommand(teamInvitesCancelCmd)

	teamCmd.AddCommand(teamListCmd)
	teamCmd.AddCommand(teamInviteCmd)
	teamCmd.AddCommand(teamInvitesCmd)
	rootCmd.AddCommand(teamCmd)
}
