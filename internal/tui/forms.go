package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/gateway"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/i18n"
)

// LoginInput holds the credentials entered on the login form.
type LoginInput struct {
	Username string
	Password string
}

// RunLoginForm displays the interactive login form.
func RunLoginForm(tr *i18n.Translator) (LoginInput, error) {
	var input LoginInput

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(tr.T("login.username")).
			Validate(required(tr.T("login.usernameRequired"))).
			Value(&input.Username),
		huh.NewInput().
			Title(tr.T("login.password")).
			EchoMode(huh.EchoModePassword).
			Validate(required(tr.T("login.passwordRequired"))).
			Value(&input.Password),
	).Title(tr.T("login.title")))

	if err := form.Run(); err != nil {
		return LoginInput{}, fmt.Errorf("login form aborted: %w", err)
	}
	return input, nil
}

// RunReportForm displays the report submit/edit form, prefilled from an
// existing report when editing.
func RunReportForm(tr *i18n.Translator, existing *gateway.Report) (gateway.ReportDraft, error) {
	var draft gateway.ReportDraft
	if existing != nil {
		draft = gateway.ReportDraft{
			Yesterday: existing.Yesterday,
			TodayPlan: existing.TodayPlan,
			Issues:    existing.Issues,
		}
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewText().
			Title(tr.T("dailyReport.yesterdayWork")).
			Validate(required(tr.T("common.required"))).
			Value(&draft.Yesterday),
		huh.NewText().
			Title(tr.T("dailyReport.todayWork")).
			Validate(required(tr.T("common.required"))).
			Value(&draft.TodayPlan),
		huh.NewText().
			Title(tr.T("dailyReport.blockingIssues")).
			Value(&draft.Issues),
	).Title(tr.T("dailyReport.title")))

	if err := form.Run(); err != nil {
		return gateway.ReportDraft{}, fmt.Errorf("report form aborted: %w", err)
	}
	return draft, nil
}

// InviteInput holds the fields of the team invite form.
type InviteInput struct {
	Email string
	Role  string
}

// RunInviteForm displays the team invite form.
func RunInviteForm(tr *i18n.Translator) (InviteInput, error) {
	var input InviteInput

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(tr.T("team.email")).
			Validate(required(tr.T("common.required"))).
			Value(&input.Email),
		huh.NewSelect[string]().
			Title(tr.T("team.role")).
			Options(
				huh.NewOption("Developer", "developer"),
				huh.NewOption("Designer", "designer"),
				huh.NewOption("Project Manager", "project_manager"),
				huh.NewOption("QA Engineer", "qa_engineer"),
				huh.NewOption("Member", "member"),
			).
			Value(&input.Role),
	).Title(tr.T("team.inviteUser")))

	if err := form.Run(); err != nil {
		return InviteInput{}, fmt.Errorf("invite form aborted: %w", err)
	}
	return input, nil
}

// PasswordChangeInput holds the fields of the password change form.
type PasswordChangeInput struct {
	Current string
	New     string
	Confirm string
}

// RunPasswordChangeForm displays the password change form and enforces
// the confirmation match locally before anything reaches the backend.
func RunPasswordChangeForm(tr *i18n.Translator) (PasswordChangeInput, error) {
	var input PasswordChangeInput

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Current password").
			EchoMode(huh.EchoModePassword).
			Validate(required(tr.T("common.required"))).
			Value(&input.Current),
		huh.NewInput().
			Title("New password").
			EchoMode(huh.EchoModePassword).
			Validate(minLength(8)).
			Value(&input.New),
		huh.NewInput().
			Title("Confirm new password").
			EchoMode(huh.EchoModePassword).
			Validate(func(s string) error {
				if s != input.New {
					return fmt.Errorf("%s", tr.T("settings.password.mismatch"))
				}
				return nil
			}).
			Value(&input.Confirm),
	).Title(tr.T("settings.password.title")))

	if err := form.Run(); err != nil {
		return PasswordChangeInput{}, fmt.Errorf("password form aborted: %w", err)
	}
	return input, nil
}

func required(message string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}

func minLength(n int) func(string) error {
	return func(s string) error {
		if len(s) < n {
			return fmt.Errorf("must be at least %d characters", n)
		}
		return nil
	}
}

// IsInteractive returns true if stdin is a terminal (not piped)
func IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
