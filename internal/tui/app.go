package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/gateway"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/i18n"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/session"
)

// Run drives the interactive application: restore the session, show the
// login form until a session exists, then run the main screen. When the
// backend invalidates the session mid-use, the user is returned to the
// login form instead of the program exiting.
//
// themeFn is re-read each time the main screen starts, so config edits
// apply on the next login bounce without a restart.
func Run(ctx context.Context, store *session.Store, client *gateway.Client, tr *i18n.Translator, themeFn func() string) error {
	if store.Snapshot().State == session.StateUnknown {
		// A stale or rejected stored token degrades to the login form,
		// it is not fatal.
		if err := store.Initialize(ctx); err != nil && !session.IsProfileFetchFailed(err) {
			return err
		}
	}

	for {
		styles := StylesFor(themeFn())

		if store.Snapshot().ShouldShowLogin {
			if err := loginLoop(ctx, store, tr, styles); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return err
			}
		}

		model := NewModel(ctx, store, client, tr, styles)
		final, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run()
		if err != nil {
			return fmt.Errorf("run dashboard: %w", err)
		}

		if m, ok := final.(Model); ok && m.LoginRequired() {
			continue
		}
		return nil
	}
}

// loginLoop prompts for credentials until a login succeeds or the user
// aborts the form. Bad credentials re-prompt; network failures abort.
func loginLoop(ctx context.Context, store *session.Store, tr *i18n.Translator, styles Styles) error {
	for {
		input, err := RunLoginForm(tr)
		if err != nil {
			return err
		}

		err = store.Login(ctx, input.Username, input.Password)
		if err == nil {
			return nil
		}
		if session.IsLoginRejected(err) {
			fmt.Println(styles.Error.Render(tr.T("login.loginError")))
			continue
		}
		return err
	}
}
