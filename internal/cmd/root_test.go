package cmd

import (
	"testing"
)

// TestRootSubcommands tests that all top-level commands are registered
func TestRootSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"login":     false,
		"logout":    false,
		"status":    false,
		"register":  false,
		"report":    false,
		"team":      false,
		"dashboard": false,
		"doctor":    false,
		"settings":  false,
		"up":        false,
		"version":   false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found on root command", name)
		}
	}
}

// TestRootPersistentFlags tests that global flags exist
func TestRootPersistentFlags(t *testing.T) {
	for _, name := range []string{"api-url", "config", "log-level", "log-format"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag '%s' not found on root command", name)
		}
	}
}

// TestLoginFlags tests that login accepts credential flags
func TestLoginFlags(t *testing.T) {
	if loginCmd.Flags().Lookup("username") == nil {
		t.Error("flag 'username' not found on login command")
	}
	if loginCmd.Flags().Lookup("password") == nil {
		t.Error("flag 'password' not found on login command")
	}
}

// TestReportSubcommands tests that report subcommands are registered
func TestReportSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"submit": false,
		"edit":   false,
		"list":   false,
		"delete": false,
	}

	for _, cmd := range reportCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found on report command", name)
		}
	}
}

// TestReportSubmitFlags tests that report submit has content flags
func TestReportSubmitFlags(t *testing.T) {
	for _, name := range []string{"date", "yesterday", "today", "issues"} {
		if reportSubmitCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag '%s' not found on report submit command", name)
		}
	}
}

// TestTeamSubcommands tests that team subcommands are registered
func TestTeamSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"list":    false,
		"invite":  false,
		"invites": false,
	}

	for _, cmd := range teamCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found on team command", name)
		}
	}
}

// TestSettingsSubcommands tests that settings subcommands are registered
func TestSettingsSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"theme":         false,
		"language":      false,
		"notifications": false,
		"name":          false,
		"password":      false,
	}

	for _, cmd := range settingsCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found on settings command", name)
		}
	}
}
