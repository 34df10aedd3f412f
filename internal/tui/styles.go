package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/config"
)

// Styles contains lipgloss styles for the TUI
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Muted    lipgloss.Style
	Border   lipgloss.Style
	Active   lipgloss.Style
	Help     lipgloss.Style
}

// StylesFor returns the style set for a theme name. ThemeAuto follows
// the terminal background.
func StylesFor(theme string) Styles {
	dark := theme == config.ThemeDark
	if theme == config.ThemeAuto {
		dark = lipgloss.HasDarkBackground()
	}
	if dark {
		return darkStyles()
	}
	return lightStyles()
}

func darkStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81")). // Light blue
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")), // Gray
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203")), // Red
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("84")), // Green
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("81")).
			Padding(1, 2),
		Active: lipgloss.NewStyle().
			Background(lipgloss.Color("81")).
			Foreground(lipgloss.Color("16")).
			Bold(true).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1),
	}
}

func lightStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("25")). // Blue
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160")),
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("28")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("25")).
			Padding(1, 2),
		Active: lipgloss.NewStyle().
			Background(lipgloss.Color("25")).
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			MarginTop(1),
	}
}
