package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/gateway"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/report"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.styles.Muted.Render(m.tr.T("common.loading")))
		b.WriteString("\n")
		return b.String()
	}

	if m.lastError != "" {
		b.WriteString(m.styles.Error.Render(m.tr.T("common.error") + ": " + m.lastError))
		b.WriteString("\n\n")
	}

	switch m.view {
	case ViewDashboard:
		b.WriteString(m.renderDashboard())
	case ViewReports:
		b.WriteString(m.renderReports())
	case ViewTeam:
		b.WriteString(m.roster.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("Daily Standup")
	date := m.styles.Muted.Render(m.today)

	tabs := []string{
		m.tr.T("sidebar.dashboard"),
		m.tr.T("sidebar.dailyReport"),
		m.tr.T("sidebar.team"),
	}
	for i, t := range tabs {
		if ViewType(i) == m.view {
			tabs[i] = m.styles.Active.Render(t)
		} else {
			tabs[i] = m.styles.Muted.Render(t)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title+"  "+date,
		strings.Join(tabs, m.styles.Muted.Render(" | ")),
	)
}

func (m Model) renderDashboard() string {
	var b strings.Builder

	total := len(m.data.users)
	submitted := 0
	seen := make(map[string]bool)
	for _, r := range m.data.reports {
		key := strings.ToLower(r.UserID)
		if !seen[key] {
			seen[key] = true
			submitted++
		}
	}
	pending := total - submitted
	if pending < 0 {
		pending = 0
	}
	if d := m.data.dashboard; d != nil {
		total = d.TotalMembers
		submitted = d.SubmittedToday
		pending = d.PendingToday
	}

	stat := func(label string, value int) string {
		return m.styles.Label.Render(label) + " " + m.styles.Value.Render(fmt.Sprintf("%d", value))
	}
	b.WriteString(stat(m.tr.T("dashboard.totalMembers"), total))
	b.WriteString("\n")
	b.WriteString(stat(m.tr.T("dashboard.submittedToday"), submitted))
	b.WriteString("\n")
	b.WriteString(stat(m.tr.T("dashboard.pendingToday"), pending))
	b.WriteString("\n\n")

	if snap := m.store.Snapshot(); snap.User != nil {
		if own := report.FindOwn(m.data.reports, snap.User.ID); own != nil {
			b.WriteString(m.styles.Subtitle.Render(m.tr.T("dailyReport.currentReport")))
			b.WriteString("\n")
			b.WriteString(m.renderReport(*own))
		} else {
			b.WriteString(m.styles.Muted.Render(m.tr.T("dailyReport.noReport")))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderReports() string {
	if len(m.data.reports) == 0 {
		return m.styles.Muted.Render(m.tr.T("dailyReport.noReport")) + "\n"
	}

	var b strings.Builder
	for _, r := range m.data.reports {
		b.WriteString(m.styles.Subtitle.Render(r.UserName))
		b.WriteString("\n")
		b.WriteString(m.renderReport(r))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderReport(r gateway.Report) string {
	field := func(label, value string) string {
		if value == "" {
			value = "-"
		}
		return m.styles.Label.Render(label) + "\n" + m.styles.Value.Render(value) + "\n"
	}

	var b strings.Builder
	b.WriteString(field(m.tr.T("dailyReport.yesterdayWork"), r.Yesterday))
	b.WriteString(field(m.tr.T("dailyReport.todayWork"), r.TodayPlan))
	if r.Issues != "" {
		b.WriteString(field(m.tr.T("dailyReport.blockingIssues"), r.Issues))
	}
	return m.styles.Border.Render(b.String()) + "\n"
}

func (m Model) renderFooter() string {
	return m.styles.Help.Render("tab: switch view • r: reload • L: " + m.tr.T("sidebar.logout") + " • q: quit")
}
