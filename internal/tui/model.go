package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/gateway"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/i18n"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/report"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/session"
)

// ViewType represents the current view being displayed
type ViewType int

const (
	// ViewDashboard is the summary view
	ViewDashboard ViewType = iota
	// ViewReports shows today's reports
	ViewReports
	// ViewTeam shows the member roster
	ViewTeam
)

// standupData is everything the main screen shows, fetched together.
type standupData struct {
	reports   []gateway.Report
	users     []gateway.User
	dashboard *gateway.DashboardData
}

type dataMsg standupData

type dataErrMsg struct{ err error }

type unauthorizedMsg struct{}

// Model is the main TUI screen shown while authenticated.
type Model struct {
	ctx    context.Context
	store  *session.Store
	client *gateway.Client
	tr     *i18n.Translator
	styles Styles

	view    ViewType
	today   string
	spinner spinner.Model
	roster  table.Model

	data      standupData
	loading   bool
	lastError string

	width    int
	height   int
	quitting bool

	// loginRequired is set when the backend invalidates the session;
	// the outer loop returns the user to the login form.
	loginRequired bool
}

// NewModel creates the main screen model.
func NewModel(ctx context.Context, store *session.Store, client *gateway.Client, tr *i18n.Translator, styles Styles) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:     ctx,
		store:   store,
		client:  client,
		tr:      tr,
		styles:  styles,
		today:   report.FormatDate(time.Now()),
		spinner: sp,
		loading: true,
	}
}

// LoginRequired reports whether the session was invalidated while the
// screen was open.
func (m Model) LoginRequired() bool {
	return m.loginRequired
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadData())
}

// loadData fetches reports, roster and dashboard summary concurrently.
func (m Model) loadData() tea.Cmd {
	ctx := m.ctx
	client := m.client
	today := m.today

	return func() tea.Msg {
		var data standupData

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			reports, err := client.Reports(gctx, today, 100, 0)
			if err != nil {
				return err
			}
			data.reports = reports
			return nil
		})
		g.Go(func() error {
			users, err := client.Users(gctx, 100, 0)
			if err != nil {
				return err
			}
			data.users = users
			return nil
		})
		g.Go(func() error {
			dash, err := client.Dashboard(gctx)
			if err != nil {
				// The dashboard endpoint is optional; older backends
				// do not serve it.
				return nil
			}
			data.dashboard = dash
			return nil
		})

		if err := g.Wait(); err != nil {
			if gateway.IsUnauthorized(err) {
				return unauthorizedMsg{}
			}
			return dataErrMsg{err: err}
		}
		return dataMsg(data)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.view = (m.view + 1) % 3
			return m, nil
		case "1":
			m.view = ViewDashboard
			return m, nil
		case "2":
			m.view = ViewReports
			return m, nil
		case "3":
			m.view = ViewTeam
			return m, nil
		case "r":
			m.loading = true
			m.lastError = ""
			return m, tea.Batch(m.spinner.Tick, m.loadData())
		case "L":
			m.store.Logout(m.ctx)
			m.loginRequired = true
			return m, tea.Quit
		}
		return m, nil

	case dataMsg:
		m.loading = false
		m.data = standupData(msg)
		m.roster = m.buildRoster()
		return m, nil

	case dataErrMsg:
		m.loading = false
		m.lastError = msg.err.Error()
		return m, nil

	case unauthorizedMsg:
		// Forcibly return to the login form, whatever screen we are on.
		m.loginRequired = true
		return m, tea.Quit

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// buildRoster prepares the team table with today's submission status.
func (m Model) buildRoster() table.Model {
	submitted := make(map[string]bool, len(m.data.reports))
	for _, r := range m.data.reports {
		submitted[strings.ToLower(r.UserID)] = true
	}

	rows := make([]table.Row, 0, len(m.data.users))
	for _, u := range m.data.users {
		status := "-"
		if submitted[strings.ToLower(u.ID)] {
			status = "ok"
		}
		rows = append(rows, table.Row{u.Name, u.Role, u.Email, status})
	}

	columns := []table.Column{
		{Title: m.tr.T("team.name"), Width: 20},
		{Title: m.tr.T("team.role"), Width: 16},
		{Title: m.tr.T("team.email"), Width: 28},
		{Title: m.tr.T("dashboard.submittedToday"), Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(min(len(rows)+1, 12)),
	)
	return t
}
