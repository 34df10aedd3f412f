package gateway

import "context"

// DashboardData is the dashboard summary for the team.
type DashboardData struct {
	TotalMembers   int      `json:"total_members"`
	SubmittedToday int      `json:"submitted_today"`
	PendingToday   int      `json:"pending_today"`
	RecentReports  []Report `json:"recent_reports,omitempty"`
}

// Stats are aggregate submission statistics.
type Stats struct {
	ReportsThisWeek  int     `json:"reports_this_week"`
	ReportsThisMonth int     `json:"reports_this_month"`
	SubmissionRate   float64 `json:"submission_rate"`
}

// Dashboard fetches the dashboard summary.
func (c *Client) Dashboard(ctx context.Context) (*DashboardData, error) {
	var data DashboardData
	if err := c.get(ctx, "/dashboard", &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// DashboardStats fetches aggregate statistics.
func (c *Client) DashboardStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.get(ctx, "/dashboard/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
