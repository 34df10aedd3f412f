package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Report is a single daily standup report.
type Report struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name,omitempty"`
	ReportDate string    `json:"report_date"`
	Yesterday  string    `json:"yesterday_work"`
	TodayPlan  string    `json:"today_plan"`
	Issues     string    `json:"issues"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

// ReportDraft is the writable part of a report.
type ReportDraft struct {
	ReportDate string `json:"report_date,omitempty"`
	Yesterday  string `json:"yesterday_work"`
	TodayPlan  string `json:"today_plan"`
	Issues     string `json:"issues"`
}

// Reports lists reports for a date (YYYY-MM-DD).
//
// The backend has returned both a bare array and a {"reports": [...]}
// wrapper across versions; both shapes are accepted.
func (c *Client) Reports(ctx context.Context, reportDate string, limit, offset int) ([]Report, error) {
	params := url.Values{}
	params.Set("report_date", reportDate)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	var raw json.RawMessage
	if err := c.get(ctx, "/daily-reports?"+params.Encode(), &raw); err != nil {
		return nil, err
	}
	return decodeReportList(raw)
}

// decodeReportList accepts either a bare array or a wrapped list.
func decodeReportList(raw json.RawMessage) ([]Report, error) {
	var reports []Report
	if err := json.Unmarshal(raw, &reports); err == nil {
		return reports, nil
	}

	var wrapped struct {
		Reports []Report `json:"reports"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, WrapError(ErrDecode, "unexpected report list shape", err)
	}
	return wrapped.Reports, nil
}

// CreateReport submits a new report.
func (c *Client) CreateReport(ctx context.Context, draft ReportDraft) (*Report, error) {
	var report Report
	if err := c.postJSON(ctx, "/daily-reports", draft, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// UpdateReport replaces the content of an existing report.
func (c *Client) UpdateReport(ctx context.Context, id string, draft ReportDraft) (*Report, error) {
	var report Report
	if err := c.putJSON(ctx, fmt.Sprintf("/daily-reports/%s", url.PathEscape(id)), draft, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// DeleteReport removes a report.
func (c *Client) DeleteReport(ctx context.Context, id string) error {
	return c.delete(ctx, fmt.Sprintf("/daily-reports/%s", url.PathEscape(id)))
}
