// Package report holds client-side helpers for daily standup reports.
package report

import (
	"strings"
	"time"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/gateway"
)

// DateFormat is the wire format for report dates.
const DateFormat = "2006-01-02"

// FormatDate renders a time as a report date.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDate parses a report date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// FindOwn returns the report belonging to the given user, or nil.
//
// User ids are compared case-insensitively: the backend has served the
// same user with differently-cased ids depending on the endpoint.
func FindOwn(reports []gateway.Report, userID string) *gateway.Report {
	if userID == "" {
		return nil
	}
	for i := range reports {
		if strings.EqualFold(reports[i].UserID, userID) {
			return &reports[i]
		}
	}
	return nil
}

// ValidateDraft checks that a draft has the required content.
// Blockers may be empty; yesterday's work and today's plan may not.
func ValidateDraft(draft gateway.ReportDraft) []string {
	var missing []string
	if strings.TrimSpace(draft.Yesterday) == "" {
		missing = append(missing, "yesterday_work")
	}
	if strings.TrimSpace(draft.TodayPlan) == "" {
		missing = append(missing, "today_plan")
	}
	return missing
}
