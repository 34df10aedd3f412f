// Package health provides the doctor checks for the standup client.
//
// Each Checker verifies one thing the client depends on: the backend,
// the stored credentials, the config file. Checks run in parallel with
// a per-check timeout and report a status with optional details.
package health

import (
	"context"
	"time"
)

// Checker verifies a single client dependency.
type Checker interface {
	// Name returns the unique name of this check,
	// lowercase with hyphens (e.g. "backend", "credentials-file").
	Name() string

	// Check performs the check. It should respect the context deadline
	// and return quickly.
	Check(ctx context.Context) *Result
}

// Status represents the check outcome.
type Status string

const (
	// StatusHealthy indicates the checked dependency is fully usable.
	StatusHealthy Status = "healthy"

	// StatusDegraded indicates the client works with reduced
	// functionality (e.g. no stored session).
	StatusDegraded Status = "degraded"

	// StatusUnhealthy indicates the dependency is broken.
	StatusUnhealthy Status = "unhealthy"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Result is the outcome of a single check.
type Result struct {
	// Status is the check outcome.
	Status Status

	// Message is a human-readable description.
	Message string

	// Details holds structured extras (paths, status codes, timings).
	Details map[string]interface{}

	// Latency is how long the check took.
	Latency time.Duration
}

// NewResult creates a result with the given status and message.
func NewResult(status Status, message string) *Result {
	return &Result{
		Status:  status,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// WithDetail adds a detail and returns the result for chaining.
func (r *Result) WithDetail(key string, value interface{}) *Result {
	r.Details[key] = value
	return r
}

// WithLatency sets the latency and returns the result for chaining.
func (r *Result) WithLatency(latency time.Duration) *Result {
	r.Latency = latency
	return r
}

// Healthy creates a healthy result.
func Healthy(message string) *Result {
	return NewResult(StatusHealthy, message)
}

// Degraded creates a degraded result.
func Degraded(message string) *Result {
	return NewResult(StatusDegraded, message)
}

// Unhealthy creates an unhealthy result.
func Unhealthy(message string) *Result {
	return NewResult(StatusUnhealthy, message)
}
