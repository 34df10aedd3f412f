package health

import (
	"context"
	"fmt"
	"os"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/config"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/credentials"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/gateway"
)

// BackendChecker verifies the standup backend answers requests.
type BackendChecker struct {
	client *gateway.Client
}

// NewBackendChecker creates a backend reachability check.
func NewBackendChecker(client *gateway.Client) *BackendChecker {
	return &BackendChecker{client: client}
}

// Name implements Checker.
func (c *BackendChecker) Name() string {
	return "backend"
}

// Check implements Checker. Any HTTP answer counts as reachable; only
// transport failures mark the backend unhealthy. A 401 with no stored
// token is the normal logged-out answer.
func (c *BackendChecker) Check(ctx context.Context) *Result {
	_, err := c.client.CurrentUser(ctx)
	switch {
	case err == nil:
		return Healthy("backend reachable, session valid").
			WithDetail("base_url", c.client.BaseURL())
	case gateway.IsUnauthorized(err):
		return Healthy("backend reachable, not logged in").
			WithDetail("base_url", c.client.BaseURL())
	case gateway.IsTimeout(err):
		return Unhealthy("backend timed out").
			WithDetail("base_url", c.client.BaseURL())
	case gateway.IsNetwork(err):
		return Unhealthy(fmt.Sprintf("backend unreachable: %v", err)).
			WithDetail("base_url", c.client.BaseURL())
	default:
		return Degraded(fmt.Sprintf("backend answered with an error: %v", err)).
			WithDetail("base_url", c.client.BaseURL())
	}
}

// CredentialsChecker verifies the stored token file.
type CredentialsChecker struct {
	store *credentials.FileStore
}

// NewCredentialsChecker creates a credentials file check.
func NewCredentialsChecker(store *credentials.FileStore) *CredentialsChecker {
	return &CredentialsChecker{store: store}
}

// Name implements Checker.
func (c *CredentialsChecker) Name() string {
	return "credentials-file"
}

// Check implements Checker. No stored token is degraded, not broken:
// the client still works, the user just has to log in.
func (c *CredentialsChecker) Check(ctx context.Context) *Result {
	token, err := c.store.Token()
	if err != nil {
		return Unhealthy(fmt.Sprintf("credentials file unreadable: %v", err)).
			WithDetail("path", c.store.Path())
	}
	if token == "" {
		return Degraded("no stored session").
			WithDetail("path", c.store.Path())
	}

	result := Healthy("stored session present").
		WithDetail("path", c.store.Path())
	if info, err := os.Stat(c.store.Path()); err == nil {
		if perm := info.Mode().Perm(); perm&0o077 != 0 {
			return Degraded(fmt.Sprintf("credentials file is too permissive (%04o)", perm)).
				WithDetail("path", c.store.Path())
		}
	}
	return result
}

// ConfigChecker verifies the config file parses.
type ConfigChecker struct {
	path string
}

// NewConfigChecker creates a config file check.
func NewConfigChecker(path string) *ConfigChecker {
	return &ConfigChecker{path: path}
}

// Name implements Checker.
func (c *ConfigChecker) Name() string {
	return "config-file"
}

// Check implements Checker.
func (c *ConfigChecker) Check(ctx context.Context) *Result {
	if _, err := os.Stat(c.path); os.IsNotExist(err) {
		return Healthy("no config file, using defaults").
			WithDetail("path", c.path)
	}

	if _, err := config.Load(c.path); err != nil {
		return Unhealthy(fmt.Sprintf("config invalid: %v", err)).
			WithDetail("path", c.path)
	}
	return Healthy("config valid").
		WithDetail("path", c.path)
}
