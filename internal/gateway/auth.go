package gateway

import (
	"context"
	"net/http"
	"net/url"
)

// TokenResponse is the login endpoint's success body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for an access token.
//
// The body is form encoded, matching the backend's OAuth2 password flow.
// A 401 here means the supplied credentials were wrong, not that the
// stored session expired, so it does not trigger the unauthorized
// callback; the caller surfaces the failure on the login form.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var token TokenResponse
	if err := c.postForm(ctx, "/auth/login", form, &token, requestOptions{skipAuthHook: true}); err != nil {
		return nil, err
	}
	return &token, nil
}

// Logout notifies the backend that the session ends.
//
// The response is ignored by callers; the session store treats this
// call as best effort.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, requestOptions{})
}

// CurrentUser fetches the authenticated user's profile.
//
// The shape is opaque to the gateway; the session store normalizes it
// into a canonical profile record.
func (c *Client) CurrentUser(ctx context.Context) (map[string]any, error) {
	var user map[string]any
	if err := c.get(ctx, "/users/me", &user); err != nil {
		return nil, err
	}
	return user, nil
}

// RefreshToken requests a fresh access token for the current session.
func (c *Client) RefreshToken(ctx context.Context) (*TokenResponse, error) {
	var token TokenResponse
	if err := c.postJSON(ctx, "/auth/refresh", nil, &token); err != nil {
		return nil, err
	}
	return &token, nil
}
