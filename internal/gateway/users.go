package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// User is a team member as listed by the backend.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Invite is a pending team invitation.
type Invite struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	InvitedAt time.Time `json:"invited_at,omitempty"`
}

// RegisterRequest creates a new user account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Users lists team members.
func (c *Client) Users(ctx context.Context, limit, offset int) ([]User, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	var users []User
	if err := c.get(ctx, "/users?"+params.Encode(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	if err := c.postJSON(ctx, "/users/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateName changes the authenticated user's display name and email.
func (c *Client) UpdateName(ctx context.Context, name, email string) error {
	body := map[string]string{"name": name, "email": email}
	return c.putJSON(ctx, "/users/me", body, nil)
}

// ChangePassword changes the authenticated user's password.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{
		"current_password": current,
		"new_password":     next,
	}
	return c.putJSON(ctx, "/users/me/password", body, nil)
}

// InviteUser invites a new member by email.
func (c *Client) InviteUser(ctx context.Context, email, role string) (*Invite, error) {
	body := map[string]string{"email": email, "role": role}
	var invite Invite
	if err := c.postJSON(ctx, "/invites", body, &invite); err != nil {
		return nil, err
	}
	return &invite, nil
}

// PendingInvites lists invitations that have not been accepted yet.
func (c *Client) PendingInvites(ctx context.Context) ([]Invite, error) {
	var invites []Invite
	if err := c.get(ctx, "/invites", &invites); err != nil {
		return nil, err
	}
	return invites, nil
}

// ResendInvite re-sends an invitation email.
func (c *Client) ResendInvite(ctx context.Context, id string) error {
	return c.postJSON(ctx, fmt.Sprintf("/invites/%s/resend", url.PathEscape(id)), nil, nil)
}

// CancelInvite withdraws a pending invitation.
func (c *Client) CancelInvite(ctx context.Context, id string) error {
	return c.delete(ctx, fmt.Sprintf("/invites/%s", url.PathEscape(id)))
}
