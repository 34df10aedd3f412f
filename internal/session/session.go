// Package session owns the authentication state for a running client.
//
// One Store exists per application run, created by the command layer and
// injected into every surface that needs to know whether the user is
// logged in. No other component duplicates the authentication flag or
// touches the stored token directly.
package session

import (
	"context"
	"sync"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/credentials"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/gateway"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/log"
)

// State is the session lifecycle state.
type State int

const (
	// StateUnknown is the initial state before Initialize resolves.
	// There is no transition back into it afterwards.
	StateUnknown State = iota
	// StateAuthenticated means a valid token and loaded profile exist.
	StateAuthenticated
	// StateUnauthenticated means login is required.
	StateUnauthenticated
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "invalid"
	}
}

// Backend is the slice of the gateway client the session store uses.
type Backend interface {
	Login(ctx context.Context, username, password string) (*gateway.TokenResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (map[string]any, error)
}

// Snapshot is a consistent read of the session state.
type Snapshot struct {
	State           State
	IsAuthenticated bool
	ShouldShowLogin bool
	User            *Profile
}

// Store is the single source of truth for "is this client authenticated".
//
// Two locks with distinct roles: opMu serializes the mutating operations
// (Initialize, Login, Logout) across their network I/O, and stateMu
// guards the state fields themselves. HandleUnauthorized takes only
// stateMu because it fires synchronously from inside a gateway call made
// while opMu is held.
type Store struct {
	backend Backend
	creds   credentials.Store
	logger  *log.Logger

	opMu sync.Mutex

	stateMu         sync.Mutex
	state           State
	user            *Profile
	shouldShowLogin bool
	initialized     bool
}

// NewStore creates a session store in the Unknown state.
//
// Wire the gateway's unauthorized callback to HandleUnauthorized at
// startup, before the first request:
//
//	client.SetUnauthorizedCallback(store.HandleUnauthorized)
func NewStore(backend Backend, creds credentials.Store, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Store{
		backend: backend,
		creds:   creds,
		logger:  logger,
		state:   StateUnknown,
	}
}

// Initialize resolves the initial authentication state, once per run.
//
// With no stored token it settles Unauthenticated without touching the
// network. With a stored token it validates by fetching the profile; any
// failure (network, rejected token) clears the token and settles
// Unauthenticated, returning a SESSION_PROFILE_FETCH_FAILED error that
// callers may log and otherwise ignore.
func (s *Store) Initialize(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.stateMu.Lock()
	if s.initialized {
		s.stateMu.Unlock()
		return NewError(ErrAlreadyInitialized, "session already initialized")
	}
	s.initialized = true
	s.stateMu.Unlock()

	token, err := s.creds.Token()
	if err != nil {
		// Unreadable storage is handled like an absent token.
		s.logger.WithError(err).Warn("failed to read stored token")
	}
	if token == "" {
		s.setUnauthenticated()
		return nil
	}

	raw, err := s.backend.CurrentUser(ctx)
	if err != nil {
		if clearErr := s.creds.Clear(); clearErr != nil {
			s.logger.WithError(clearErr).Warn("failed to clear stored token")
		}
		s.setUnauthenticated()
		return WrapError(ErrProfileFetchFailed, "stored token could not be validated", err)
	}

	s.setAuthenticated(NormalizeProfile(raw))
	return nil
}

// Login authenticates with the backend.
//
// On success the token is persisted first, the profile is fetched, and
// only then does the state flip to Authenticated, so no reader ever
// observes isAuthenticated=true without a stored token and a loaded
// profile. On failure the state is untouched and the error surfaces to
// the login form.
func (s *Store) Login(ctx context.Context, username, password string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	token, err := s.backend.Login(ctx, username, password)
	if err != nil {
		if gateway.IsNetwork(err) {
			return err
		}
		return WrapError(ErrLoginRejected, "login failed", err)
	}
	if token.AccessToken == "" {
		return NewError(ErrLoginRejected, "login response carried no access token")
	}

	if err := s.creds.Save(token.AccessToken); err != nil {
		return WrapError(ErrLoginRejected, "failed to persist token", err)
	}

	raw, err := s.backend.CurrentUser(ctx)
	if err != nil {
		// The token was accepted moments ago but the profile is
		// unavailable; treat it like an invalid token rather than
		// leave a half-authenticated session.
		if clearErr := s.creds.Clear(); clearErr != nil {
			s.logger.WithError(clearErr).Warn("failed to clear stored token")
		}
		s.setUnauthenticated()
		return WrapError(ErrProfileFetchFailed, "profile fetch after login failed", err)
	}

	s.setAuthenticated(NormalizeProfile(raw))
	s.logger.Info("login succeeded", "user_id", s.Snapshot().User.ID)
	return nil
}

// Logout ends the session. It never fails from the caller's perspective:
// the backend is notified best effort, then local state clears
// unconditionally.
func (s *Store) Logout(ctx context.Context) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.backend.Logout(ctx); err != nil {
		s.logger.WithError(err).Debug("backend logout notification failed")
	}

	if err := s.creds.Clear(); err != nil {
		s.logger.WithError(err).Warn("failed to clear stored token")
	}
	s.setUnauthenticated()
	s.logger.Info("logged out")
}

// HandleUnauthorized transitions to Unauthenticated after the backend
// rejects the current token. It is the only asynchronous logout path,
// registered once with the gateway at startup, and is idempotent:
// repeated invocations land in the same terminal state.
func (s *Store) HandleUnauthorized() {
	if err := s.creds.Clear(); err != nil {
		s.logger.WithError(err).Warn("failed to clear stored token")
	}

	s.stateMu.Lock()
	alreadyOut := s.state == StateUnauthenticated
	s.state = StateUnauthenticated
	s.user = nil
	s.shouldShowLogin = true
	s.stateMu.Unlock()

	if !alreadyOut {
		s.logger.Info("session invalidated by backend")
	}
}

// Snapshot returns a consistent view of the session state.
func (s *Store) Snapshot() Snapshot {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return Snapshot{
		State:           s.state,
		IsAuthenticated: s.state == StateAuthenticated,
		ShouldShowLogin: s.shouldShowLogin,
		User:            s.user,
	}
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	return s.Snapshot().State
}

// IsAuthenticated reports whether a valid session exists.
func (s *Store) IsAuthenticated() bool {
	return s.Snapshot().IsAuthenticated
}

// ShouldShowLogin reports whether the login surface must be shown.
func (s *Store) ShouldShowLogin() bool {
	return s.Snapshot().ShouldShowLogin
}

// User returns the current profile, nil when logged out.
func (s *Store) User() *Profile {
	return s.Snapshot().User
}

func (s *Store) setAuthenticated(user *Profile) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.state = StateAuthenticated
	s.user = user
	s.shouldShowLogin = false
}

func (s *Store) setUnauthenticated() {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.state = StateUnauthenticated
	s.user = nil
	s.shouldShowLogin = true
}
