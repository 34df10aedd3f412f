package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/credentials"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/gateway"
)

// testBackend wires a session store to a real gateway client against a
// test server, with the unauthorized callback registered the way the
// application shell does it.
type testBackend struct {
	store  *Store
	client *gateway.Client
	creds  *credentials.MemoryStore
}

func newTestBackend(t *testing.T, handler http.Handler) *testBackend {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	creds := credentials.NewMemoryStore()
	client := gateway.NewClient(srv.URL, creds)
	store := NewStore(client, creds, nil)
	client.SetUnauthorizedCallback(store.HandleUnauthorized)

	return &testBackend{store: store, client: client, creds: creds}
}

// standupMux is a minimal standup backend for session tests.
func standupMux(profileCalls *atomic.Int32) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.PostForm.Get("username") == "alice" && r.PostForm.Get("password") == "secret" {
			w.Write([]byte(`{"access_token":"valid-token","token_type":"bearer"}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/users/me", func(w http.ResponseWriter, r *http.Request) {
		if profileCalls != nil {
			profileCalls.Add(1)
		}
		if r.Header.Get("Authorization") != "Bearer valid-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"id":"u1","name":"Alice","email":"alice@example.com","role":"developer"}`))
	})
	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func TestStore_InitialState(t *testing.T) {
	tb := newTestBackend(t, standupMux(nil))

	snap := tb.store.Snapshot()
	assert.Equal(t, StateUnknown, snap.State)
	assert.False(t, snap.IsAuthenticated)
	assert.False(t, snap.ShouldShowLogin)
	assert.Nil(t, snap.User)
}

func TestStore_InitializeWithoutToken(t *testing.T) {
	var profileCalls atomic.Int32
	tb := newTestBackend(t, standupMux(&profileCalls))

	require.NoError(t, tb.store.Initialize(context.Background()))

	snap := tb.store.Snapshot()
	assert.Equal(t, StateUnauthenticated, snap.State)
	assert.True(t, snap.ShouldShowLogin)
	assert.Zero(t, profileCalls.Load(), "no token means no profile fetch")
}

func TestStore_InitializeWithValidToken(t *testing.T) {
	tb := newTestBackend(t, standupMux(nil))
	require.NoError(t, tb.creds.Save("valid-token"))

	require.NoError(t, tb.store.Initialize(context.Background()))

	snap := tb.store.Snapshot()
	assert.True(t, snap.IsAuthenticated)
	assert.False(t, snap.ShouldShowLogin)
	require.NotNil(t, snap.User)
	assert.Equal(t, "Alice", snap.User.Name)
	assert.Equal(t, "u1", snap.User.ID)
}

func TestStore_InitializeWithRejectedToken(t *testing.T) {
	tb := newTestBackend(t, standupMux(nil))
	require.NoError(t, tb.creds.Save("stale-token"))

	err := tb.store.Initialize(context.Background())
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrProfileFetchFailed))

	// End state is identical to having had no token at all.
	snap := tb.store.Snapshot()
	assert.Equal(t, StateUnauthenticated, snap.State)
	assert.True(t, snap.ShouldShowLogin)
	assert.Nil(t, snap.User)

	token, _ := tb.creds.Token()
	assert.Empty(t, token)
}

func TestStore_InitializeTwice(t *testing.T) {
	tb := newTestBackend(t, standupMux(nil))

	require.NoError(t, tb.store.Initialize(context.Background()))
	err := tb.store.Initialize(context.Background())
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrAlreadyInitialized))
}

func TestStore_LoginSuccess(t *testing.T) {
	tb := newTestBackend(t, standupMux(nil))
	require.NoError(t, tb.store.Initialize(context.Background()))

	require.NoError(t, tb.store.Login(context.Background(), "alice", "secret"))

	snap := tb.store.Snapshot()
	assert.True(t, snap.IsAuthenticated)
	assert.False(t, snap.ShouldShowLogin)
	require.NotNil(t, snap.User)
	assert.Equal(t, "Alice", snap.User.Name)

	// isAuthenticated iff the stored token is present and non-empty.
	token, err := tb.creds.Token()
	require.NoError(t, err)
	assert.Equal(t, "valid-token", token)
}

func TestStore_LoginRejected(t *testing.T) {
	tb := newTestBackend(t, standupMux(nil))
	require.NoError(t, tb.store.Initialize(context.Background()))

	err := tb.store.Login(context.Background(), "alice", "wrong-pw")
	require.Error(t, err)
	assert.True(t, IsLoginRejected(err))

	snap := tb.store.Snapshot()
	assert.False(t, snap.IsAuthenticated)
	assert.True(t, snap.ShouldShowLogin)

	token, _ := tb.creds.Token()
	assert.Empty(t, token, "a rejected login stores nothing")
}

func TestStore_LoginNetworkFailurePassesThrough(t *testing.T) {
	srv := httptest.NewServer(standupMux(nil))
	srv.Close()

	creds := credentials.NewMemoryStore()
	client := gateway.NewClient(srv.URL, creds)
	store := NewStore(client, creds, nil)

	err := store.Login(context.Background(), "alice", "secret")
	require.Error(t, err)
	assert.True(t, gateway.IsNetwork(err))
	assert.False(t, IsLoginRejected(err))
}

func TestStore_LoginProfileFetchFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":"valid-token","token_type":"bearer"}`))
	})
	mux.HandleFunc("/users/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	tb := newTestBackend(t, mux)

	err := tb.store.Login(context.Background(), "alice", "secret")
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrProfileFetchFailed))

	// No half-authenticated session: token gone, state logged out.
	snap := tb.store.Snapshot()
	assert.False(t, snap.IsAuthenticated)
	assert.Nil(t, snap.User)

	token, _ := tb.creds.Token()
	assert.Empty(t, token)
}

func TestStore_LoginEmptyAccessToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":"","token_type":"bearer"}`))
	})
	tb := newTestBackend(t, mux)

	err := tb.store.Login(context.Background(), "alice", "secret")
	require.Error(t, err)
	assert.True(t, IsLoginRejected(err))
}

func TestStore_LogoutAlwaysSucceedsLocally(t *testing.T) {
	tests := []struct {
		name    string
		handler http.Handler
	}{
		{
			name:    "backend acknowledges",
			handler: standupMux(nil),
		},
		{
			name: "backend errors",
			handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := newTestBackend(t, tt.handler)
			require.NoError(t, tb.creds.Save("valid-token"))
			tb.store.setAuthenticated(&Profile{ID: "u1", Name: "Alice"})

			tb.store.Logout(context.Background())

			snap := tb.store.Snapshot()
			assert.False(t, snap.IsAuthenticated)
			assert.Nil(t, snap.User)
			assert.True(t, snap.ShouldShowLogin)

			token, _ := tb.creds.Token()
			assert.Empty(t, token)
		})
	}
}

func TestStore_LogoutWithUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(standupMux(nil))
	srv.Close()

	creds := credentials.NewMemoryStore()
	require.NoError(t, creds.Save("valid-token"))
	client := gateway.NewClient(srv.URL, creds)
	store := NewStore(client, creds, nil)
	store.setAuthenticated(&Profile{ID: "u1"})

	store.Logout(context.Background())

	assert.False(t, store.IsAuthenticated())
	token, _ := creds.Token()
	assert.Empty(t, token)
}

func TestStore_UnauthorizedMidSession(t *testing.T) {
	rejectReports := false
	mux := http.NewServeMux()
	mux.HandleFunc("/users/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"u1","name":"Alice"}`))
	})
	mux.HandleFunc("/daily-reports", func(w http.ResponseWriter, r *http.Request) {
		if rejectReports {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`[]`))
	})

	tb := newTestBackend(t, mux)
	require.NoError(t, tb.creds.Save("valid-token"))
	require.NoError(t, tb.store.Initialize(context.Background()))
	require.True(t, tb.store.IsAuthenticated())

	// The token expires server-side; the next unrelated request 401s.
	rejectReports = true
	_, err := tb.client.Reports(context.Background(), "2026-08-31", 100, 0)
	require.Error(t, err)
	assert.True(t, gateway.IsUnauthorized(err))

	// The store transitioned without any explicit Logout call.
	snap := tb.store.Snapshot()
	assert.Equal(t, StateUnauthenticated, snap.State)
	assert.True(t, snap.ShouldShowLogin)
	assert.Nil(t, snap.User)
}

func TestStore_HandleUnauthorizedIdempotent(t *testing.T) {
	tb := newTestBackend(t, standupMux(nil))
	require.NoError(t, tb.creds.Save("valid-token"))
	tb.store.setAuthenticated(&Profile{ID: "u1"})

	// Two in-flight requests both failing with 401 invoke the callback
	// twice in a row.
	tb.store.HandleUnauthorized()
	afterFirst := tb.store.Snapshot()
	tb.store.HandleUnauthorized()
	afterSecond := tb.store.Snapshot()

	assert.Equal(t, afterFirst, afterSecond)
	assert.Equal(t, StateUnauthenticated, afterSecond.State)
	token, _ := tb.creds.Token()
	assert.Empty(t, token)
}

func TestStore_StateString(t *testing.T) {
	assert.Equal(t, "unknown", StateUnknown.String())
	assert.Equal(t, "authenticated", StateAuthenticated.String())
	assert.Equal(t, "unauthenticated", StateUnauthenticated.String())
	assert.Equal(t, "invalid", State(99).String())
}

// fakeBackend lets tests drive session behavior without HTTP.
type fakeBackend struct {
	loginErr   error
	logoutErr  error
	profile    map[string]any
	profileErr error
}

func (f *fakeBackend) Login(ctx context.Context, username, password string) (*gateway.TokenResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &gateway.TokenResponse{AccessToken: "tok", TokenType: "bearer"}, nil
}

func (f *fakeBackend) Logout(ctx context.Context) error {
	return f.logoutErr
}

func (f *fakeBackend) CurrentUser(ctx context.Context) (map[string]any, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

func TestStore_LoginPersistFailure(t *testing.T) {
	creds := failingStore{}
	store := NewStore(&fakeBackend{profile: map[string]any{"id": "u1"}}, creds, nil)

	err := store.Login(context.Background(), "alice", "secret")
	require.Error(t, err)
	assert.True(t, IsLoginRejected(err))
	assert.False(t, store.IsAuthenticated())
}

// failingStore rejects every write.
type failingStore struct{}

func (failingStore) Token() (string, error) { return "", nil }
func (failingStore) Save(string) error      { return errors.New("disk full") }
func (failingStore) Clear() error           { return errors.New("disk full") }
