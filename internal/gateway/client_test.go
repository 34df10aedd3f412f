package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/credentials"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *credentials.MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	creds := credentials.NewMemoryStore()
	return NewClient(srv.URL, creds), creds
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth, gotContentType string
	client, creds := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))
	require.NoError(t, creds.Save("tok-abc"))

	_, err := client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestClient_NoTokenNoAuthHeader(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	_, err := client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_RequestID(t *testing.T) {
	var first, second string
	calls := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			first = r.Header.Get("X-Request-ID")
		} else {
			second = r.Header.Get("X-Request-ID")
		}
		w.Write([]byte(`{}`))
	}))

	ctx := context.Background()
	_, err := client.CurrentUser(ctx)
	require.NoError(t, err)
	_, err = client.CurrentUser(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEmpty(t, second)
	assert.NotEqual(t, first, second)
}

func TestClient_UnauthorizedClearsTokenAndFiresCallback(t *testing.T) {
	client, creds := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	require.NoError(t, creds.Save("expired"))

	var fired int
	var tokenAtCallback string
	client.SetUnauthorizedCallback(func() {
		fired++
		tokenAtCallback, _ = creds.Token()
	})

	_, err := client.CurrentUser(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	// Exactly once per failing request, token cleared before the callback ran.
	assert.Equal(t, 1, fired)
	assert.Empty(t, tokenAtCallback)

	token, _ := creds.Token()
	assert.Empty(t, token)
}

func TestClient_UnauthorizedCallbackPerFailingRequest(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	var fired int
	client.SetUnauthorizedCallback(func() { fired++ })

	ctx := context.Background()
	_, _ = client.CurrentUser(ctx)
	_, _ = client.CurrentUser(ctx)
	assert.Equal(t, 2, fired)
}

func TestClient_SetUnauthorizedCallbackReplaces(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	var old, replacement int
	client.SetUnauthorizedCallback(func() { old++ })
	client.SetUnauthorizedCallback(func() { replacement++ })

	_, _ = client.CurrentUser(context.Background())
	assert.Zero(t, old)
	assert.Equal(t, 1, replacement)
}

func TestClient_APIErrorCarriesStatusAndBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail":"report already exists"}`))
	}))

	_, err := client.CreateReport(context.Background(), ReportDraft{})
	require.Error(t, err)

	var gwErr *Error
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, ErrAPI, gwErr.Code)
	assert.Equal(t, http.StatusConflict, gwErr.Status)
	assert.Equal(t, "report already exists", gwErr.Message)
	assert.Contains(t, gwErr.Body, "already exists")
}

func TestClient_NetworkErrorDoesNotFireCallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	creds := credentials.NewMemoryStore()
	require.NoError(t, creds.Save("tok"))
	client := NewClient(srv.URL, creds)

	var fired int
	client.SetUnauthorizedCallback(func() { fired++ })

	_, err := client.CurrentUser(context.Background())
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
	assert.Zero(t, fired)

	// Network failures must not mutate stored state.
	token, _ := creds.Token()
	assert.Equal(t, "tok", token)
}

func TestClient_TimeoutIsDistinctKind(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	t.Cleanup(func() { close(block); srv.Close() })

	client := NewClient(srv.URL, credentials.NewMemoryStore(), WithTimeout(50*time.Millisecond))

	_, err := client.CurrentUser(context.Background())
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
	assert.True(t, IsNetwork(err), "timeouts are a network-class failure")
	assert.False(t, IsUnauthorized(err))
}

func TestClient_Login(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("username") == "alice" && r.PostForm.Get("password") == "secret" {
			w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer"}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))

	token, err := client.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
}

func TestClient_LoginRejectionDoesNotFireCallback(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	var fired int
	client.SetUnauthorizedCallback(func() { fired++ })

	_, err := client.Login(context.Background(), "alice", "wrong-pw")
	require.Error(t, err)
	assert.Zero(t, fired, "a rejected login is not a session-expiry signal")
}

func TestClient_ReportListShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bare array", body: `[{"id":"r1","user_id":"u1","yesterday_work":"x","today_plan":"y","issues":""}]`},
		{name: "wrapped", body: `{"reports":[{"id":"r1","user_id":"u1","yesterday_work":"x","today_plan":"y","issues":""}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "2026-08-31", r.URL.Query().Get("report_date"))
				w.Write([]byte(tt.body))
			}))

			reports, err := client.Reports(context.Background(), "2026-08-31", 100, 0)
			require.NoError(t, err)
			require.Len(t, reports, 1)
			assert.Equal(t, "r1", reports[0].ID)
			assert.Equal(t, "u1", reports[0].UserID)
		})
	}
}

func TestClient_DeleteReport(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.DeleteReport(context.Background(), "r42"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/daily-reports/r42", gotPath)
}

func TestHasCode(t *testing.T) {
	err := NewError(ErrAPI, "nope")
	assert.True(t, HasCode(err, ErrAPI))
	assert.False(t, HasCode(err, ErrUnauthorized))
	assert.False(t, HasCode(context.Canceled, ErrAPI))
}
