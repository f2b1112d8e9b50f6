package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	client   *Client
	sessions *SessionStore
	server   *httptest.Server
	logs     *test.Hook
}

func newTestEnv(t *testing.T, h http.Handler) *testEnv {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	log, hook := test.NewNullLogger()
	sessions := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	return &testEnv{
		client:   New(srv.URL, sessions, WithLogger(log)),
		sessions: sessions,
		server:   srv,
		logs:     hook,
	}
}

func (e *testEnv) login(t *testing.T) {
	t.Helper()
	require.NoError(t, e.sessions.Save(&Session{Token: "tok", User: Identity{ID: 7, FirstName: "Ana"}}))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestResolveBaseURL(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	assert.Equal(t, DefaultBaseURL, ResolveBaseURL(""))

	t.Setenv(EnvBaseURL, "http://api.internal:9000/")
	assert.Equal(t, "http://api.internal:9000", ResolveBaseURL(""))
	assert.Equal(t, "http://flag:1", ResolveBaseURL("http://flag:1"))
}

func TestProtectedCall_NoSessionSkipsNetwork(t *testing.T) {
	var hits int32
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))

	_, err := env.client.Profile(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = env.client.LoadDashboard(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestLogin_PersistsSessionAndSendsBearer(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["password"] != "pw" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials", "code": "INVALID_CREDENTIALS"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"message": "login successful",
				"token":   "signed.jwt.value",
				"user":    map[string]interface{}{"id": 3, "email": "ana@example.com", "first_name": "Ana", "last_name": "Lee"},
			})
		case "/api/user/profile":
			if r.Header.Get("Authorization") != "Bearer signed.jwt.value" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no token provided", "code": "UNAUTHENTICATED"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]interface{}{"user": map[string]interface{}{"id": 3, "email": "ana@example.com"}})
		}
	}))
	ctx := context.Background()

	_, err := env.client.Login(ctx, "ana@example.com", "wrong")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	assert.Equal(t, "invalid credentials", apiErr.Message)
	_, err = env.sessions.Load()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	sess, err := env.client.Login(ctx, "ana@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Ana Lee", sess.User.DisplayName())

	stored, err := env.sessions.Load()
	require.NoError(t, err)
	assert.Equal(t, sess, stored)

	user, err := env.client.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(3), user.ID)

	require.NoError(t, env.client.Logout())
	_, err = env.client.Profile(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestAPIError_NonJSONBody(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	env.login(t)

	_, err := env.client.Alerts(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
	assert.Empty(t, apiErr.Code)
}

func TestUpdateProfile_SendsOnlySetFields(t *testing.T) {
	var got map[string]interface{}
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeJSON(w, http.StatusOK, map[string]interface{}{"user": map[string]interface{}{"id": 7}})
	}))
	env.login(t)

	off := false
	_, err := env.client.UpdateProfile(context.Background(), ProfileUpdate{NotificationEmailEnabled: &off})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"notification_email_enabled": false}, got)
}
