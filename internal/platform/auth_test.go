package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovahq/agentdesk/internal/errors"
)

func TestLoginPersistsToken(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "agent1", req.Username)
		assert.Equal(t, "secret", req.Password)

		json.NewEncoder(w).Encode(map[string]string{
			"message": "Logged in successfully",
			"token":   "abc",
		})
	}))

	assert.False(t, client.IsAuthenticated())

	resp, err := client.Login(context.Background(), "agent1", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Logged in successfully", resp.Message)

	token, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "abc", token)
	assert.True(t, client.IsAuthenticated())
}

func TestLoginFailureLeavesStoreUntouched(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid credentials"}`))
	}))

	_, err := client.Login(context.Background(), "agent1", "wrong")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeLoginFailed, errors.CodeOf(err))

	_, ok := store.Token()
	assert.False(t, ok, "failed login must not store a token")
	assert.False(t, client.IsAuthenticated())
}

func TestLoginFailureSuggestsCredentialsNotSession(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid credentials"}`))
	}))

	_, err := client.Login(context.Background(), "agent1", "wrong")
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "Check your username and password")
	assert.NotContains(t, msg, "session may have expired",
		"a first failed login has no session to expire")
	assert.Equal(t, 1, strings.Count(msg, "Suggestions:"),
		"suggestion blocks must not stack")
}

func TestLoginWithoutTokenField(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"ok"}`))
	}))

	_, err := client.Login(context.Background(), "agent1", "secret")
	require.Error(t, err)

	_, ok := store.Token()
	assert.False(t, ok)
}

func TestLogoutClearsSession(t *testing.T) {
	client, store := newTestClient(t, http.NotFoundHandler())
	require.NoError(t, store.SetToken("abc"))
	require.True(t, client.IsAuthenticated())

	require.NoError(t, client.Logout())

	assert.False(t, client.IsAuthenticated())
	_, ok := store.Token()
	assert.False(t, ok)
}

func TestMyPermissions(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bare array", `["view_cases","view_trails"]`},
		{"wrapped", `{"data":["view_cases","view_trails"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/permissions/me", r.URL.Path)
				w.Write([]byte(tt.body))
			}))

			perms, err := client.MyPermissions(context.Background())
			require.NoError(t, err)
			assert.Equal(t, []string{"view_cases", "view_trails"}, perms)
		})
	}
}
