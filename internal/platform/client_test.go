package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finovahq/agentdesk/internal/errors"
	"github.com/finovahq/agentdesk/internal/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.MemStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewMemStore()
	return NewClient(server.URL, store), store
}

func TestBearerHeaderInjection(t *testing.T) {
	var gotAuth string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))

	// No token stored: no Authorization header at all
	_, err := client.Cases(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "unauthenticated request must carry no Authorization header")

	// Token stored: exactly "Bearer <token>"
	require.NoError(t, store.SetToken("tok-1"))
	_, err = client.Cases(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestRequestIDHeader(t *testing.T) {
	seen := map[string]bool{}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[r.Header.Get("X-Request-ID")] = true
		w.Write([]byte(`[]`))
	}))

	ctx := context.Background()
	_, err := client.Cases(ctx)
	require.NoError(t, err)
	_, err = client.Cases(ctx)
	require.NoError(t, err)

	assert.Len(t, seen, 2, "each request should carry a fresh request ID")
	assert.NotContains(t, seen, "")
}

func TestServerErrorMessageSurfaces(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"username already exists"}`))
	}))

	err := client.CreateUser(context.Background(), "agent1", "password123")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeServerStatus, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "username already exists")
}

func TestUnauthorizedBecomesTokenRejected(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Unauthorized"}`))
	}))
	require.NoError(t, store.SetToken("stale"))

	_, err := client.Cases(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeTokenRejected, errors.CodeOf(err))

	// The stale token stays stored; only the server verdict tells us it is dead
	_, ok := store.Token()
	assert.True(t, ok)
}

func TestNetworkErrorPropagates(t *testing.T) {
	store := session.NewMemStore()
	client := NewClient("http://127.0.0.1:1", store)

	_, err := client.Cases(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNetwork, errors.CodeOf(err))
}

func TestContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Cases(ctx)
	assert.Error(t, err)
}
