package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersListTolerantDecode(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"wrapped", `{"data":[{"id":"U1","username":"pat","role_list":["agent"]}]}`},
		{"bare", `[{"id":"U1","username":"pat","role_list":["agent"]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/users", r.URL.Path)
				w.Write([]byte(tt.body))
			}))

			users, err := client.Users(context.Background())
			require.NoError(t, err)
			require.Len(t, users, 1)
			assert.Equal(t, "pat", users[0].Username)
			assert.Equal(t, []string{"agent"}, users[0].RoleList)
		})
	}
}

func TestUserNullableEmail(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"U1","username":"pat","email":null,"role_list":[]}]`))
	}))

	users, err := client.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Nil(t, users[0].Email)
}

func TestCreateUser(t *testing.T) {
	var gotBody map[string]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users/register", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"User created"}`))
	}))

	require.NoError(t, client.CreateUser(context.Background(), "newagent", "password123"))
	assert.Equal(t, "newagent", gotBody["username"])
	assert.Equal(t, "password123", gotBody["password"])
}

func TestRolesCatalogFieldNames(t *testing.T) {
	// The role catalog is serialized with Go-style field names by the server
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/roles", r.URL.Path)
		w.Write([]byte(`[{"ID":"R1","RoleName":"admin","Description":"full access"}]`))
	}))

	roles, err := client.Roles(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "R1", roles[0].ID)
	assert.Equal(t, "admin", roles[0].RoleName)
}

func TestAssignRolesToUser(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/roles/assign", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"message":"Roles assigned successfully"}`))
	}))

	require.NoError(t, client.AssignRolesToUser(context.Background(), "U1", []string{"agent", "admin"}))
	assert.Equal(t, "U1", gotBody["user_id"])
	assert.Equal(t, []any{"agent", "admin"}, gotBody["role_list"])
}
