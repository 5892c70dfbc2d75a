package platform

import (
	"context"
	"net/http"

	"github.com/finovahq/agentdesk/internal/errors"
)

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a login response
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Login authenticates against the backend and persists the returned token.
// On failure the session store is left untouched.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	req := LoginRequest{
		Username: username,
		Password: password,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/login", req)
	if err != nil {
		return nil, err
	}

	var loginResp LoginResponse
	if err := parseResponse(resp, &loginResp); err != nil {
		// A 401 here means bad credentials, not a stale session.
		if errors.CodeOf(err) == errors.ErrCodeTokenRejected {
			return nil, errors.NewLoginFailedError()
		}
		return nil, err
	}

	if loginResp.Token == "" {
		return nil, errors.NewResponseShapeError(nil).
			WithSuggestion("Login response carried no token")
	}

	if err := c.store.SetToken(loginResp.Token); err != nil {
		return nil, err
	}

	return &loginResp, nil
}

// Logout clears the stored session. The caller is responsible for
// switching its UI to the unauthenticated state.
func (c *Client) Logout() error {
	return c.store.Clear()
}

// IsAuthenticated reports whether a token is stored. It is a presence
// check only; a stale token still reads as authenticated until a request
// is rejected by the server.
func (c *Client) IsAuthenticated() bool {
	_, ok := c.store.Token()
	return ok
}

// MyPermissions retrieves the caller's permission set
func (c *Client) MyPermissions(ctx context.Context) ([]string, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/permissions/me", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	perms, _, err := decodeList[string](body)
	return perms, err
}
