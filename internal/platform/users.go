package platform

import (
	"context"
	"net/http"
)

// Users lists all dashboard users
func (c *Client) Users(ctx context.Context) ([]User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/users", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	users, _, err := decodeList[User](body)
	return users, err
}

// CreateUser registers a new user account
func (c *Client) CreateUser(ctx context.Context, username, password string) error {
	req := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{
		Username: username,
		Password: password,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/users/register", req)
	if err != nil {
		return err
	}
	return parseResponse(resp, nil)
}

// AssignRolesToUser sets roles on a user
func (c *Client) AssignRolesToUser(ctx context.Context, userID string, roles []string) error {
	req := struct {
		UserID   string   `json:"user_id"`
		RoleList []string `json:"role_list"`
	}{
		UserID:   userID,
		RoleList: roles,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/roles/assign", req)
	if err != nil {
		return err
	}
	return parseResponse(resp, nil)
}

// Roles lists the role catalog
func (c *Client) Roles(ctx context.Context) ([]Role, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/roles", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	roles, _, err := decodeList[Role](body)
	return roles, err
}
