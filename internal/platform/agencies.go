package platform

import (
	"context"
	"fmt"
	"net/http"
	"regexp"

	"github.com/finovahq/agentdesk/internal/errors"
)

// Format checks only; the server remains authoritative for validation
var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidatePhone checks the 10-digit phone format
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return errors.NewInvalidPhoneError(phone)
	}
	return nil
}

// ValidateEmail checks the basic email format
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return errors.NewInvalidEmailError(email)
	}
	return nil
}

// ValidateAgencyContact applies the regex-only phone/email checks used by
// the agency creation dialog
func ValidateAgencyContact(phone, email string) error {
	if err := ValidatePhone(phone); err != nil {
		return err
	}
	return ValidateEmail(email)
}

// CreateAgency creates a new agency
func (c *Client) CreateAgency(ctx context.Context, req CreateAgencyRequest) (*Agency, error) {
	if err := ValidateAgencyContact(req.Phone, req.Email); err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/agencies", req)
	if err != nil {
		return nil, err
	}

	var agency Agency
	if err := parseResponse(resp, &agency); err != nil {
		return nil, err
	}
	return &agency, nil
}

// Agencies lists all agencies
func (c *Client) Agencies(ctx context.Context) ([]Agency, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/agencies", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	agencies, _, err := decodeList[Agency](body)
	return agencies, err
}

// DeleteAgency deletes an agency by ID
func (c *Client) DeleteAgency(ctx context.Context, agencyID string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/agencies/%s", agencyID), nil)
	if err != nil {
		return err
	}
	return parseResponse(resp, nil)
}

// AgencyUsers lists the users mapped under an agency
func (c *Client) AgencyUsers(ctx context.Context, agencyID string) ([]AgencyUser, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/agencies/%s/users", agencyID), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	users, _, err := decodeList[AgencyUser](body)
	return users, err
}

// UnassignedUsers lists users not mapped to any agency
func (c *Client) UnassignedUsers(ctx context.Context) ([]User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/agencies/unassigned-users", nil)
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

// AssignUserToAgency maps a user into an agency with a role
func (c *Client) AssignUserToAgency(ctx context.Context, req AssignUserToAgencyRequest) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/agencies/users", req)
	if err != nil {
		return err
	}
	return parseResponse(resp, nil)
}

// MyAgencyUsers lists the agents within the caller's own agency
func (c *Client) MyAgencyUsers(ctx context.Context) ([]AgencyUser, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/agencies/me/users", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	users, _, err := decodeList[AgencyUser](body)
	return users, err
}
