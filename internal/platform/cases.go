package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Cases lists the cases assigned to the caller. The cases endpoint reports
// total earnings alongside the list envelope.
func (c *Client) Cases(ctx context.Context) (*CasesResult, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/cases", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	cases, extras, err := decodeList[Case](body)
	if err != nil {
		return nil, err
	}

	return &CasesResult{
		Cases:         cases,
		TotalEarnings: extraFloat(extras, "total_earnings"),
	}, nil
}

// CaseDetails retrieves a single case
func (c *Client) CaseDetails(ctx context.Context, caseID string) (*CaseDetail, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/cases/%s", caseID), nil)
	if err != nil {
		return nil, err
	}

	var detail CaseDetail
	if err := parseResponse(resp, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Trails retrieves the trail history for a case
func (c *Client) Trails(ctx context.Context, caseID string) ([]Trail, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/cases/%s/trails", caseID), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	trails, _, err := decodeList[Trail](body)
	return trails, err
}

// AddTrail appends a trail entry to a case
func (c *Client) AddTrail(ctx context.Context, caseID string, input TrailInput) (*Trail, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/cases/%s/trails", caseID), input)
	if err != nil {
		return nil, err
	}

	var trail Trail
	if err := parseResponse(resp, &trail); err != nil {
		return nil, err
	}
	return &trail, nil
}

// PaymentLink generates (or fetches) the payment link for a case
func (c *Client) PaymentLink(ctx context.Context, caseID string) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/cases/%s/payment-link", caseID), nil)
	if err != nil {
		return "", err
	}

	var linkResp struct {
		PaymentLink string `json:"payment_link"`
	}
	if err := parseResponse(resp, &linkResp); err != nil {
		return "", err
	}
	return linkResp.PaymentLink, nil
}

// UploadCases bulk-imports cases from a file payload (multipart field "file")
func (c *Client) UploadCases(ctx context.Context, fileName string, file io.Reader) (*UploadResult, error) {
	resp, err := c.doUpload(ctx, "/cases/upload", "file", fileName, file)
	if err != nil {
		return nil, err
	}

	var result UploadResult
	if err := parseResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UnassignedCases lists cases not yet assigned to any agency
func (c *Client) UnassignedCases(ctx context.Context) ([]Case, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/cases/unassigned", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	cases, _, err := decodeList[Case](body)
	return cases, err
}

// AssignCasesToAgency bulk-assigns cases to an agency in a single request
func (c *Client) AssignCasesToAgency(ctx context.Context, agencyID string, caseIDs []string) error {
	req := struct {
		AgencyID string   `json:"agency_id"`
		CaseIDs  []string `json:"case_ids"`
	}{
		AgencyID: agencyID,
		CaseIDs:  caseIDs,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/cases/assign", req)
	if err != nil {
		return err
	}
	return parseResponse(resp, nil)
}

// AssignCaseToUser assigns a single case to an agent
func (c *Client) AssignCaseToUser(ctx context.Context, caseID, userID string) error {
	req := struct {
		CaseID string `json:"case_id"`
		UserID string `json:"user_id"`
	}{
		CaseID: caseID,
		UserID: userID,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/cases/assign", req)
	if err != nil {
		return err
	}
	return parseResponse(resp, nil)
}

// AgencyCases lists the cases visible to the caller's agency
func (c *Client) AgencyCases(ctx context.Context) ([]Case, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/agencies/me/cases", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	cases, _, err := decodeList[Case](body)
	return cases, err
}
