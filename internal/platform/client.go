package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/finovahq/agentdesk/internal/errors"
	"github.com/finovahq/agentdesk/internal/log"
	"github.com/finovahq/agentdesk/internal/session"
)

// Client is the loan-collection backend API client
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	store  session.Store
	logger *log.Logger
}

// NewClient creates a new API client. The session store supplies the bearer
// token for every request; a store with no token sends unauthenticated
// requests and lets the server reject them.
func NewClient(baseURL string, store session.Store) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		store:  store,
		logger: log.DefaultLogger(),
	}
}

// WithLogger replaces the client logger
func (c *Client) WithLogger(logger *log.Logger) *Client {
	c.logger = logger
	return c
}

// Session exposes the injected session store
func (c *Client) Session() session.Store {
	return c.store
}

// doRequest performs an HTTP request with authentication
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRequestBuild, "failed to marshal request body", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRequestBuild, "failed to create request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	c.decorate(req)

	c.logger.Debug("api request", "method", method, "path", path)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError(err)
	}

	return resp, nil
}

// doUpload performs a multipart file upload
func (c *Client) doUpload(ctx context.Context, path, fieldName, fileName string, file io.Reader) (*http.Response, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUploadBuild, "failed to build upload form", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeUploadBuild, "failed to read upload payload", err)
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeUploadBuild, "failed to finalize upload form", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, &buf)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRequestBuild, "failed to create request", err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.decorate(req)

	c.logger.Debug("api upload", "path", path, "file", fileName)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError(err)
	}

	return resp, nil
}

// decorate attaches the bearer token (when stored) and a request ID
func (c *Client) decorate(req *http.Request) {
	if token, ok := c.store.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
}

// serverError represents the error shape the backend uses for failures
type serverError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// checkStatus turns a non-2xx response into a DeskError, preferring the
// server's own error message when the body carries one
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		return errors.NewTokenRejectedError()
	}

	var errResp serverError
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Error != "" {
			return errors.NewServerError(resp.StatusCode, errResp.Error)
		}
		if errResp.Message != "" {
			return errors.NewServerError(resp.StatusCode, errResp.Message)
		}
	}

	return errors.NewServerError(resp.StatusCode,
		fmt.Sprintf("request failed with status %d: %s", resp.StatusCode, string(body)))
}

// readBody validates the status and returns the raw body for list decoding.
// The caller owns closing the response body.
func readBody(resp *http.Response) ([]byte, error) {
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewNetworkError(err)
	}
	return body, nil
}

// parseResponse parses the response body into the target struct
func parseResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if target != nil {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return errors.NewNetworkError(err)
		}
		if err := decodeObject(body, target); err != nil {
			return err
		}
	}

	return nil
}
