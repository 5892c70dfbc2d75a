package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeLoginFailed   ErrorCode = "AUTH-001"
	ErrCodeNotLoggedIn   ErrorCode = "AUTH-002"
	ErrCodeTokenRejected ErrorCode = "AUTH-003"

	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionRead  ErrorCode = "SESSION-001"
	ErrCodeSessionWrite ErrorCode = "SESSION-002"
	ErrCodeSessionClear ErrorCode = "SESSION-003"

	// API errors (API-001 to API-099)
	ErrCodeRequestBuild  ErrorCode = "API-001"
	ErrCodeNetwork       ErrorCode = "API-002"
	ErrCodeServerStatus  ErrorCode = "API-003"
	ErrCodeResponseShape ErrorCode = "API-004"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigLoad    ErrorCode = "CONFIG-001"
	ErrCodeConfigInvalid ErrorCode = "CONFIG-002"
	ErrCodeConfigWrite   ErrorCode = "CONFIG-003"

	// Upload errors (UPLOAD-001 to UPLOAD-099)
	ErrCodeUploadOpen  ErrorCode = "UPLOAD-001"
	ErrCodeUploadBuild ErrorCode = "UPLOAD-002"

	// Input errors (INPUT-001 to INPUT-099)
	ErrCodeInvalidPhone ErrorCode = "INPUT-001"
	ErrCodeInvalidEmail ErrorCode = "INPUT-002"
)

// DeskError represents an enhanced error with code, suggestions, and documentation
type DeskError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error

	// StatusCode is the HTTP status for server-reported failures, zero otherwise
	StatusCode int
}

// Error implements the error interface
func (e *DeskError) Error() string {
	var b strings.Builder

	// Error code and message
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	// Add documentation link
	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *DeskError) Unwrap() error {
	return e.Cause
}

// New creates a new DeskError
func New(code ErrorCode, message string) *DeskError {
	return &DeskError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new DeskError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *DeskError {
	return &DeskError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *DeskError) WithSuggestion(suggestion string) *DeskError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *DeskError) WithSuggestions(suggestions ...string) *DeskError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *DeskError) WithDocs(url string) *DeskError {
	e.DocsURL = url
	return e
}

// WithStatus records the HTTP status code the server responded with
func (e *DeskError) WithStatus(status int) *DeskError {
	e.StatusCode = status
	return e
}

// CodeOf extracts the ErrorCode from an error chain, or "" if none
func CodeOf(err error) ErrorCode {
	var deskErr *DeskError
	if errors.As(err, &deskErr) {
		return deskErr.Code
	}
	return ""
}

// Common error constructors for frequently used errors

// NewLoginFailedError creates an invalid-credentials error
func NewLoginFailedError() *DeskError {
	return New(ErrCodeLoginFailed, "invalid username or password").
		WithStatus(401).
		WithSuggestion("Check your username and password").
		WithSuggestion("Contact your administrator if your account is locked").
		WithDocs("https://github.com/finovahq/agentdesk#authentication")
}

// NewNotLoggedInError creates a missing-session error
func NewNotLoggedInError() *DeskError {
	return New(ErrCodeNotLoggedIn, "not logged in").
		WithSuggestion("Run 'agentdesk auth login' to authenticate").
		WithDocs("https://github.com/finovahq/agentdesk#authentication")
}

// NewTokenRejectedError creates an error for a 401 on an authenticated call.
// A stored token is only discovered to be stale when the server rejects it.
func NewTokenRejectedError() *DeskError {
	return New(ErrCodeTokenRejected, "session rejected by server").
		WithStatus(401).
		WithSuggestion("Your session may have expired").
		WithSuggestion("Run 'agentdesk auth login' to re-authenticate").
		WithDocs("https://github.com/finovahq/agentdesk#authentication")
}

// NewNetworkError creates a transport-level failure error
func NewNetworkError(cause error) *DeskError {
	return Wrap(ErrCodeNetwork, "request failed", cause).
		WithSuggestion("Check your network connection").
		WithSuggestion("Verify AGENTDESK_API_URL points at a reachable backend").
		WithDocs("https://github.com/finovahq/agentdesk#configuration")
}

// NewServerError creates an error from a non-2xx response
func NewServerError(status int, message string) *DeskError {
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}
	return New(ErrCodeServerStatus, message).WithStatus(status)
}

// NewResponseShapeError creates an error for an undecodable response body
func NewResponseShapeError(cause error) *DeskError {
	return Wrap(ErrCodeResponseShape, "unexpected response from server", cause).
		WithSuggestion("The backend may be running an incompatible version").
		WithDocs("https://github.com/finovahq/agentdesk#api-compatibility")
}

// NewUploadOpenError creates an error for an unreadable import file
func NewUploadOpenError(path string, cause error) *DeskError {
	return Wrap(ErrCodeUploadOpen, fmt.Sprintf("cannot open file: %s", path), cause).
		WithSuggestion("Check the file path and permissions").
		WithSuggestion("Case imports expect a CSV export")
}

// NewInvalidPhoneError creates a phone format error
func NewInvalidPhoneError(phone string) *DeskError {
	return New(ErrCodeInvalidPhone, fmt.Sprintf("invalid phone number: %s", phone)).
		WithSuggestion("Phone numbers must be 10 digits")
}

// NewInvalidEmailError creates an email format error
func NewInvalidEmailError(email string) *DeskError {
	return New(ErrCodeInvalidEmail, fmt.Sprintf("invalid email address: %s", email)).
		WithSuggestion("Use the form name@example.com")
}
