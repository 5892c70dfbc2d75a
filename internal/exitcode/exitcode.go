package exitcode

import (
	"os"
	"strings"

	"github.com/finovahq/agentdesk/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication or authorization failure
	AuthError = 3

	// NetworkError indicates a network connectivity issue
	NetworkError = 4

	// ServerError indicates the backend rejected the request
	ServerError = 5

	// ConfigError indicates a configuration problem
	ConfigError = 6

	// Interrupted indicates the run was cancelled by the user
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	code := DetermineExitCode(err)
	Exit(code)
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	switch errors.CodeOf(err) {
	case errors.ErrCodeLoginFailed, errors.ErrCodeNotLoggedIn, errors.ErrCodeTokenRejected:
		return AuthError
	case errors.ErrCodeNetwork:
		return NetworkError
	case errors.ErrCodeServerStatus, errors.ErrCodeResponseShape:
		return ServerError
	case errors.ErrCodeConfigLoad, errors.ErrCodeConfigInvalid, errors.ErrCodeConfigWrite:
		return ConfigError
	}

	// Fall back to message sniffing for errors that never got a code
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "unauthorized") || strings.Contains(errMsg, "invalid credentials") {
		return AuthError
	}
	if strings.Contains(errMsg, "connection refused") || strings.Contains(errMsg, "no such host") {
		return NetworkError
	}
	if strings.Contains(errMsg, "unknown flag") || strings.Contains(errMsg, "requires at least") {
		return UsageError
	}

	return GeneralError
}
