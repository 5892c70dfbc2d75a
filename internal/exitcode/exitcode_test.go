package exitcode

import (
	"fmt"
	"testing"

	"github.com/finovahq/agentdesk/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, Success},
		{"login failed", errors.NewLoginFailedError(), AuthError},
		{"not logged in", errors.NewNotLoggedInError(), AuthError},
		{"token rejected", errors.NewTokenRejectedError(), AuthError},
		{"network", errors.NewNetworkError(fmt.Errorf("dial tcp: timeout")), NetworkError},
		{"server status", errors.NewServerError(500, "boom"), ServerError},
		{"bad shape", errors.NewResponseShapeError(fmt.Errorf("unexpected token")), ServerError},
		{"config", errors.New(errors.ErrCodeConfigLoad, "bad env"), ConfigError},
		{"wrapped desk error", fmt.Errorf("context: %w", errors.NewTokenRejectedError()), AuthError},
		{"plain unauthorized", fmt.Errorf("server said: Unauthorized"), AuthError},
		{"plain refused", fmt.Errorf("connection refused"), NetworkError},
		{"anything else", fmt.Errorf("weird failure"), GeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.want {
				t.Errorf("DetermineExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
