package ux

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnhanceErrorNil(t *testing.T) {
	assert.Nil(t, EnhanceError(nil))
}

func TestEnhanceErrorAddsLoginSuggestion(t *testing.T) {
	err := EnhanceError(fmt.Errorf("[AUTH-002] not logged in"))
	assert.Contains(t, err.Error(), "auth login")
}

func TestEnhanceErrorExpiredSession(t *testing.T) {
	err := EnhanceError(fmt.Errorf("session rejected by server"))
	assert.Contains(t, err.Error(), "re-authenticate")
}

func TestEnhanceErrorNetwork(t *testing.T) {
	err := EnhanceError(fmt.Errorf("dial tcp: connection refused"))
	assert.Contains(t, err.Error(), "AGENTDESK_API_URL")
}

func TestEnhanceErrorPassthrough(t *testing.T) {
	orig := errors.New("something else entirely")
	assert.Equal(t, orig, EnhanceError(orig))
}

func TestErrorWithSuggestionUnwrap(t *testing.T) {
	orig := errors.New("inner")
	wrapped := NewErrorWithSuggestion(orig, "do the thing")
	assert.True(t, errors.Is(wrapped, orig))
	assert.True(t, strings.Contains(wrapped.Error(), "do the thing"))
}

func TestFormatErrorAddsContext(t *testing.T) {
	err := FormatError(errors.New("boom"), "fetching cases")
	assert.Contains(t, err.Error(), "fetching cases: boom")
	assert.Nil(t, FormatError(nil, "anything"))
}
