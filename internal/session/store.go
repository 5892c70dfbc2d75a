package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/finovahq/agentdesk/internal/errors"
)

// FileName is the fixed key the bearer token is persisted under
const FileName = "session.json"

// Store holds the single bearer token for the process.
// It is injectable so commands and tests can swap the backing storage.
type Store interface {
	// Token returns the stored token, or false when no session exists
	Token() (string, bool)
	// SetToken persists the token, overwriting any prior value
	SetToken(token string) error
	// Clear removes the stored token
	Clear() error
}

// FileStore persists the token as a small JSON file under the agentdesk
// state directory. There is no expiry tracking; a stale token is only
// discovered when the server rejects a request.
type FileStore struct {
	dir string
}

type sessionFile struct {
	Token string `json:"token"`
}

// NewFileStore creates a store rooted at dir (usually ~/.agentdesk)
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, FileName)
}

// Token reads the persisted token. It has no side effects.
func (s *FileStore) Token() (string, bool) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		return "", false
	}

	var sess sessionFile
	if err := json.Unmarshal(data, &sess); err != nil {
		return "", false
	}
	if sess.Token == "" {
		return "", false
	}
	return sess.Token, true
}

// SetToken writes the token, creating the state directory if needed
func (s *FileStore) SetToken(token string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeSessionWrite, "cannot create session directory", err)
	}

	data, err := json.MarshalIndent(sessionFile{Token: token}, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeSessionWrite, "cannot marshal session", err)
	}

	if err := os.WriteFile(s.path(), data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeSessionWrite, "cannot write session file", err)
	}
	return nil
}

// Clear removes the session file. Clearing an absent session is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeSessionClear, "cannot remove session file", err)
	}
	return nil
}

// MemStore is an in-memory Store for tests
type MemStore struct {
	mu    sync.Mutex
	token string
}

// NewMemStore creates an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Token returns the held token
func (s *MemStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// SetToken replaces the held token
func (s *MemStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear drops the held token
func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
