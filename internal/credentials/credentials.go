// Package credentials persists the bearer token for the standup backend.
//
// The token lives in a single JSON file under the user config directory,
// the one fixed storage key shared by the session store and the gateway
// client. Only the session store's login/logout/initialize paths and the
// gateway's unauthorized handling write it.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileName is the fixed name of the credentials file.
const FileName = "credentials.json"

// Store is the interface for durable token storage.
//
// Token returns an empty string when no token is stored; absence is not
// an error. Save replaces any previously stored token. Clear is a no-op
// when no token is stored.
type Store interface {
	Token() (string, error)
	Save(token string) error
	Clear() error
}

// stored is the on-disk shape of the credentials file.
type stored struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// FileStore stores the token in a JSON file with 0600 permissions.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the standard credentials file location,
// e.g. ~/.config/daily-standup/credentials.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "daily-standup", FileName), nil
}

// Path returns the file path backing this store.
func (s *FileStore) Path() string {
	return s.path
}

// Token reads the stored token. A missing file means no token.
func (s *FileStore) Token() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read credentials: %w", err)
	}

	var cred stored
	if err := json.Unmarshal(data, &cred); err != nil {
		return "", fmt.Errorf("failed to parse credentials: %w", err)
	}

	return cred.AccessToken, nil
}

// Save writes the token, creating the parent directory if needed.
func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create credentials dir: %w", err)
	}

	data, err := json.MarshalIndent(stored{AccessToken: token, TokenType: "bearer"}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	return nil
}

// Clear removes the credentials file.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}
	return nil
}

// MemoryStore keeps the token in memory. Used in tests and by the
// gateway's test doubles.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Token returns the stored token.
func (s *MemoryStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

// Save replaces the stored token.
func (s *MemoryStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear removes the stored token.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
