// Package token persists the access/refresh token pair and decodes access
// token claims locally. The store is pure storage: it never talks to the
// network and never validates token contents.
package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Pair is the access/refresh token pair. Either half may be empty when
// nothing is stored.
type Pair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Store is a file-backed token store. The pair is always written and read as
// a unit: a partial pair can never be observed, even across a crash, because
// writes go through a temp file and an atomic rename.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store persisting to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save writes both tokens atomically.
func (s *Store) Save(accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(Pair{AccessToken: accessToken, RefreshToken: refreshToken})
	if err != nil {
		return fmt.Errorf("marshal token pair: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tokens-*")
	if err != nil {
		return fmt.Errorf("create temp token file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write token pair: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod token file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close token file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename token file: %w", err)
	}
	return nil
}

// Read returns the stored pair. A missing file is not an error: it returns an
// empty pair.
func (s *Store) Read() (Pair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Pair{}, nil
	}
	if err != nil {
		return Pair{}, fmt.Errorf("read token file: %w", err)
	}

	var p Pair
	if err := json.Unmarshal(data, &p); err != nil {
		return Pair{}, fmt.Errorf("decode token file: %w", err)
	}
	return p, nil
}

// Clear removes both tokens. Idempotent: clearing an empty store succeeds.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
