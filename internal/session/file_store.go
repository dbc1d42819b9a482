package session

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
)

// FileStore persists the token pair to a JSON file, the desktop analog of
// the browser's local storage. Safe for concurrent use.
type FileStore struct {
	path   string
	mu     sync.Mutex
	tokens Tokens
	loaded bool
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Tokens() (Tokens, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return Tokens{}, err
	}
	if s.tokens.Access == "" && s.tokens.Refresh == "" {
		return Tokens{}, ErrNoSession
	}
	return s.tokens, nil
}

func (s *FileStore) SetTokens(t Tokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = t
	s.loaded = true
	return s.save()
}

func (s *FileStore) SetAccess(access string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}
	s.tokens.Access = access
	return s.save()
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = Tokens{}
	s.loaded = true
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *FileStore) load() error {
	if s.loaded {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.loaded = true
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, &s.tokens); err != nil {
		return err
	}
	s.loaded = true
	return nil
}

func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.tokens, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}
