package session

import "sync"

// MemoryStore keeps the token pair in memory only. Used in tests and for
// non-persistent sessions.
type MemoryStore struct {
	mu     sync.Mutex
	tokens Tokens
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Tokens() (Tokens, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tokens.Access == "" && s.tokens.Refresh == "" {
		return Tokens{}, ErrNoSession
	}
	return s.tokens, nil
}

func (s *MemoryStore) SetTokens(t Tokens) error {
	s.mu.Lock()
	s.tokens = t
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) SetAccess(access string) error {
	s.mu.Lock()
	s.tokens.Access = access
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	s.tokens = Tokens{}
	s.mu.Unlock()
	return nil
}
