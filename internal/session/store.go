package session

import "errors"

var ErrNoSession = errors.New("no active session")

// Tokens is the access/refresh token pair issued by the backend.
type Tokens struct {
	Access  string `json:"access_token"`
	Refresh string `json:"refresh_token"`
}

// Store holds the authenticated user's token pair. Login creates the
// session, logout (or an irrecoverable refresh failure) destroys it.
type Store interface {
	Tokens() (Tokens, error)
	SetTokens(t Tokens) error
	SetAccess(access string) error
	Clear() error
}

// Authenticated reports whether the store currently holds an access token.
func Authenticated(s Store) bool {
	t, err := s.Tokens()
	return err == nil && t.Access != ""
}
