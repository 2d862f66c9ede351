package services

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
)

// Identity names the admin an active session belongs to.
type Identity struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}

// SessionStore holds opaque session tokens in process memory. A token is
// valid exactly as long as the store holds it; clearing the store (or
// restarting the process) invalidates every session.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Identity
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: map[string]Identity{}}
}

// Create mints a fresh random token bound to identity.
func (s *SessionStore) Create(identity Identity) (string, error) {
	token, err := newToken(32)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.sessions[token] = identity
	s.mu.Unlock()
	return token, nil
}

// Lookup resolves a token to its identity.
func (s *SessionStore) Lookup(token string) (Identity, bool) {
	s.mu.RLock()
	identity, ok := s.sessions[token]
	s.mu.RUnlock()
	return identity, ok
}

// Invalidate drops a token. Dropping an unknown token is not an error.
func (s *SessionStore) Invalidate(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Reset drops every session.
func (s *SessionStore) Reset() {
	s.mu.Lock()
	s.sessions = map[string]Identity{}
	s.mu.Unlock()
}

func newToken(nbytes int) (string, error) {
	b := make([]byte, nbytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
