// Package session owns the client-side notion of "currently logged in": a
// bearer token hydrated from durable storage, cleared on logout or expiry.
package session

import (
	"errors"
	"sync"
	"time"

	"socialuni/internal/auth"
	"socialuni/internal/core"
)

var (
	ErrNoSession      = errors.New("no active session")
	ErrSessionExpired = errors.New("session expired")
)

// Store is the one piece of cross-cutting mutable state in the client. It
// is injected explicitly wherever a token is read or written; there is no
// ambient package-level session.
type Store struct {
	storage core.TokenStorage

	mu    sync.RWMutex
	token string
}

// New hydrates the store from storage.
func New(storage core.TokenStorage) (*Store, error) {
	token, err := storage.Get()
	if err != nil {
		return nil, err
	}

	return &Store{storage: storage, token: token}, nil
}

// SetToken persists the token; subsequent requests attach it.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Put(token); err != nil {
		return err
	}
	s.token = token
	return nil
}

// Token returns the current token, or "" when there is no session.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// ClearToken removes the persisted token; subsequent requests carry no
// Authorization header.
func (s *Store) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(); err != nil {
		return err
	}
	s.token = ""
	return nil
}

// Claims decodes the current token. Expiry is checked lazily here, on
// read, never by a background timer: an expired token is cleared and
// reported as ErrSessionExpired.
func (s *Store) Claims() (core.Claims, error) {
	token := s.Token()
	if token == "" {
		return core.Claims{}, ErrNoSession
	}

	claims, err := auth.DecodeClaims(token)
	if err != nil {
		return core.Claims{}, err
	}

	if Expired(claims, time.Now()) {
		if err := s.ClearToken(); err != nil {
			return claims, err
		}
		return core.Claims{}, ErrSessionExpired
	}

	return claims, nil
}

// Expired reports whether claims have expired as of now. Zero expiry means
// the token never expires.
func Expired(claims core.Claims, now time.Time) bool {
	return !claims.ExpiresAt.IsZero() && claims.ExpiresAt.Before(now)
}
