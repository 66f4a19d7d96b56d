// Package session replaces the browser's ad hoc localStorage reads with one
// explicit session object: loaded once at startup, checked before protected
// commands, persisted through the terminal store.
package session

import (
	"errors"
	"time"

	"github.com/thuysan/seapos/internal/models"
)

// ErrNotSignedIn gates protected commands when no valid session exists; the
// CLI turns it into the "please sign in" message (the redirect-to-login
// analogue).
var ErrNotSignedIn = errors.New("not signed in")

// Session is the bearer token and user profile from a successful login, with
// a client-side expiry so a stale token is rejected locally instead of by a
// surprise 401 mid-sale.
type Session struct {
	Token     string
	User      models.User
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// New builds a session from a login response with the configured TTL.
func New(res *models.LoginResponse, ttl time.Duration, now time.Time) *Session {
	return &Session{
		Token:     res.AccessToken,
		User:      res.User,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
}

// Valid reports whether the session can still be used at the given time.
func (s *Session) Valid(now time.Time) bool {
	return s != nil && s.Token != "" && now.Before(s.ExpiresAt)
}

// Require returns the session or ErrNotSignedIn when it is absent or expired.
func Require(s *Session, now time.Time) (*Session, error) {
	if !s.Valid(now) {
		return nil, ErrNotSignedIn
	}
	return s, nil
}
