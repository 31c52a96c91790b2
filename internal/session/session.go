// Package session models the login state for one run of the UI.
//
// The session is created by the root model on successful login, passed
// down explicitly to the screens that need it, and torn down on logout.
// Nothing reads it as ambient global state.
package session

import (
	"crypto/subtle"
	"time"
)

// Credentials are the configured admin credentials the login screen
// checks against.
type Credentials struct {
	User     string
	Password string
}

// Match reports whether the supplied user and password match. Comparison
// is constant-time; an unset configured password never matches.
func (c Credentials) Match(user, password string) bool {
	if c.Password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(c.User), []byte(user)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(c.Password), []byte(password)) == 1
	return userOK && passOK
}

// Session is an authenticated UI session.
type Session struct {
	User      string
	StartedAt time.Time
}

// New opens a session for the given user.
func New(user string) *Session {
	return &Session{User: user, StartedAt: time.Now()}
}

// Active reports whether s represents a live session.
func (s *Session) Active() bool {
	return s != nil
}
