// Package session owns the console's authentication state: the single source
// of truth for the platform session, its persistence and its expiry.
package session

import (
	"errors"

	"github.com/estatekit/console/internal/entity"
)

var (
	// ErrNoSession is returned by a Repository when no usable session is
	// persisted. Malformed persisted state is reported the same way.
	ErrNoSession = errors.New("no persisted session")

	// ErrMissingToken is returned by Login when the login result carries an
	// empty token. The login handler must not invoke Login in that case.
	ErrMissingToken = errors.New("login result is missing the authentication key")
)

// Repository persists the session across console restarts. The store is the
// exclusive writer of the persisted entries.
type Repository interface {
	// Load returns the persisted session, or ErrNoSession when absent or
	// unreadable.
	Load() (entity.Session, error)

	// Save persists the session. Token, payload and expiry are written as a
	// unit.
	Save(entity.Session) error

	// Clear removes all persisted session entries.
	Clear() error
}

// Notifier receives the user-visible notice raised when the session expires
// while the console is running. SessionStarted drops any unread notice so it
// cannot surface inside a newer session.
type Notifier interface {
	SessionExpired(message string)
	SessionStarted()
}
