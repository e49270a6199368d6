// Package entity defines the core data model owned by the console.
package entity

import (
	"encoding/json"
	"time"
)

// Session is the authenticated context against the platform API. The user,
// organization and branch fields are snapshots taken at login time and are
// not refreshed until the next login.
type Session struct {
	// Token is the opaque credential issued by the platform at login.
	Token string `json:"token"`

	// User is the authenticated principal snapshot.
	User json.RawMessage `json:"user"`

	// Organization is the tenant context active at login.
	Organization json.RawMessage `json:"organization"`

	// Branch is the operating branch/location context.
	Branch json.RawMessage `json:"branch"`

	// CurrentDay is the operational business-date cursor supplied by the
	// platform, distinct from the calendar date.
	CurrentDay string `json:"currentDay"`

	// Privileges is the opaque permission payload for the principal. The
	// console passes it through without interpreting its shape.
	Privileges json.RawMessage `json:"privileges"`

	// ExpiresAt is the absolute instant after which the session is invalid.
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session is no longer valid at the given instant.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
