package dto

import (
	"encoding/json"
	"time"
)

// SessionResponse is the shell's view of the current session. Notice carries
// a pending user-visible message (e.g. the expiry notice) at most once.
type SessionResponse struct {
	Authenticated bool            `json:"authenticated"`
	User          json.RawMessage `json:"user,omitempty"`
	Organization  json.RawMessage `json:"organization,omitempty"`
	Branch        json.RawMessage `json:"branch,omitempty"`
	CurrentDay    string          `json:"currentDay,omitempty"`
	Privileges    json.RawMessage `json:"privileges,omitempty"`
	ExpiresAt     *time.Time      `json:"expiresAt,omitempty"`
	Notice        string          `json:"notice,omitempty"`
}
