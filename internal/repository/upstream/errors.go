package upstream

import (
	"errors"
	"fmt"
)

// ErrMissingAuthKey is returned when the platform accepted the credentials
// but the response carried no authentication key.
var ErrMissingAuthKey = errors.New("authentication key missing")

// AuthError is a credential or transport failure during login. The session
// store is untouched when it occurs.
type AuthError struct {
	Message string
}

func (e AuthError) Error() string {
	return "login failed: " + e.Message
}

// RequestError is a failed authenticated platform call.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e RequestError) Error() string {
	return fmt.Sprintf("upstream request failed (status %d): %s", e.StatusCode, e.Message)
}
