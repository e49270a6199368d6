// Package guard decides whether a navigation target is reachable given the
// current session state. It is a pure predicate; routing composes it.
package guard

import "github.com/estatekit/console/internal/usecase/session"

// Decision is the outcome of a guard check. When Allowed is false, RedirectTo
// names the login entry point; the attempted target is discarded.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Decide gates targetPath on the session state. The login entry point is
// always reachable, including while authenticated; every other path requires
// an authenticated session.
func Decide(state session.State, targetPath, loginPath string) Decision {
	if targetPath == loginPath {
		return Decision{Allowed: true}
	}

	if state.Authenticated {
		return Decision{Allowed: true}
	}

	return Decision{RedirectTo: loginPath}
}
