package session

import "sync"

// Noticeboard collects user-visible session notices. The UI shell polls the
// session endpoint, which consumes the pending notice so it is shown exactly
// once.
type Noticeboard struct {
	mu      sync.Mutex
	pending string
}

var _ Notifier = (*Noticeboard)(nil)

// NewNoticeboard -.
func NewNoticeboard() *Noticeboard {
	return &Noticeboard{}
}

// SessionStarted discards an unread notice. A notice left over from an
// expired session must not greet the next login.
func (n *Noticeboard) SessionStarted() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.pending = ""
}

// SessionExpired records the expiry notice, replacing any unread one.
func (n *Noticeboard) SessionExpired(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.pending = message
}

// Consume returns the pending notice and clears it.
func (n *Noticeboard) Consume() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	msg := n.pending
	n.pending = ""

	return msg
}
