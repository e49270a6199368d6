package session

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/estatekit/console/internal/entity"
	"github.com/estatekit/console/pkg/logger"
)

// DefaultDuration is the fixed session lifetime when none is configured.
const DefaultDuration = 45 * time.Minute

// ExpiredNotice is the message raised when the expiry timer tears a session down.
const ExpiredNotice = "session expired, please log in again"

// LoginResult is the successful payload of the platform login call.
type LoginResult struct {
	Token        string
	User         json.RawMessage
	Organization json.RawMessage
	Branch       json.RawMessage
	CurrentDay   string
	Privileges   json.RawMessage
}

// State is a point-in-time snapshot of the store. Authenticated is never true
// with an empty token.
type State struct {
	Authenticated bool
	Session       entity.Session
}

// Timer is the cancellable handle of a scheduled expiry task.
type Timer interface {
	Stop() bool
}

// ScheduleFunc arms a one-shot task. Injectable so tests can fire it manually.
type ScheduleFunc func(d time.Duration, f func()) Timer

func afterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// UseCase is the session store. All reads and writes of authentication state
// go through it; views never hold a competing copy.
type UseCase struct {
	repo     Repository
	notifier Notifier
	duration time.Duration
	log      logger.Interface

	now      func() time.Time
	schedule ScheduleFunc

	mu            sync.Mutex
	current       entity.Session
	authenticated bool
	timer         Timer
	timerGen      uint64
}

// Option -.
type Option func(*UseCase)

// WithClock injects the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) {
		uc.now = now
	}
}

// WithScheduler injects the expiry task scheduler (tests).
func WithScheduler(schedule ScheduleFunc) Option {
	return func(uc *UseCase) {
		uc.schedule = schedule
	}
}

// New creates the session store. The store is unauthenticated until
// Initialize or Login succeeds.
func New(repo Repository, notifier Notifier, duration time.Duration, log logger.Interface, opts ...Option) *UseCase {
	if duration <= 0 {
		duration = DefaultDuration
	}

	uc := &UseCase{
		repo:     repo,
		notifier: notifier,
		duration: duration,
		log:      log,
		now:      time.Now,
		schedule: afterFunc,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Initialize hydrates the store from persisted state. Expired, absent or
// malformed state is discarded and the store comes up unauthenticated. It
// never fails; it runs once, synchronously, before any consumer reads state.
func (uc *UseCase) Initialize() State {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	sess, err := uc.repo.Load()
	if err != nil {
		uc.discardLocked()

		return uc.stateLocked()
	}

	if sess.Token == "" || sess.IsExpired(uc.now()) {
		uc.discardLocked()

		return uc.stateLocked()
	}

	uc.current = sess
	uc.authenticated = true
	uc.armTimerLocked()

	uc.log.Info("session - Initialize - restored session expiring at " + sess.ExpiresAt.Format(time.RFC3339))

	return uc.stateLocked()
}

// Login overwrites the session with the given login result. Storage is
// written before in-memory state so a crash in between cannot grant
// unauthenticated access on the next start. A previous session and its
// pending expiry task are superseded.
func (uc *UseCase) Login(res LoginResult) (State, error) {
	if res.Token == "" {
		return uc.State(), ErrMissingToken
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	sess := entity.Session{
		Token:        res.Token,
		User:         res.User,
		Organization: res.Organization,
		Branch:       res.Branch,
		CurrentDay:   res.CurrentDay,
		Privileges:   res.Privileges,
		ExpiresAt:    uc.now().Add(uc.duration),
	}

	if err := uc.repo.Save(sess); err != nil {
		return uc.stateLocked(), fmt.Errorf("session - Login - repo.Save: %w", err)
	}

	uc.current = sess
	uc.authenticated = true
	uc.armTimerLocked()

	if uc.notifier != nil {
		uc.notifier.SessionStarted()
	}

	loginsTotal.Inc()

	return uc.stateLocked(), nil
}

// Logout clears persisted and in-memory state and cancels any pending expiry
// task. Calling it when already logged out is a no-op, not an error.
func (uc *UseCase) Logout() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.authenticated {
		logoutsTotal.Inc()
	}

	uc.discardLocked()
}

// State returns the current snapshot. The expiry timestamp is re-verified on
// every read, so a suspended or late timer can never cause a stale session to
// be reported as authenticated.
func (uc *UseCase) State() State {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.authenticated && uc.current.IsExpired(uc.now()) {
		uc.discardLocked()
	}

	return uc.stateLocked()
}

// Token returns the current platform token, or "" when unauthenticated. It
// satisfies the upstream client's TokenSource.
func (uc *UseCase) Token() string {
	return uc.State().Session.Token
}

// Shutdown cancels the pending expiry task without touching persisted state,
// so the session survives a console restart.
func (uc *UseCase) Shutdown() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.cancelTimerLocked()
}

func (uc *UseCase) stateLocked() State {
	return State{
		Authenticated: uc.authenticated,
		Session:       uc.current,
	}
}

// discardLocked tears the session down: storage first, then memory, then the
// timer. Safe to call when already logged out.
func (uc *UseCase) discardLocked() {
	uc.cancelTimerLocked()

	if err := uc.repo.Clear(); err != nil {
		uc.log.Error(err, "session - discard - repo.Clear")
	}

	uc.current = entity.Session{}
	uc.authenticated = false
}

// armTimerLocked schedules the one-shot expiry task. Any previously armed
// task is cancelled first; there is never more than one outstanding task.
func (uc *UseCase) armTimerLocked() {
	uc.cancelTimerLocked()

	remaining := uc.current.ExpiresAt.Sub(uc.now())
	if remaining <= 0 {
		uc.expireLocked()

		return
	}

	gen := uc.timerGen
	uc.timer = uc.schedule(remaining, func() {
		uc.onExpiryTimer(gen)
	})
}

func (uc *UseCase) cancelTimerLocked() {
	if uc.timer != nil {
		uc.timer.Stop()
		uc.timer = nil
	}

	// Invalidate callbacks of timers that already fired but have not run yet.
	uc.timerGen++
}

func (uc *UseCase) onExpiryTimer(gen uint64) {
	uc.mu.Lock()

	if gen != uc.timerGen || !uc.authenticated {
		// Superseded by a logout or a newer login.
		uc.mu.Unlock()

		return
	}

	uc.expireLocked()
	uc.mu.Unlock()
}

func (uc *UseCase) expireLocked() {
	uc.discardLocked()
	expirationsTotal.Inc()
	uc.log.Info("session - expired")

	if uc.notifier != nil {
		uc.notifier.SessionExpired(ExpiredNotice)
	}
}
