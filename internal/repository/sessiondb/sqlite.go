// Package sessiondb persists the console session in the local sqlite store.
package sessiondb

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/estatekit/console/internal/entity"
	"github.com/estatekit/console/internal/usecase/session"
	"github.com/estatekit/console/pkg/db"
	"github.com/estatekit/console/pkg/logger"
)

// The three independent entries making up the persisted session. The expiry
// is a stringified absolute epoch-millisecond timestamp.
const (
	keyToken   = "auth_token"
	keyPayload = "session_payload"
	keyExpiry  = "session_expiry"
)

// payload mirrors the persisted session payload entry.
type payload struct {
	User         json.RawMessage `json:"user"`
	Organization json.RawMessage `json:"organization"`
	Branch       json.RawMessage `json:"branch"`
	CurrentDay   string          `json:"currentDay"`
	Privileges   json.RawMessage `json:"privileges"`
}

// Repository -.
type Repository struct {
	db  *db.SQL
	log logger.Interface
}

var _ session.Repository = (*Repository)(nil)

// New -.
func New(database *db.SQL, log logger.Interface) *Repository {
	return &Repository{db: database, log: log}
}

// Load reads the persisted session. Absent, incomplete or malformed entries
// are all reported as session.ErrNoSession; the store discards them.
func (r *Repository) Load() (entity.Session, error) {
	entries, err := r.readEntries()
	if err != nil {
		r.log.Error(err, "sessiondb - Load - readEntries")

		return entity.Session{}, session.ErrNoSession
	}

	token := entries[keyToken]
	if token == "" {
		return entity.Session{}, session.ErrNoSession
	}

	millis, err := strconv.ParseInt(entries[keyExpiry], 10, 64)
	if err != nil {
		return entity.Session{}, session.ErrNoSession
	}

	var p payload
	if err := json.Unmarshal([]byte(entries[keyPayload]), &p); err != nil {
		return entity.Session{}, session.ErrNoSession
	}

	return entity.Session{
		Token:        token,
		User:         p.User,
		Organization: p.Organization,
		Branch:       p.Branch,
		CurrentDay:   p.CurrentDay,
		Privileges:   p.Privileges,
		ExpiresAt:    time.UnixMilli(millis),
	}, nil
}

// Save writes token, payload and expiry in a single transaction so they are
// persisted as a unit.
func (r *Repository) Save(sess entity.Session) error {
	body, err := json.Marshal(payload{
		User:         sess.User,
		Organization: sess.Organization,
		Branch:       sess.Branch,
		CurrentDay:   sess.CurrentDay,
		Privileges:   sess.Privileges,
	})
	if err != nil {
		return fmt.Errorf("sessiondb - Save - marshal payload: %w", err)
	}

	tx, err := r.db.Conn.Begin()
	if err != nil {
		return fmt.Errorf("sessiondb - Save - begin: %w", err)
	}

	entries := map[string]string{
		keyToken:   sess.Token,
		keyPayload: string(body),
		keyExpiry:  strconv.FormatInt(sess.ExpiresAt.UnixMilli(), 10),
	}

	for key, value := range entries {
		if err := r.upsert(tx, key, value); err != nil {
			tx.Rollback()

			return fmt.Errorf("sessiondb - Save - upsert %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// Clear removes all session entries. Clearing an empty store is a no-op.
func (r *Repository) Clear() error {
	sqlQuery, args, err := r.db.Builder.
		Delete("session_state").
		Where("key IN (?, ?, ?)", keyToken, keyPayload, keyExpiry).
		ToSql()
	if err != nil {
		return fmt.Errorf("sessiondb - Clear - ToSql: %w", err)
	}

	if _, err := r.db.Conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("sessiondb - Clear - exec: %w", err)
	}

	return nil
}

func (r *Repository) readEntries() (map[string]string, error) {
	sqlQuery, args, err := r.db.Builder.
		Select("key", "value").
		From("session_state").
		Where("key IN (?, ?, ?)", keyToken, keyPayload, keyExpiry).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make(map[string]string)

	for rows.Next() {
		var key, value string

		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}

		entries[key] = value
	}

	return entries, rows.Err()
}

func (r *Repository) upsert(tx *sql.Tx, key, value string) error {
	sqlQuery, args, err := r.db.Builder.
		Insert("session_state").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(sqlQuery, args...)

	return err
}
