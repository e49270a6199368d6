package sessiondb_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatekit/console/internal/entity"
	"github.com/estatekit/console/internal/repository/sessiondb"
	"github.com/estatekit/console/internal/usecase/session"
	"github.com/estatekit/console/pkg/db"
	"github.com/estatekit/console/pkg/logger"
)

func initRepoTest(t *testing.T) (*sessiondb.Repository, *db.SQL) {
	t.Helper()

	database, err := db.New(filepath.Join(t.TempDir(), "console.db"), sql.Open)
	require.NoError(t, err)

	t.Cleanup(database.Close)

	return sessiondb.New(database, logger.New("error")), database
}

func testSession() entity.Session {
	return entity.Session{
		Token:        "key-123",
		User:         []byte(`{"id":7,"name":"jmoreno"}`),
		Organization: []byte(`{"id":1}`),
		Branch:       []byte(`{"id":2}`),
		CurrentDay:   "2025-06-01",
		Privileges:   []byte(`["refdata.read","refdata.write"]`),
		ExpiresAt:    time.Date(2025, 6, 1, 9, 45, 0, 0, time.UTC),
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Parallel()

	repo, _ := initRepoTest(t)

	want := testSession()
	require.NoError(t, repo.Save(want))

	got, err := repo.Load()
	require.NoError(t, err)

	assert.Equal(t, want.Token, got.Token)
	assert.JSONEq(t, string(want.User), string(got.User))
	assert.JSONEq(t, string(want.Organization), string(got.Organization))
	assert.JSONEq(t, string(want.Branch), string(got.Branch))
	assert.Equal(t, want.CurrentDay, got.CurrentDay)
	assert.JSONEq(t, string(want.Privileges), string(got.Privileges))
	assert.Equal(t, want.ExpiresAt.UnixMilli(), got.ExpiresAt.UnixMilli())
}

func TestSaveWritesThreeEntries(t *testing.T) {
	t.Parallel()

	repo, database := initRepoTest(t)

	require.NoError(t, repo.Save(testSession()))

	rows, err := database.Conn.Query("SELECT key FROM session_state ORDER BY key")
	require.NoError(t, err)

	defer rows.Close()

	var keys []string

	for rows.Next() {
		var key string

		require.NoError(t, rows.Scan(&key))

		keys = append(keys, key)
	}

	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"auth_token", "session_expiry", "session_payload"}, keys)
}

func TestSaveOverwrites(t *testing.T) {
	t.Parallel()

	repo, _ := initRepoTest(t)

	first := testSession()
	require.NoError(t, repo.Save(first))

	second := testSession()
	second.Token = "key-456"
	second.ExpiresAt = first.ExpiresAt.Add(45 * time.Minute)
	require.NoError(t, repo.Save(second))

	got, err := repo.Load()
	require.NoError(t, err)

	assert.Equal(t, "key-456", got.Token)
	assert.Equal(t, second.ExpiresAt.UnixMilli(), got.ExpiresAt.UnixMilli())
}

func TestLoadEmptyStore(t *testing.T) {
	t.Parallel()

	repo, _ := initRepoTest(t)

	_, err := repo.Load()

	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestLoadMalformedExpiry(t *testing.T) {
	t.Parallel()

	repo, database := initRepoTest(t)

	require.NoError(t, repo.Save(testSession()))

	_, err := database.Conn.Exec("UPDATE session_state SET value = 'not-a-number' WHERE key = 'session_expiry'")
	require.NoError(t, err)

	_, err = repo.Load()

	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestLoadMalformedPayload(t *testing.T) {
	t.Parallel()

	repo, database := initRepoTest(t)

	require.NoError(t, repo.Save(testSession()))

	_, err := database.Conn.Exec("UPDATE session_state SET value = '{broken' WHERE key = 'session_payload'")
	require.NoError(t, err)

	_, err = repo.Load()

	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestLoadMissingToken(t *testing.T) {
	t.Parallel()

	repo, database := initRepoTest(t)

	require.NoError(t, repo.Save(testSession()))

	_, err := database.Conn.Exec("DELETE FROM session_state WHERE key = 'auth_token'")
	require.NoError(t, err)

	_, err = repo.Load()

	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestClear(t *testing.T) {
	t.Parallel()

	repo, _ := initRepoTest(t)

	require.NoError(t, repo.Save(testSession()))
	require.NoError(t, repo.Clear())

	_, err := repo.Load()
	assert.ErrorIs(t, err, session.ErrNoSession)

	// Clearing an empty store is a no-op.
	require.NoError(t, repo.Clear())
}

func TestSessionSurvivesReopen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "console.db")

	first, err := db.New(path, sql.Open)
	require.NoError(t, err)

	repo := sessiondb.New(first, logger.New("error"))
	require.NoError(t, repo.Save(testSession()))
	first.Close()

	second, err := db.New(path, sql.Open)
	require.NoError(t, err)

	defer second.Close()

	got, err := sessiondb.New(second, logger.New("error")).Load()
	require.NoError(t, err)
	assert.Equal(t, "key-123", got.Token)
}
