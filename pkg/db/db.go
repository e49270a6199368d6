// Package db provides the local sqlite database used for durable console state.
package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	_defaultMaxPoolSize  = 1
	_defaultConnAttempts = 10
	_defaultConnTimeout  = time.Second
)

// OpenFunc matches sql.Open and allows tests to inject failures.
type OpenFunc func(driverName, dataSourceName string) (*sql.DB, error)

// SQL wraps the sqlite handle together with a shared statement builder.
type SQL struct {
	maxPoolSize  int
	connAttempts int
	connTimeout  time.Duration
	foreignKeys  bool

	Builder squirrel.StatementBuilderType
	Conn    *sql.DB
}

// New opens (creating if necessary) the sqlite database at path and applies
// pending schema migrations.
func New(path string, open OpenFunc, opts ...Option) (*SQL, error) {
	s := &SQL{
		maxPoolSize:  _defaultMaxPoolSize,
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
	}

	// Custom options
	for _, opt := range opts {
		opt(s)
	}

	s.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

	dsn := path
	if s.foreignKeys {
		dsn += "?_pragma=foreign_keys(1)"
	}

	conn, err := open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db - New - open: %w", err)
	}

	conn.SetMaxOpenConns(s.maxPoolSize)

	for s.connAttempts > 0 {
		if err = conn.Ping(); err == nil {
			break
		}

		time.Sleep(s.connTimeout)

		s.connAttempts--
	}

	if err != nil {
		return nil, fmt.Errorf("db - New - ping: %w", err)
	}

	s.Conn = conn

	if err := s.migrate(); err != nil {
		conn.Close()

		return nil, fmt.Errorf("db - New - migrate: %w", err)
	}

	return s, nil
}

func (s *SQL) migrate() error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}

	driver, err := sqlitemigrate.WithInstance(s.Conn, &sqlitemigrate.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// Close -.
func (s *SQL) Close() {
	if s.Conn != nil {
		s.Conn.Close()
	}
}
