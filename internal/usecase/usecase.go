// Package usecase assembles the console's use cases.
package usecase

import (
	"context"

	"github.com/estatekit/console/config"
	"github.com/estatekit/console/internal/repository/sessiondb"
	"github.com/estatekit/console/internal/repository/upstream"
	"github.com/estatekit/console/internal/usecase/refdata"
	"github.com/estatekit/console/internal/usecase/session"
	"github.com/estatekit/console/pkg/db"
	"github.com/estatekit/console/pkg/logger"
)

// Authenticator logs in against the platform.
type Authenticator interface {
	Login(ctx context.Context, usercode, password string) (session.LoginResult, error)
}

// Usecases -.
type Usecases struct {
	Session *session.UseCase
	Notices *session.Noticeboard
	Auth    Authenticator
	RefData *refdata.UseCase
}

// NewUseCases wires repositories, the platform client and the use cases.
func NewUseCases(database *db.SQL, cfg *config.Config, log logger.Interface) *Usecases {
	notices := session.NewNoticeboard()
	repo := sessiondb.New(database, log)
	store := session.New(repo, notices, cfg.SessionDuration, log)

	// The upstream client reads the current token straight from the store.
	api := upstream.New(&cfg.Upstream, store, cfg.RefDataTTL, log)

	return &Usecases{
		Session: store,
		Notices: notices,
		Auth:    api,
		RefData: refdata.New(api, log),
	}
}
