package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dto "github.com/estatekit/console/internal/entity/dto/v1"
	"github.com/estatekit/console/pkg/logger"
)

// NoticeSource hands out pending user-visible messages at most once.
type NoticeSource interface {
	Consume() string
}

type sessionRoutes struct {
	store   SessionStore
	notices NoticeSource
	l       logger.Interface
}

// NewSessionRoutes -.
func NewSessionRoutes(handler *gin.RouterGroup, store SessionStore, notices NoticeSource, l logger.Interface) {
	r := &sessionRoutes{store, notices, l}

	h := handler.Group("/session")
	{
		h.GET("", r.current)
	}
}

// current reports the session snapshot. Expiry is re-verified inside the
// store on every read, so this endpoint never reports a stale session.
func (r *sessionRoutes) current(c *gin.Context) {
	state := r.store.State()

	res := dto.SessionResponse{
		Authenticated: state.Authenticated,
		Notice:        r.notices.Consume(),
	}

	if state.Authenticated {
		res.User = state.Session.User
		res.Organization = state.Session.Organization
		res.Branch = state.Session.Branch
		res.CurrentDay = state.Session.CurrentDay
		res.Privileges = state.Session.Privileges

		expires := state.Session.ExpiresAt
		res.ExpiresAt = &expires
	}

	c.JSON(http.StatusOK, res)
}
