package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estatekit/console/config"
)

// VersionRoutes -.
type VersionRoutes struct {
	cfg *config.Config
}

// NewVersionRoute -.
func NewVersionRoute(cfg *config.Config) *VersionRoutes {
	return &VersionRoutes{cfg: cfg}
}

// VersionHandler reports the running build.
func (r *VersionRoutes) VersionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    r.cfg.App.Name,
		"repo":    r.cfg.App.Repo,
		"version": r.cfg.App.Version,
	})
}
