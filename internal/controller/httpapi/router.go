// Package httpapi implements routing paths. Each service in own file.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	ginprometheus "github.com/zsais/go-gin-prometheus"

	"github.com/estatekit/console/config"
	v1 "github.com/estatekit/console/internal/controller/httpapi/v1"
	"github.com/estatekit/console/internal/usecase"
	"github.com/estatekit/console/pkg/logger"
)

// NewRouter -.
func NewRouter(handler *gin.Engine, l logger.Interface, t *usecase.Usecases, cfg *config.Config) {
	// Options
	handler.Use(gin.Logger())
	handler.Use(gin.Recovery())

	// Add Prometheus middleware for automatic HTTP metrics
	// Don't automatically register /metrics endpoint - we have our own
	p := ginprometheus.NewPrometheus("gin")
	p.MetricsPath = ""
	handler.Use(p.HandlerFunc())

	// Public routes. Logout only ever clears state and stays idempotent, and
	// the session snapshot must remain pollable after expiry so the one-time
	// expiry notice can be delivered; neither exposes the platform token.
	login := v1.NewLoginRoute(cfg, t.Session, t.Auth, l)
	handler.POST("/api/v1/authorize", login.Login)
	handler.POST("/api/v1/logout", login.Logout)

	public := handler.Group("/api/v1")
	{
		v1.NewSessionRoutes(public, t.Session, t.Notices, l)
	}

	// K8s probe
	handler.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Prometheus metrics
	handler.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// version info
	vr := v1.NewVersionRoute(cfg)
	handler.GET("/version", vr.VersionHandler)

	// Protected routes behind the session guard
	var protected *gin.RouterGroup
	if cfg.Disabled {
		protected = handler.Group("/api")
	} else {
		protected = handler.Group("/api", login.GuardMiddleware())
	}

	// Routers
	h := protected.Group("/v1")
	{
		v1.NewRefDataRoutes(h, t.RefData, l)
	}
}
