// Package app configures and runs application.
package app

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	ginpprof "github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/estatekit/console/config"
	"github.com/estatekit/console/internal/controller/httpapi"
	"github.com/estatekit/console/internal/usecase"
	"github.com/estatekit/console/pkg/db"
	"github.com/estatekit/console/pkg/httpserver"
	"github.com/estatekit/console/pkg/logger"
)

var Version = "DEVELOPMENT"

// Run creates objects via constructors.
func Run(cfg *config.Config) {
	log := logger.New(cfg.Level)
	cfg.Version = Version
	log.Info("app - Run - version: " + cfg.Version)
	// route standard and Gin logs through our JSON logger
	logger.SetupStdLog(log)
	logger.SetupGin(log)
	// Repository
	database, err := db.New(cfg.DB.Path, sql.Open, db.MaxPoolSize(cfg.PoolMax), db.EnableForeignKeys(true))
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - db.New: %w", err))
	}

	defer database.Close()

	// Use case
	usecases := usecase.NewUseCases(database, cfg, log)

	// Restore a persisted session before the first request can observe state.
	state := usecases.Session.Initialize()
	log.Info(fmt.Sprintf("app - Run - session restored: %t", state.Authenticated))

	handler := setupHTTPHandler(cfg, log, usecases)

	httpServer := httpserver.New(
		handler,
		httpserver.Port(cfg.Host, cfg.Port),
		httpserver.TLS(cfg.TLS.Enabled, cfg.TLS.CertFile, cfg.TLS.KeyFile),
		httpserver.Logger(log),
	)

	waitForShutdown(log, httpServer)
	shutdownServers(log, httpServer, usecases)
}

func setupHTTPHandler(cfg *config.Config, log logger.Interface, usecases *usecase.Usecases) *gin.Engine {
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := gin.New()

	defaultConfig := cors.DefaultConfig()
	defaultConfig.AllowOrigins = cfg.AllowedOrigins
	defaultConfig.AllowHeaders = cfg.AllowedHeaders

	handler.Use(cors.New(defaultConfig))
	httpapi.NewRouter(handler, log, usecases, cfg)

	// Optionally enable pprof endpoints (e.g., for staging) via env ENABLE_PPROF=true
	if os.Getenv("ENABLE_PPROF") == "true" {
		ginpprof.Register(handler, "debug/pprof")
		log.Info("pprof enabled at /debug/pprof/")
	}

	return handler
}

func waitForShutdown(log logger.Interface, httpServer *httpserver.Server) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}
}

func shutdownServers(log logger.Interface, httpServer *httpserver.Server, usecases *usecase.Usecases) {
	if err := httpServer.Shutdown(); err != nil {
		log.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}

	// Cancels the expiry task only; persisted state survives a restart.
	usecases.Session.Shutdown()
}
