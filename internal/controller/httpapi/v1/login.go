// Package v1 implements the console API handlers. Each concern in its own file.
package v1

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/estatekit/console/config"
	dto "github.com/estatekit/console/internal/entity/dto/v1"
	"github.com/estatekit/console/internal/usecase"
	"github.com/estatekit/console/internal/usecase/guard"
	"github.com/estatekit/console/internal/usecase/session"
	"github.com/estatekit/console/pkg/logger"
)

// SessionStore is the slice of the session use case the handlers need.
type SessionStore interface {
	Login(session.LoginResult) (session.State, error)
	Logout()
	State() session.State
}

// LoginRoutes handles authentication and owns the guard middleware.
type LoginRoutes struct {
	cfg      *config.Config
	store    SessionStore
	auth     usecase.Authenticator
	verifier *oidc.IDTokenVerifier
	l        logger.Interface
}

// NewLoginRoute -.
func NewLoginRoute(cfg *config.Config, store SessionStore, auth usecase.Authenticator, l logger.Interface) *LoginRoutes {
	r := &LoginRoutes{
		cfg:   cfg,
		store: store,
		auth:  auth,
		l:     l,
	}

	// if a clientID is configured, bearer tokens are verified via OIDC
	if cfg.ClientID != "" && cfg.Issuer != "" {
		provider, err := oidc.NewProvider(context.Background(), cfg.Issuer)
		if err != nil {
			l.Warn("http - v1 - NewLoginRoute - OIDC provider unavailable, falling back to local JWT: %v", err)
		} else {
			r.verifier = provider.Verifier(&oidc.Config{ClientID: cfg.ClientID})
		}
	}

	return r
}

// Login validates the credentials against the platform and, on success,
// overwrites the session and mints the console's own bearer token. The
// platform key stays inside the console.
func (r *LoginRoutes) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, err)

		return
	}

	res, err := r.auth.Login(c.Request.Context(), req.Usercode, req.Password)
	if err != nil {
		r.l.Error(err, "http - v1 - Login")
		ErrorResponse(c, err)

		return
	}

	state, err := r.store.Login(res)
	if err != nil {
		r.l.Error(err, "http - v1 - Login - store")
		ErrorResponse(c, err)

		return
	}

	token, err := r.mintToken(req.Usercode, state.Session.ExpiresAt)
	if err != nil {
		r.store.Logout()
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:        token,
		User:         state.Session.User,
		Organization: state.Session.Organization,
		Branch:       state.Session.Branch,
		CurrentDay:   state.Session.CurrentDay,
		Privileges:   state.Session.Privileges,
		ExpiresAt:    state.Session.ExpiresAt,
	})
}

// Logout tears the session down. Idempotent.
func (r *LoginRoutes) Logout(c *gin.Context) {
	r.store.Logout()
	c.Status(http.StatusNoContent)
}

// GuardMiddleware gates the protected tree. It re-reads the session state on
// every request, so a timer-driven expiry is observed immediately, and then
// verifies the bearer token the same way the login response minted it.
func (r *LoginRoutes) GuardMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := guard.Decide(r.store.State(), c.Request.URL.Path, r.cfg.LoginPath)
		if !decision.Allowed {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "unauthorized",
				"redirectTo": decision.RedirectTo,
			})

			return
		}

		tokenString := c.GetHeader("Authorization")
		tokenString = strings.Replace(tokenString, "Bearer ", "", 1)

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

			return
		}

		if r.verifier != nil {
			if _, err := r.verifier.Verify(c.Request.Context(), tokenString); err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

				return
			}
		} else {
			claims := &jwt.MapClaims{}

			token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (interface{}, error) {
				return []byte(r.cfg.JWTKey), nil
			})
			if err != nil || !token.Valid {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})

				return
			}
		}

		c.Next()
	}
}

func (r *LoginRoutes) mintToken(usercode string, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		Subject:   usercode,
		ID:        uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(r.cfg.JWTKey))
}
