package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/estatekit/console/config"
	"github.com/estatekit/console/internal/entity"
	dto "github.com/estatekit/console/internal/entity/dto/v1"
	"github.com/estatekit/console/internal/mocks"
	"github.com/estatekit/console/internal/repository/upstream"
	"github.com/estatekit/console/internal/usecase/session"
	"github.com/estatekit/console/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			JWTKey:    "test-signing-key",
			LoginPath: "/login",
		},
	}
}

func initLoginTest(t *testing.T) (*LoginRoutes, *mocks.MockSessionStore, *mocks.MockAuthenticator) {
	t.Helper()

	mockCtl := gomock.NewController(t)
	t.Cleanup(mockCtl.Finish)

	store := mocks.NewMockSessionStore(mockCtl)
	auth := mocks.NewMockAuthenticator(mockCtl)

	routes := NewLoginRoute(testConfig(), store, auth, logger.New("error"))

	return routes, store, auth
}

func performLogin(routes *LoginRoutes, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.POST("/api/v1/authorize", routes.Login)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/authorize", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	routes, store, auth := initLoginTest(t)

	expiresAt := time.Now().Add(45 * time.Minute).Truncate(time.Second)
	result := session.LoginResult{Token: "key-123", CurrentDay: "2025-06-01"}

	auth.EXPECT().Login(gomock.Any(), "admin", "P@ssw0rd").Return(result, nil)
	store.EXPECT().Login(result).Return(session.State{
		Authenticated: true,
		Session: entity.Session{
			Token:      "key-123",
			CurrentDay: "2025-06-01",
			ExpiresAt:  expiresAt,
		},
	}, nil)

	w := performLogin(routes, `{"usercode":"admin","password":"P@ssw0rd"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var res dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	assert.NotEmpty(t, res.Token)
	assert.NotEqual(t, "key-123", res.Token, "the platform key must not be exposed")
	assert.Equal(t, "2025-06-01", res.CurrentDay)

	// The minted token must verify against the configured key and expire
	// with the session.
	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(res.Token, &claims, func(_ *jwt.Token) (interface{}, error) {
		return []byte("test-signing-key"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
}

func TestLoginHandlerMissingFields(t *testing.T) {
	t.Parallel()

	routes, _, _ := initLoginTest(t)

	w := performLogin(routes, `{"usercode":"admin"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginHandlerRejected(t *testing.T) {
	t.Parallel()

	routes, _, auth := initLoginTest(t)

	auth.EXPECT().Login(gomock.Any(), "admin", "wrong").
		Return(session.LoginResult{}, upstream.AuthError{Message: "invalid credentials"})

	w := performLogin(routes, `{"usercode":"admin","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestLogoutHandler(t *testing.T) {
	t.Parallel()

	routes, store, _ := initLoginTest(t)

	store.EXPECT().Logout()

	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.POST("/api/v1/logout", routes.Logout)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/logout", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func guardedEngine(routes *LoginRoutes) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	protected := engine.Group("/api", routes.GuardMiddleware())
	protected.GET("/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	return engine
}

func mintTestToken(t *testing.T, key string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		Subject:   "admin",
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)

	return token
}

func TestGuardAllowsAuthenticated(t *testing.T) {
	t.Parallel()

	routes, store, _ := initLoginTest(t)

	store.EXPECT().State().Return(session.State{Authenticated: true})

	engine := guardedEngine(routes)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t, "test-signing-key", time.Now().Add(time.Minute)))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuardRedirectsUnauthenticated(t *testing.T) {
	t.Parallel()

	routes, store, _ := initLoginTest(t)

	store.EXPECT().State().Return(session.State{})

	engine := guardedEngine(routes)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t, "test-signing-key", time.Now().Add(time.Minute)))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"redirectTo":"/login"`)
}

func TestGuardRejectsMissingToken(t *testing.T) {
	t.Parallel()

	routes, store, _ := initLoginTest(t)

	store.EXPECT().State().Return(session.State{Authenticated: true})

	engine := guardedEngine(routes)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardRejectsBadSignature(t *testing.T) {
	t.Parallel()

	routes, store, _ := initLoginTest(t)

	store.EXPECT().State().Return(session.State{Authenticated: true})

	engine := guardedEngine(routes)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t, "some-other-key", time.Now().Add(time.Minute)))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	routes, store, _ := initLoginTest(t)

	store.EXPECT().State().Return(session.State{Authenticated: true})

	engine := guardedEngine(routes)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t, "test-signing-key", time.Now().Add(-time.Minute)))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
