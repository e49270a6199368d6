package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/estatekit/console/internal/mocks"
	"github.com/estatekit/console/internal/usecase/refdata"
	"github.com/estatekit/console/pkg/logger"
)

func initRefDataRoutesTest(t *testing.T) (*gin.Engine, *mocks.MockRefDataFeature) {
	t.Helper()

	mockCtl := gomock.NewController(t)
	t.Cleanup(mockCtl.Finish)

	feature := mocks.NewMockRefDataFeature(mockCtl)

	gin.SetMode(gin.TestMode)

	engine := gin.New()
	handler := engine.Group("/api/v1")
	NewRefDataRoutes(handler, feature, logger.New("error"))

	return engine, feature
}

func TestRefDataListHandler(t *testing.T) {
	t.Parallel()

	engine, feature := initRefDataRoutesTest(t)

	feature.EXPECT().List(gomock.Any(), "categories").
		Return(json.RawMessage(`[{"id":1,"name":"Residential"}]`), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/refdata/categories", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Residential"}]`, w.Body.String())
}

func TestRefDataListUnknownResource(t *testing.T) {
	t.Parallel()

	engine, feature := initRefDataRoutesTest(t)

	feature.EXPECT().List(gomock.Any(), "nope").
		Return(nil, refdata.ErrUnknownResource)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/refdata/nope", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRefDataAddHandler(t *testing.T) {
	t.Parallel()

	engine, feature := initRefDataRoutesTest(t)

	body := `{"name":"Commercial"}`
	feature.EXPECT().Add(gomock.Any(), "categories", json.RawMessage(body)).
		Return(json.RawMessage(`{"id":2,"name":"Commercial"}`), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/refdata/categories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":2,"name":"Commercial"}`, w.Body.String())
}

func TestRefDataUpdateHandler(t *testing.T) {
	t.Parallel()

	engine, feature := initRefDataRoutesTest(t)

	body := `{"name":"Industrial"}`
	feature.EXPECT().Update(gomock.Any(), "categories", "2", json.RawMessage(body)).
		Return(json.RawMessage(`{"id":2,"name":"Industrial"}`), nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/refdata/categories/2", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefDataDeleteHandler(t *testing.T) {
	t.Parallel()

	engine, feature := initRefDataRoutesTest(t)

	feature.EXPECT().Delete(gomock.Any(), "categories", "2").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/refdata/categories/2", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRefDataResourcesHandler(t *testing.T) {
	t.Parallel()

	engine, _ := initRefDataRoutesTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/refdata", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Resources []string `json:"resources"`
	}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res.Resources, 20)
}
