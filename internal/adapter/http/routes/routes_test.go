package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"plumbing_estimator/internal/adapter/http/handlers/mocks"
	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/infrastructure/config"
	"plumbing_estimator/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mocks.NewMockICatalogUseCase(ctrl)
	estimates := mocks.NewMockIEstimateUseCase(ctrl)
	diagnostics := mocks.NewMockIDiagnosticsUseCase(ctrl)

	router := NewRouter(config.Config{CORSAllowOrigins: []string{"*"}}, Dependencies{
		Catalog:     catalog,
		Estimates:   estimates,
		Diagnostics: diagnostics,
		Metrics:     metrics.New(),
	})

	serve := func(method, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
		return w
	}

	t.Run("root", func(t *testing.T) {
		w := serve(http.MethodGet, "/")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Plumbing API running"}`, w.Body.String())
	})

	t.Run("services mounted at root", func(t *testing.T) {
		catalog.EXPECT().ListServices(gomock.Any()).Return([]entities.Service{}, nil)
		w := serve(http.MethodGet, "/services")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("quotes default limit", func(t *testing.T) {
		estimates.EXPECT().ListQuotes(gomock.Any(), 20).Return([]entities.Quote{}, nil)
		w := serve(http.MethodGet, "/quotes")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		w := serve(http.MethodGet, "/metrics")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "plumbing_http_requests_total")
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/estimate", nil)
		req.Header.Set("Origin", "http://frontend.test")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestCorsConfig(t *testing.T) {
	all := corsConfig(nil)
	assert.True(t, all.AllowAllOrigins)
	assert.False(t, all.AllowCredentials)

	listed := corsConfig([]string{"http://localhost:3000"})
	assert.False(t, listed.AllowAllOrigins)
	assert.Equal(t, []string{"http://localhost:3000"}, listed.AllowOrigins)
	assert.True(t, listed.AllowCredentials)
}
