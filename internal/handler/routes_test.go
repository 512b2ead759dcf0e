package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-dashboard-api/internal/dto"
	internalmiddleware "github.com/noah-isme/sma-dashboard-api/internal/middleware"
	"github.com/noah-isme/sma-dashboard-api/internal/models"
	"github.com/noah-isme/sma-dashboard-api/internal/service"
	"github.com/noah-isme/sma-dashboard-api/pkg/response"
)

func buildDashboardRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(internalmiddleware.WithResponseMeta())
	router.Use(func(c *gin.Context) {
		if role := c.GetHeader("X-Test-Role"); role != "" {
			c.Set(internalmiddleware.ContextUserKey, &models.JWTClaims{UserID: "test-user", Role: models.UserRole(role)})
		}
		c.Next()
	})

	Routes{
		Resources: NewResourceHandler(newSeededCatalog(t)),
		Metrics:   NewMetricsHandler(service.NewMetricsService(), nil),
	}.Register(router, "/api/v1")
	return router
}

func performRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRoutesListThenTransition(t *testing.T) {
	router := buildDashboardRouter(t)

	w := performRequest(router, httptest.NewRequest(http.MethodGet, "/api/v1/resources/candidates?search=&filter%5Bstatus%5D=Applied", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Equal(t, 3, env.Pagination.TotalCount)
	require.Equal(t, false, env.Meta["cache_hit"])
	require.Equal(t, "MISS", w.Header().Get(internalmiddleware.CacheHeader))

	body, _ := json.Marshal(dto.TransitionRequest{Status: "Screening"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/resources/candidates/CND-001/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-Role", string(models.RoleHRAdmin))
	w = performRequest(router, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, httptest.NewRequest(http.MethodGet, "/api/v1/resources/candidates?filter%5Bstatus%5D=Applied", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Equal(t, 2, env.Pagination.TotalCount)

	w = performRequest(router, httptest.NewRequest(http.MethodGet, "/api/v1/resources/candidates/CND-001/history", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"actor_role":"hr_admin"`)
}

func TestRoutesHealthAndSummary(t *testing.T) {
	router := buildDashboardRouter(t)

	require.Equal(t, http.StatusOK, performRequest(router, httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
	require.Equal(t, http.StatusOK, performRequest(router, httptest.NewRequest(http.MethodGet, "/ready", nil)).Code)
	require.Equal(t, http.StatusOK, performRequest(router, httptest.NewRequest(http.MethodGet, "/api/v1/metrics/summary", nil)).Code)
	require.Equal(t, http.StatusOK, performRequest(router, httptest.NewRequest(http.MethodGet, "/metrics", nil)).Code)
}
