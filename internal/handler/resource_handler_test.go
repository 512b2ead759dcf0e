package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-dashboard-api/internal/dto"
	"github.com/noah-isme/sma-dashboard-api/internal/middleware"
	"github.com/noah-isme/sma-dashboard-api/internal/models"
	"github.com/noah-isme/sma-dashboard-api/internal/repository"
	"github.com/noah-isme/sma-dashboard-api/internal/seed"
	"github.com/noah-isme/sma-dashboard-api/internal/service"
	"github.com/noah-isme/sma-dashboard-api/pkg/response"
)

func newGinContext(method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func newSeededCatalog(t *testing.T) *service.Catalog {
	t.Helper()
	db := repository.OpenMemoryDB()
	store := repository.NewMemoryRecordRepository(db)
	audit := repository.NewMemoryAuditRepository(db)

	rows, err := seed.All(time.Now().UTC())
	require.NoError(t, err)
	for _, resourceRows := range rows {
		require.NoError(t, store.Upsert(context.Background(), resourceRows))
	}

	catalog := service.NewCatalog()
	require.NoError(t, service.RegisterResources(catalog, store, audit, 5, nil))
	return catalog
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestResourceHandlerCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewResourceHandler(newSeededCatalog(t))

	c, w := newGinContext(http.MethodGet, "/resources", nil)
	handler.Catalog(c)

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data []dto.ResourceDescriptor `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Data, 10)
}

func TestResourceHandlerListFiltersAndPaginates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewResourceHandler(newSeededCatalog(t))

	c, w := newGinContext(http.MethodGet, "/resources/leave-requests?filter[status]=all&page=2", nil)
	c.Params = gin.Params{{Key: "resource", Value: service.ResourceLeaveRequests}}
	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotNil(t, env.Pagination)
	require.Equal(t, 2, env.Pagination.Page)
	require.Equal(t, 12, env.Pagination.TotalCount)
	require.Equal(t, 3, env.Pagination.TotalPages)
	require.Contains(t, env.Meta, "query")
}

func TestResourceHandlerListKeepsSearchTermAsSent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewResourceHandler(newSeededCatalog(t))

	cases := []struct {
		search string
		total  int
	}{
		{search: "Aarav%20", total: 1},
		{search: "Shah%20", total: 0},
		{search: "", total: 12},
	}
	for _, tc := range cases {
		c, w := newGinContext(http.MethodGet, "/resources/attendance?search="+tc.search, nil)
		c.Params = gin.Params{{Key: "resource", Value: service.ResourceAttendance}}
		handler.List(c)

		require.Equal(t, http.StatusOK, w.Code, tc.search)
		var env response.Envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.Equal(t, tc.total, env.Pagination.TotalCount, tc.search)
	}
}

func TestResourceHandlerListUnknownField(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewResourceHandler(newSeededCatalog(t))

	c, w := newGinContext(http.MethodGet, "/resources/leave-requests?filter[colour]=red", nil)
	c.Params = gin.Params{{Key: "resource", Value: service.ResourceLeaveRequests}}
	handler.List(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResourceHandlerListUnknownResource(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewResourceHandler(newSeededCatalog(t))

	c, w := newGinContext(http.MethodGet, "/resources/invoices", nil)
	c.Params = gin.Params{{Key: "resource", Value: "invoices"}}
	handler.List(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestResourceHandlerTransition(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewResourceHandler(newSeededCatalog(t))

	payload, _ := json.Marshal(dto.TransitionRequest{Status: "Approved", Note: "ok"})
	c, w := newGinContext(http.MethodPatch, "/resources/leave-requests/LR-001/status", payload)
	c.Params = gin.Params{{Key: "resource", Value: service.ResourceLeaveRequests}, {Key: "id", Value: "LR-001"}}
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "hr-1", Role: models.RoleHRAdmin})
	handler.Transition(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = newGinContext(http.MethodGet, "/resources/leave-requests/LR-001/history", nil)
	c.Params = gin.Params{{Key: "resource", Value: service.ResourceLeaveRequests}, {Key: "id", Value: "LR-001"}}
	handler.History(c)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data []models.AuditLog `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Data, 1)
	require.Equal(t, "Pending", env.Data[0].FromStatus)
	require.Equal(t, "Approved", env.Data[0].ToStatus)
	require.NotNil(t, env.Data[0].ActorID)
	require.Equal(t, "hr-1", *env.Data[0].ActorID)
}

func TestResourceHandlerTransitionRejectsDisallowedMove(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewResourceHandler(newSeededCatalog(t))

	payload, _ := json.Marshal(dto.TransitionRequest{Status: "Approved"})
	c, w := newGinContext(http.MethodPatch, "/resources/leave-requests/LR-001/status", payload)
	c.Params = gin.Params{{Key: "resource", Value: service.ResourceLeaveRequests}, {Key: "id", Value: "LR-001"}}
	handler.Transition(c)
	require.Equal(t, http.StatusOK, w.Code)

	payload, _ = json.Marshal(dto.TransitionRequest{Status: "Pending"})
	c, w = newGinContext(http.MethodPatch, "/resources/leave-requests/LR-001/status", payload)
	c.Params = gin.Params{{Key: "resource", Value: service.ResourceLeaveRequests}, {Key: "id", Value: "LR-001"}}
	handler.Transition(c)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestResourceHandlerTransitionInvalidPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewResourceHandler(newSeededCatalog(t))

	c, w := newGinContext(http.MethodPatch, "/resources/leave-requests/LR-001/status", []byte("{"))
	c.Params = gin.Params{{Key: "resource", Value: service.ResourceLeaveRequests}, {Key: "id", Value: "LR-001"}}
	handler.Transition(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	require.Contains(t, string(env["error"]), "VALIDATION_ERROR")
}

func TestResourceHandlerGetMissingRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewResourceHandler(newSeededCatalog(t))

	c, w := newGinContext(http.MethodGet, "/resources/leave-requests/LR-999", nil)
	c.Params = gin.Params{{Key: "resource", Value: service.ResourceLeaveRequests}, {Key: "id", Value: "LR-999"}}
	handler.Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}
