package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-dashboard-api/internal/service"
)

func TestMetricsHandlerReady(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewMetricsHandler(service.NewMetricsService(), map[string]ReadinessCheck{
		"store": func(ctx context.Context) error { return nil },
	})

	c, w := newGinContext(http.MethodGet, "/readyz", nil)
	handler.Ready(c)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsHandlerReadyFailingCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewMetricsHandler(nil, map[string]ReadinessCheck{
		"redis": func(ctx context.Context) error { return errors.New("connection refused") },
	})

	c, w := newGinContext(http.MethodGet, "/readyz", nil)
	handler.Ready(c)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, w.Body.String(), "connection refused")
}

func TestMetricsHandlerSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	metrics.RecordTransition("leave-requests", "Pending", "Approved")
	handler := NewMetricsHandler(metrics, nil)

	c, w := newGinContext(http.MethodGet, "/metrics/summary", nil)
	handler.Summary(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "transitions")
}
