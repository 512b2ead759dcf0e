package requestid

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, header string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	var seen string
	router := gin.New()
	router.Use(Middleware())
	router.GET("/", func(c *gin.Context) {
		seen = Value(c)
		c.Status(http.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(HeaderKey, header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, seen
}

func TestMiddlewarePropagatesInboundID(t *testing.T) {
	w, seen := serve(t, "req-123")
	require.Equal(t, "req-123", seen)
	require.Equal(t, "req-123", w.Header().Get(HeaderKey))
}

func TestMiddlewareGeneratesID(t *testing.T) {
	w, seen := serve(t, "")
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	require.Equal(t, seen, w.Header().Get(HeaderKey))

	_, seen = serve(t, strings.Repeat("x", 200))
	_, err = uuid.Parse(seen)
	require.NoError(t, err)
}
