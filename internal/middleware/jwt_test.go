package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/sma-dashboard-api/pkg/errors"
)

type staticValidator struct{}

func (staticValidator) ValidateToken(token string) (*models.JWTClaims, error) {
	if token != "good" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
	}
	return &models.JWTClaims{UserID: "hr-1", Role: models.RoleHRAdmin}, nil
}

func serveWith(t *testing.T, mw gin.HandlerFunc, authorization string) (*httptest.ResponseRecorder, *models.JWTClaims) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	var claims *models.JWTClaims
	router := gin.New()
	router.GET("/resources", mw, func(c *gin.Context) {
		claims = ClaimsFromContext(c)
		c.Status(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/resources", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, claims
}

func TestJWTRequiresToken(t *testing.T) {
	w, _ := serveWith(t, JWT(staticValidator{}), "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = serveWith(t, JWT(staticValidator{}), "Basic abc")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = serveWith(t, JWT(staticValidator{}), "Bearer bad")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w, claims := serveWith(t, JWT(staticValidator{}), "Bearer good")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "hr-1", claims.UserID)
}

func TestOptionalJWT(t *testing.T) {
	w, claims := serveWith(t, OptionalJWT(staticValidator{}), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, claims)

	w, claims = serveWith(t, OptionalJWT(staticValidator{}), "Bearer bad")
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, claims)

	_, claims = serveWith(t, OptionalJWT(staticValidator{}), "bearer good")
	require.NotNil(t, claims)
	require.Equal(t, models.RoleHRAdmin, claims.Role)
}
