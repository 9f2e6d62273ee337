//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"opsboard/internal/handler/middleware"
	"opsboard/internal/pkg/config"
	"opsboard/tests/common/httptest"
)

func tokenGuardedRouter(token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mw := middleware.NewTokenMiddleware(config.TriggerConfig{Token: token})
	router.POST("/guarded", mw.RequireToken(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequireToken(t *testing.T) {
	router := tokenGuardedRouter("secret-token")

	t.Run("valid token passes", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/guarded", nil, "secret-token")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/guarded", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Ops token required")
	})

	t.Run("wrong token is rejected", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/guarded", nil, "wrong")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid ops token")
	})
}
