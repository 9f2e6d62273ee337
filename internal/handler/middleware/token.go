package middleware

import (
	"crypto/subtle"
	"net/http"

	"opsboard/internal/handler/httperr"
	"opsboard/internal/pkg/config"
	"opsboard/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const opsTokenHeader = "X-Ops-Token"

// TokenMiddleware guards the trigger and management endpoints with a shared
// secret. The dashboard backend and the external cron caller both present it.
type TokenMiddleware struct {
	token string
}

func NewTokenMiddleware(cfg config.TriggerConfig) *TokenMiddleware {
	return &TokenMiddleware{token: cfg.Token}
}

func (m *TokenMiddleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.GetHeader(opsTokenHeader)
		if presented == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				errs.New("missing ops token header"), "Ops token required", nil)
			return
		}
		if subtle.ConstantTimeCompare([]byte(presented), []byte(m.token)) != 1 {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				errs.New("ops token mismatch"), "Invalid ops token", nil)
			return
		}
		c.Next()
	}
}
