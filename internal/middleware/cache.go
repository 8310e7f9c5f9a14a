package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unidash/uni-dashboard-api/internal/models"
)

type overviewInvalidator interface {
	InvalidateCache(ctx context.Context, user string)
}

// CacheInvalidation drops the user's cached dashboard overview after every
// successful mutating request, so writes are visible on the next overview
// read instead of after the cache TTL.
func CacheInvalidation(dashboards overviewInvalidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if dashboards == nil {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		value, ok := c.Get(ContextUserKey)
		if !ok {
			return
		}
		claims, ok := value.(*models.JWTClaims)
		if !ok {
			return
		}
		dashboards.InvalidateCache(c.Request.Context(), claims.Username)
	}
}
