package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unidash/uni-dashboard-api/internal/service"
)

// Metrics records duration and status of every request. Unmatched routes
// fall back to the raw URL path so 404 traffic stays visible.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
