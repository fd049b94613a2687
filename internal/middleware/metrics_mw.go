package middleware

import (
	"time"

	"survey_platform/internal/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records count and latency of every request by route template.
func MetricsMiddleware(rec *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		rec.RecordRequest(c.Request.Context(), c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
