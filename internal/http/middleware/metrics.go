package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"kamau.dev/portfolio/internal/metrics"
)

// Metrics records request counts and latencies by matched route. Unmatched paths share the
// "unmatched" label so scanners cannot blow up label cardinality.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.RequestStarted()
		defer m.RequestFinished()

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
