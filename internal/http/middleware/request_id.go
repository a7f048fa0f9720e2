package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"kamau.dev/portfolio/common/id"
	"kamau.dev/portfolio/common/logger"
)

const RequestIDHeader = "X-Request-Id"

// RequestID assigns a snowflake id to every request, echoes it in the response header and
// adds it to the log fields of the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := id.New()
		c.Header(RequestIDHeader, strconv.FormatInt(requestID, 10))

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			RequestID: logger.Ptr(requestID),
			Route:     logger.Ptr(c.FullPath()),
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
