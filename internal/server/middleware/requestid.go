package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillsenselab/recruitd/internal/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags every request with an X-Request-Id. A client-supplied id is
// kept; otherwise one is generated and written back onto the request header
// so the server-level request logger picks it up. The id is echoed on the
// response for client-side correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
			c.Request.Header.Set(requestIDHeader, id)
		}
		c.Set(logger.FieldRequestID, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
