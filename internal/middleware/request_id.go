package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"travel-assistant/pkg/log"
)

// RequestID tags every request with an id, reusing the caller's X-Request-ID when present.
// The id is echoed back and attached to the request context for log lines.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}
