package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

// RequestID assigns every request an id, honoring one supplied by the client,
// and echoes it back in the X-Request-ID response header.
func RequestID(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}

	c.Set(RequestIDKey, requestID)
	c.Header("X-Request-ID", requestID)
	c.Next()
}
