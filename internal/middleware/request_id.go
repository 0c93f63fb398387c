package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github-relay-bot/pkg/log"
)

// HeaderRequestID is read from the request and echoed on the response.
const HeaderRequestID = "X-Request-ID"

const maxRequestIDLen = 128

// RequestID attaches a request id to the request context for logging.
// GitHub's X-GitHub-Delivery is reused when no X-Request-ID is sent.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = c.GetHeader("X-GitHub-Delivery")
		}
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
