package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"issuetracker/internal/shared/constants"
)

const maxRequestIDLength = 64

// RequestID reuses a sane inbound X-Request-ID or generates one, and echoes
// it back on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderXRequestID, requestID)

		c.Next()
	}
}
