package middleware

import (
	"attendbot/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDMiddleware tạo request id nếu chưa có và gán vào context
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("requestId", requestID)
		c.Writer.Header().Set(constants.HeaderRequestID, requestID)

		c.Next()
	}
}

// RequestID lấy request id từ context
func RequestID(c *gin.Context) string {
	return c.GetString("requestId")
}
