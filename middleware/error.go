package middleware

import (
	"attendbot/errors"
	"attendbot/response"
	"attendbot/services/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler xử lý lỗi gắn vào context bằng c.Error
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		if errors.IsValidation(err) {
			appErr := errors.GetAppError(err)
			response.ValidationError(c, string(appErr.Code), appErr.Message)
			return
		}

		log.Error("❌ [%s] %s %s: %v", RequestID(c), c.Request.Method, c.Request.URL.Path, err)
		response.ServerError(c)
	}
}
