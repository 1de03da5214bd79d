package middleware

import (
	"net/http"

	"electricity-forecast/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers panics from handlers and turns them into the API's
// standard error envelope, so a crash in the aggregation path surfaces the
// same shape as any other API error.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "An unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			message = v
		case error:
			message = v.Error()
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
	})
}
