package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glamar-shop/models"
)

// Recovery turns panics into the standard JSON error envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		Logger(c).WithField("panic", recovered).Error("handler panicked")
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Status:  models.StatusError,
			Message: "Internal server error",
		})
	})
}
