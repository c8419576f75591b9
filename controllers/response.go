package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"glamar-shop/models"
	"glamar-shop/services"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, models.ErrorResponse{
		Status:  models.StatusError,
		Message: message,
	})
}

// handleError maps service errors onto HTTP statuses. Anything unknown is
// recorded on the context for the request logger and reported as a 500.
func handleError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(c, http.StatusBadRequest, verr.Message)
	case errors.Is(err, services.ErrEmailTaken):
		respondError(c, http.StatusConflict, "This email address is already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrProductNotFound):
		respondError(c, http.StatusNotFound, "Product not found")
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// bindJSON reports a malformed body itself and returns false in that case.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
