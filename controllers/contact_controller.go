package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glamar-shop/models"
	"glamar-shop/services"
)

type ContactController struct {
	contacts *services.ContactService
}

func NewContactController(contacts *services.ContactService) *ContactController {
	return &ContactController{contacts: contacts}
}

// SubmitContact godoc
// @Summary Submit the contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Contact Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/contact [post]
func (ctrl *ContactController) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := ctrl.contacts.Submit(c.Request.Context(), req); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Status:  models.StatusSuccess,
		Message: "Your message has been sent successfully!",
	})
}
