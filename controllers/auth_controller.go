package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glamar-shop/models"
	"glamar-shop/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Signup godoc
// @Summary Register new user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/signup [post]
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := ctrl.auth.Signup(c.Request.Context(), req); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Status:  models.StatusSuccess,
		Message: "Account created successfully!",
	})
}

// Login godoc
// @Summary User login
// @Description No session or token is issued; the response only echoes the email.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := ctrl.auth.Login(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Status:  models.StatusSuccess,
		Message: "Login successful!",
		User:    models.PublicUser{Email: user.Email},
	})
}
