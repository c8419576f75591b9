package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glamar-shop/models"
	"glamar-shop/services"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// AddToCart godoc
// @Summary Add a product to the cart
// @Description Re-adding a product increments its quantity.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Cart Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/add [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := ctrl.cart.Add(c.Request.Context(), req); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Status:  models.StatusSuccess,
		Message: "Item added to cart",
	})
}

// GetCart godoc
// @Summary Get cart contents
// @Tags Cart
// @Produce json
// @Success 200 {object} models.CartResponse
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	lines, err := ctrl.cart.Items(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CartResponse{
		Status: models.StatusSuccess,
		Cart:   lines,
	})
}
