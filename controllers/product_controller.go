package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glamar-shop/models"
	"glamar-shop/services"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// GetProducts godoc
// @Summary List products
// @Tags Products
// @Produce json
// @Param category query string false "Exact, case-sensitive category"
// @Success 200 {object} models.ProductListResponse
// @Router /api/products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	products, err := ctrl.products.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ProductListResponse{
		Status:   models.StatusSuccess,
		Products: products,
	})
}
