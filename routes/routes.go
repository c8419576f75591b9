package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"glamar-shop/controllers"
	"glamar-shop/middleware"
)

type Controllers struct {
	Auth    *controllers.AuthController
	Product *controllers.ProductController
	Cart    *controllers.CartController
	Contact *controllers.ContactController
	Health  *controllers.HealthController
}

// NewRouter returns an engine with the shared middleware stack and every
// API route registered.
func NewRouter(log logrus.FieldLogger, ctrls Controllers) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery())
	router.Use(middleware.CORSMiddleware())

	SetupRoutes(router, ctrls)
	return router
}

func SetupRoutes(router *gin.Engine, ctrls Controllers) {
	if ctrls.Health != nil {
		router.GET("/health", ctrls.Health.Health)
	}

	api := router.Group("/api")
	{
		api.POST("/signup", ctrls.Auth.Signup)
		api.POST("/login", ctrls.Auth.Login)

		api.GET("/products", ctrls.Product.GetProducts)

		api.POST("/cart/add", ctrls.Cart.AddToCart)
		api.GET("/cart", ctrls.Cart.GetCart)

		api.POST("/contact", ctrls.Contact.SubmitContact)
	}
}
