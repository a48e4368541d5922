package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/furnimarket/furniture-market-api/controllers/cart"
	"github.com/furnimarket/furniture-market-api/middleware"
)

// SetupCartRoutes registers all "/api/cart/*" endpoints. Requires auth.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cart := api.Group("/cart")
	cart.Use(middleware.ValidateToken(db))
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.POST("", cartControllers.AddToCart(db))
		cart.PUT("/:id", cartControllers.UpdateCartItem(db))
		cart.DELETE("/:id", cartControllers.RemoveCartItem(db))
		cart.DELETE("", cartControllers.ClearCart(db))
	}
}
