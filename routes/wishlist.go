package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	wishlistControllers "github.com/furnimarket/furniture-market-api/controllers/wishlist"
	"github.com/furnimarket/furniture-market-api/middleware"
)

// SetupWishlistRoutes registers all "/api/wishlist/*" endpoints. Requires auth.
func SetupWishlistRoutes(api *gin.RouterGroup, db *gorm.DB) {
	wishlist := api.Group("/wishlist")
	wishlist.Use(middleware.ValidateToken(db))
	{
		wishlist.GET("", wishlistControllers.GetWishlist(db))
		wishlist.POST("", wishlistControllers.AddToWishlist(db))
		wishlist.DELETE("/:id", wishlistControllers.RemoveWishlistItem(db))
		wishlist.DELETE("", wishlistControllers.ClearWishlist(db))
	}
}
