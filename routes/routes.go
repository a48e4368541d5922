package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up every resource group
// under the /api prefix.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	SetupUserRoutes(api, db)
	SetupFurnitureRoutes(api, db)
	SetupCategoryRoutes(api, db)
	SetupSaleRoutes(api, db)
	SetupCartRoutes(api, db)
	SetupWishlistRoutes(api, db)
	SetupAddressRoutes(api, db)
	SetupCarouselRoutes(api, db)
}
