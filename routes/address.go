package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	addressControllers "github.com/furnimarket/furniture-market-api/controllers/address"
	"github.com/furnimarket/furniture-market-api/middleware"
)

// SetupAddressRoutes registers all "/api/address/*" endpoints. Requires auth.
func SetupAddressRoutes(api *gin.RouterGroup, db *gorm.DB) {
	address := api.Group("/address")
	address.Use(middleware.ValidateToken(db))
	{
		address.GET("", addressControllers.GetAddresses(db))
		address.POST("", addressControllers.CreateAddress(db))
		address.PUT("/:id/default", addressControllers.SetDefaultAddress(db))
		address.DELETE("/:id", addressControllers.DeleteAddress(db))
	}
}
