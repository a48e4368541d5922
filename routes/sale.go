package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	saleControllers "github.com/furnimarket/furniture-market-api/controllers/sale"
	"github.com/furnimarket/furniture-market-api/middleware"
)

// SetupSaleRoutes registers all "/api/sales/*" endpoints. Reads are open to
// any authenticated user; writes are admin only.
func SetupSaleRoutes(api *gin.RouterGroup, db *gorm.DB) {
	sales := api.Group("/sales")
	sales.Use(middleware.ValidateToken(db))
	{
		sales.GET("", saleControllers.GetSales(db))

		sales.POST("", middleware.AdminOnly, saleControllers.AddSale(db))
		sales.PUT("/:id", middleware.AdminOnly, saleControllers.UpdateSale(db))
		sales.DELETE("/:id", middleware.AdminOnly, saleControllers.DeleteSale(db))
	}
}
