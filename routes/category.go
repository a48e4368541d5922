package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	categoryControllers "github.com/furnimarket/furniture-market-api/controllers/category"
	"github.com/furnimarket/furniture-market-api/middleware"
)

// SetupCategoryRoutes registers all "/api/categories/*" endpoints.
func SetupCategoryRoutes(api *gin.RouterGroup, db *gorm.DB) {
	categories := api.Group("/categories")
	{
		categories.GET("", categoryControllers.GetAllCategories(db))
		categories.GET("/:id", categoryControllers.GetCategoryByID(db))

		categories.POST("", middleware.ValidateToken(db), middleware.AdminOnly, categoryControllers.CreateCategory(db))
		categories.PUT("/:id", middleware.ValidateToken(db), middleware.AdminOnly, categoryControllers.UpdateCategory(db))
		categories.DELETE("/:id", middleware.ValidateToken(db), middleware.AdminOnly, categoryControllers.DeleteCategory(db))
	}
}
