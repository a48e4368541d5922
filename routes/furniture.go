package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	furnitureControllers "github.com/furnimarket/furniture-market-api/controllers/furniture"
	"github.com/furnimarket/furniture-market-api/middleware"
)

// SetupFurnitureRoutes registers all "/api/furniture/*" endpoints. Listing
// reads are public; writes require auth and the moderation surface requires
// admin.
func SetupFurnitureRoutes(api *gin.RouterGroup, db *gorm.DB) {
	furniture := api.Group("/furniture")
	{
		// ─────────── Public Browsing ───────────
		furniture.GET("", furnitureControllers.GetFurniture(db))
		furniture.GET("/featured", furnitureControllers.GetFeaturedFurniture(db))

		// ─────────── Admin Moderation ───────────
		admin := furniture.Group("", middleware.ValidateToken(db), middleware.AdminOnly)
		{
			admin.GET("/unapproved", furnitureControllers.GetUnapprovedFurniture(db))
			admin.GET("/all", furnitureControllers.GetAllFurniture(db))
			admin.GET("/export-excel", furnitureControllers.ExportListingsToExcel(db))
			admin.GET("/ws/moderation", furnitureControllers.ModerationFeedHandler)
			admin.PATCH("/:id/approve", furnitureControllers.ApproveFurniture(db))
			admin.PATCH("/:id/decline", furnitureControllers.DeclineFurniture(db))
		}

		furniture.GET("/:id", furnitureControllers.GetFurnitureByID(db))

		// ─────────── Owner Listing Management ───────────
		furniture.POST("", middleware.ValidateToken(db), furnitureControllers.CreateFurniture(db))
		furniture.PUT("/:id", middleware.ValidateToken(db), furnitureControllers.UpdateFurniture(db))
		furniture.DELETE("/:id", middleware.ValidateToken(db), furnitureControllers.DeactivateFurniture(db))
	}
}
