package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/furnimarket/furniture-market-api/controllers/user"
	"github.com/furnimarket/furniture-market-api/middleware"
)

// SetupUserRoutes registers all "/api/users/*" endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	users := api.Group("/users")
	{
		users.POST("/register", userControllers.RegisterUser(db))
		users.POST("/login", userControllers.LoginUser(db))

		users.GET("/profile", middleware.ValidateToken(db), userControllers.GetProfile(db))
		users.PUT("/upload-photo", middleware.ValidateToken(db), userControllers.UpdateProfilePhoto(db))

		users.GET("", middleware.ValidateToken(db), middleware.AdminOnly, userControllers.GetAllUsers(db))
		users.PATCH("/:id/status", middleware.ValidateToken(db), middleware.AdminOnly, userControllers.UpdateUserStatus(db))
	}
}
