package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	bannerControllers "github.com/furnimarket/furniture-market-api/controllers/banner"
	"github.com/furnimarket/furniture-market-api/middleware"
)

// SetupCarouselRoutes registers all "/api/carousel/*" endpoints. Slides are
// public; banner management is admin only.
func SetupCarouselRoutes(api *gin.RouterGroup, db *gorm.DB) {
	carousel := api.Group("/carousel")
	{
		carousel.GET("/slides", bannerControllers.GetCarouselSlides(db))

		carousel.GET("", middleware.ValidateToken(db), middleware.AdminOnly, bannerControllers.GetBanners(db))
		carousel.POST("", middleware.ValidateToken(db), middleware.AdminOnly, bannerControllers.CreateBanner(db))
		carousel.DELETE("/:id", middleware.ValidateToken(db), middleware.AdminOnly, bannerControllers.DeleteBanner(db))
	}
}
