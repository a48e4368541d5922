package furnitureControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/furnimarket/furniture-market-api/middleware"
	"github.com/furnimarket/furniture-market-api/models"
)

// DeactivateFurniture soft-deletes a listing (owner or admin). The row is
// kept so cart and wishlist references stay intact; it just stops being
// publicly visible.
func DeactivateFurniture(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var listing models.Furniture
		if err := db.First(&listing, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Furniture not found"})
			return
		}
		if listing.OwnerID != user.ID && !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			return
		}

		if err := db.Model(&listing).Update("status", models.ListingDeactivated).Error; err != nil {
			log.Printf("❌ Failed to deactivate furniture %d: %v", listing.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate furniture"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Furniture deactivated"})
	}
}
