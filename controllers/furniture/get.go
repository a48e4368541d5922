package furnitureControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/furnimarket/furniture-market-api/models"
)

// GetFurnitureByID returns a single approved listing. Non-approved rows are
// reported as 404 even when they exist, so pending listings never leak.
func GetFurnitureByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid furniture ID"})
			return
		}

		var listing models.Furniture
		if err := withListingAssocs(db).
			Where("id = ? AND status = ?", id, models.ListingApproved).
			First(&listing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Furniture not found or not approved"})
			} else {
				log.Printf("❌ Failed to fetch furniture %d: %v", id, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve furniture"})
			}
			return
		}

		c.JSON(http.StatusOK, viewOf(listing, time.Now()))
	}
}
