package furnitureControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/furnimarket/furniture-market-api/models"
)

// ApproveFurniture publishes a pending listing (admin only).
func ApproveFurniture(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var listing models.Furniture
		if err := db.First(&listing, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Furniture not found"})
			return
		}
		if listing.Status != models.ListingPending {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only pending listings can be approved"})
			return
		}

		if err := db.Model(&listing).Update("status", models.ListingApproved).Error; err != nil {
			log.Printf("❌ Failed to approve furniture %d: %v", listing.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve furniture"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Furniture approved", "data": listing})
	}
}

// DeclineFurniture rejects a pending listing and removes it permanently
// (admin only). Decline is terminal; there is no way back to the queue.
func DeclineFurniture(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var listing models.Furniture
		if err := db.First(&listing, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Furniture not found"})
			return
		}
		if listing.Status != models.ListingPending {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only pending listings can be declined"})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}
		if err := tx.Where("furniture_id = ?", listing.ID).Delete(&models.FurnitureImage{}).Error; err != nil {
			tx.Rollback()
			log.Printf("❌ Failed to delete listing images: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decline furniture"})
			return
		}
		if err := tx.Delete(&listing).Error; err != nil {
			tx.Rollback()
			log.Printf("❌ Failed to delete listing %d: %v", listing.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decline furniture"})
			return
		}
		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Furniture declined and removed"})
	}
}
