package furnitureControllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/furnimarket/furniture-market-api/models"
)

// GetFurniture lists approved listings with optional search, category, and
// price filters.
func GetFurniture(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		categoryID := c.Query("category_id")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		if sortBy != "created_at" && sortBy != "price" && sortBy != "rating" {
			sortBy = "created_at"
		}

		query := withListingAssocs(db.Model(&models.Furniture{})).
			Where("status = ?", models.ListingApproved)

		if search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", likePattern, likePattern)
		}
		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}
		if categoryID != "" {
			if cid, err := strconv.ParseUint(categoryID, 10, 64); err == nil {
				query = query.Where("category_id = ?", uint(cid))
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
		}

		var listings []models.Furniture
		if err := query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).Find(&listings).Error; err != nil {
			log.Printf("❌ Failed to fetch furniture: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch furniture"})
			return
		}

		c.JSON(http.StatusOK, viewsOf(listings, time.Now()))
	}
}

// GetFeaturedFurniture returns the 5 most recently created approved listings.
func GetFeaturedFurniture(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var listings []models.Furniture
		if err := withListingAssocs(db).
			Where("status = ?", models.ListingApproved).
			Order("created_at DESC").
			Limit(5).
			Find(&listings).Error; err != nil {
			log.Printf("❌ Failed to fetch featured furniture: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured furniture"})
			return
		}

		c.JSON(http.StatusOK, viewsOf(listings, time.Now()))
	}
}

// GetUnapprovedFurniture lists the admin review queue.
func GetUnapprovedFurniture(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var listings []models.Furniture
		if err := withListingAssocs(db).
			Where("status = ?", models.ListingPending).
			Order("created_at ASC").
			Find(&listings).Error; err != nil {
			log.Printf("❌ Failed to fetch pending furniture: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending furniture"})
			return
		}

		c.JSON(http.StatusOK, viewsOf(listings, time.Now()))
	}
}

// GetAllFurniture lists every listing regardless of status (admin).
func GetAllFurniture(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var listings []models.Furniture
		if err := withListingAssocs(db).
			Order("created_at DESC").
			Find(&listings).Error; err != nil {
			log.Printf("❌ Failed to fetch furniture: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch furniture"})
			return
		}

		c.JSON(http.StatusOK, viewsOf(listings, time.Now()))
	}
}
