package furnitureControllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/furnimarket/furniture-market-api/middleware"
	"github.com/furnimarket/furniture-market-api/models"
	"github.com/furnimarket/furniture-market-api/uploads"
)

// UpdateFurniture applies a partial update to a listing (owner or admin).
// Only fields present in the form are touched; unknown request keys are never
// copied onto the record. New images[] replace the existing set.
func UpdateFurniture(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid furniture ID"})
			return
		}

		var listing models.Furniture
		if err := db.Preload("Images").First(&listing, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Furniture not found"})
			return
		}
		if listing.OwnerID != user.ID && !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			return
		}

		if v, ok := c.GetPostForm("title"); ok {
			if v == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "title cannot be empty"})
				return
			}
			listing.Title = v
		}
		if v, ok := c.GetPostForm("description"); ok {
			listing.Description = v
		}
		if v, ok := c.GetPostForm("location"); ok {
			listing.Location = v
		}
		if v, ok := c.GetPostForm("price"); ok {
			price, parseErr := strconv.ParseFloat(v, 64)
			if parseErr != nil || price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			listing.Price = price
		}
		if v, ok := c.GetPostForm("condition"); ok {
			if !models.ValidCondition(v) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "condition must be one of: new, used, damaged"})
				return
			}
			listing.Condition = v
		}
		if v, ok := c.GetPostForm("stock"); ok {
			stock, parseErr := strconv.Atoi(v)
			if parseErr != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
			listing.Stock = stock
		}
		if v, ok := c.GetPostForm("discount"); ok {
			discount, parseErr := strconv.ParseFloat(v, 64)
			if parseErr != nil || discount < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount"})
				return
			}
			listing.Discount = discount
		}
		if v, ok := c.GetPostForm("category_id"); ok {
			cid, parseErr := strconv.ParseUint(v, 10, 64)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.Category
			if err := db.First(&category, cid).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			listing.CategoryID = category.ID
		}
		if v, ok := c.GetPostForm("sale_id"); ok {
			if v == "" || v == "0" {
				listing.SaleID = nil
			} else {
				sid, parseErr := strconv.ParseUint(v, 10, 64)
				if parseErr != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_id"})
					return
				}
				var sale models.Sale
				if err := db.First(&sale, sid).Error; err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Sale does not exist"})
					return
				}
				listing.SaleID = &sale.ID
			}
		}

		// Optional image replacement
		var newImages []models.FurnitureImage
		if form, formErr := c.MultipartForm(); formErr == nil {
			files := form.File["images"]
			if len(files) > maxListingImages {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("At most %d images are allowed", maxListingImages)})
				return
			}
			if len(files) > 0 {
				for i, file := range files {
					path, saveErr := uploads.Save(c, file, "furniture")
					if saveErr != nil {
						c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
						return
					}
					newImages = append(newImages, models.FurnitureImage{
						FurnitureID: listing.ID,
						Path:        path,
						Position:    i,
					})
				}
			}
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}
		if len(newImages) > 0 {
			if err := tx.Where("furniture_id = ?", listing.ID).Delete(&models.FurnitureImage{}).Error; err != nil {
				tx.Rollback()
				log.Printf("❌ Failed to replace listing images: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update furniture"})
				return
			}
			listing.Images = newImages
		}
		if err := tx.Save(&listing).Error; err != nil {
			tx.Rollback()
			log.Printf("❌ Failed to update furniture %d: %v", listing.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update furniture"})
			return
		}
		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Furniture updated", "data": viewOf(listing, time.Now())})
	}
}
