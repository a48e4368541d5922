package furnitureControllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/furnimarket/furniture-market-api/middleware"
	"github.com/furnimarket/furniture-market-api/models"
	"github.com/furnimarket/furniture-market-api/uploads"
)

const maxListingImages = 5

// CreateFurniture uploads a new listing (multipart, images[]). Listings by
// regular users start pending and enter the admin review queue; listings by
// admins are approved immediately.
func CreateFurniture(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		title := c.PostForm("title")
		priceStr := c.PostForm("price")
		categoryIDStr := c.PostForm("category_id")
		condition := c.PostForm("condition")
		if title == "" || priceStr == "" || categoryIDStr == "" || condition == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title, price, category_id, and condition are required"})
			return
		}
		if !models.ValidCondition(condition) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "condition must be one of: new, used, damaged"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
			return
		}

		var category models.Category
		if err := db.First(&category, categoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		var stock int
		if v := c.PostForm("stock"); v != "" {
			if stock, err = strconv.Atoi(v); err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		// Optional sale association. Existence is checked here; whether the
		// sale is currently running is resolved on reads.
		var saleID *uint
		if v := c.PostForm("sale_id"); v != "" {
			id64, parseErr := strconv.ParseUint(v, 10, 64)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_id"})
				return
			}
			var sale models.Sale
			if err := db.First(&sale, id64).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Sale does not exist"})
				return
			}
			saleID = &sale.ID
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least one image is required"})
			return
		}
		files := form.File["images"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least one image is required"})
			return
		}
		if len(files) > maxListingImages {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("At most %d images are allowed", maxListingImages)})
			return
		}

		var images []models.FurnitureImage
		for i, file := range files {
			path, saveErr := uploads.Save(c, file, "furniture")
			if saveErr != nil {
				log.Printf("❌ Failed to save image: %v", saveErr)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			images = append(images, models.FurnitureImage{
				Path:     path,
				Position: i,
			})
		}

		status := models.ListingPending
		if user.IsAdmin() {
			status = models.ListingApproved
		}

		listing := models.Furniture{
			Title:       title,
			Description: c.PostForm("description"),
			Price:       price,
			CategoryID:  category.ID,
			Condition:   condition,
			Location:    c.PostForm("location"),
			Images:      images,
			OwnerID:     user.ID,
			Status:      status,
			SaleID:      saleID,
			Stock:       stock,
		}

		if err := db.Create(&listing).Error; err != nil {
			log.Printf("❌ Failed to create furniture: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload furniture"})
			return
		}

		if listing.Status == models.ListingPending {
			broadcastPendingListing(listing)
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Furniture uploaded", "data": listing})
	}
}
