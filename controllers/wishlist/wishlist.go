package wishlistControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/furnimarket/furniture-market-api/middleware"
	"github.com/furnimarket/furniture-market-api/models"
)

type AddToWishlistInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GET /api/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var items []models.WishlistItem
		if err := db.
			Preload("Product.Images", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
			Preload("Product.Sale").
			Where("user_id = ?", user.ID).
			Find(&items).Error; err != nil {
			log.Printf("❌ Failed to fetch wishlist: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

// AddToWishlist is idempotent: adding a product already on the wishlist
// succeeds without creating a second row. The insert-or-skip is a single
// statement, so concurrent adds cannot duplicate the pair either.
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var input AddToWishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
			return
		}

		var product models.Furniture
		if err := db.Preload("Sale").First(&product, input.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		item := models.WishlistItem{UserID: user.ID, ProductID: input.ProductID}
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).Create(&item)
		if result.Error != nil {
			log.Printf("❌ Failed to add wishlist item: %v", result.Error)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to wishlist"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusOK, gin.H{"message": "Already in wishlist"})
			return
		}

		item.Product = product
		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /api/wishlist/:id
func RemoveWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		result := db.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.WishlistItem{})
		if result.Error != nil {
			log.Printf("❌ Failed to delete wishlist item: %v", result.Error)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item removed from wishlist"})
	}
}

// DELETE /api/wishlist
func ClearWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		if err := db.Where("user_id = ?", user.ID).Delete(&models.WishlistItem{}).Error; err != nil {
			log.Printf("❌ Failed to clear wishlist: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear wishlist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Wishlist cleared"})
	}
}
