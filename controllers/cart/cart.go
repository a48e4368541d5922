package cartControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/furnimarket/furniture-market-api/middleware"
	"github.com/furnimarket/furniture-market-api/models"
)

type AddToCartInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GET /api/cart — cart lines with the live product snapshot joined in.
// Prices and sale discounts are never cached at add time.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var items []models.CartItem
		if err := db.
			Preload("Product.Images", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
			Preload("Product.Sale").
			Preload("Product.Category").
			Where("user_id = ?", user.ID).
			Find(&items).Error; err != nil {
			log.Printf("❌ Failed to fetch cart: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

// AddToCart inserts a cart line or, when the product is already in the cart,
// increments the existing line's quantity. The merge is a single upsert so
// concurrent adds for the same product cannot create duplicate rows.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Furniture
		if err := db.First(&product, input.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		item := models.CartItem{
			UserID:    user.ID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("quantity + ?", input.Quantity),
			}),
		}).Create(&item).Error; err != nil {
			log.Printf("❌ Failed to add cart item: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		// Re-read to return the merged quantity.
		if err := db.Where("user_id = ? AND product_id = ?", user.ID, input.ProductID).
			First(&item).Error; err != nil {
			log.Printf("❌ Failed to fetch cart item: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// UpdateCartItem overwrites a line's quantity. Quantity zero is not a valid
// persisted state: it deletes the line instead.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Quantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
			return
		}
		if *input.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must not be negative"})
			return
		}

		var item models.CartItem
		if err := db.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		if *input.Quantity == 0 {
			if err := db.Delete(&item).Error; err != nil {
				log.Printf("❌ Failed to delete cart item %d: %v", item.ID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Item removed (quantity was 0)"})
			return
		}

		item.Quantity = *input.Quantity
		if err := db.Save(&item).Error; err != nil {
			log.Printf("❌ Failed to update cart item %d: %v", item.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/cart/:id
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		result := db.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.CartItem{})
		if result.Error != nil {
			log.Printf("❌ Failed to delete cart item: %v", result.Error)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
	}
}

// DELETE /api/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		if err := db.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
			log.Printf("❌ Failed to clear cart: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
