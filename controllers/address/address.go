package addressControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/furnimarket/furniture-market-api/middleware"
	"github.com/furnimarket/furniture-market-api/models"
)

type AddressInput struct {
	FullName   string `json:"full_name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	City       string `json:"city" binding:"required"`
	Street     string `json:"street" binding:"required"`
	PostalCode string `json:"postal_code"`
	IsDefault  bool   `json:"is_default"`
}

// GET /api/address
func GetAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var addresses []models.Address
		if err := db.Where("user_id = ?", user.ID).Order("created_at ASC").Find(&addresses).Error; err != nil {
			log.Printf("❌ Failed to fetch addresses: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}

		c.JSON(http.StatusOK, addresses)
	}
}

// CreateAddress adds a shipping address. The user's first-ever address is
// forced to be the default regardless of the requested flag. When the request
// asks for default, the flag is cleared on every other address in the same
// transaction, so at most one default is ever observable.
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		address := models.Address{
			UserID:     user.ID,
			FullName:   input.FullName,
			Phone:      input.Phone,
			City:       input.City,
			Street:     input.Street,
			PostalCode: input.PostalCode,
			IsDefault:  input.IsDefault,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&models.Address{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				address.IsDefault = true
			} else if address.IsDefault {
				if err := tx.Model(&models.Address{}).
					Where("user_id = ?", user.ID).
					Update("is_default", false).Error; err != nil {
					return err
				}
			}
			return tx.Create(&address).Error
		})
		if err != nil {
			log.Printf("❌ Failed to save address: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save address"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Address saved", "address": address})
	}
}

// SetDefaultAddress marks one address as default, clearing the flag on the
// user's other addresses inside the same transaction.
func SetDefaultAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var address models.Address
		if err := db.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&address).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ? AND id <> ?", user.ID, address.ID).
				Update("is_default", false).Error; err != nil {
				return err
			}
			return tx.Model(&address).Update("is_default", true).Error
		})
		if err != nil {
			log.Printf("❌ Failed to set default address %d: %v", address.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set default address"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Default address updated", "address": address})
	}
}

// DeleteAddress removes an address. Deleting the current default leaves the
// user with no default; nothing is auto-promoted.
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		result := db.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.Address{})
		if result.Error != nil {
			log.Printf("❌ Failed to delete address: %v", result.Error)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
	}
}
