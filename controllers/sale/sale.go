package saleControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/furnimarket/furniture-market-api/middleware"
	"github.com/furnimarket/furniture-market-api/models"
)

type SaleInput struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Discount    float64   `json:"discount" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
}

// UpdateSaleInput carries the mutable sale fields; only fields present in the
// request are applied.
type UpdateSaleInput struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Discount    *float64   `json:"discount"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Active      *bool      `json:"active"`
}

// AddSale creates a promotional sale (admin only). Two sales sharing a name
// may not cover intersecting time windows; differently named sales may
// overlap freely.
func AddSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var input SaleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.EndTime.Before(input.StartTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_time must not be before start_time"})
			return
		}

		sale := models.Sale{
			Name:        input.Name,
			Description: input.Description,
			Discount:    input.Discount,
			StartTime:   input.StartTime,
			EndTime:     input.EndTime,
			CreatedBy:   user.ID,
			Active:      true,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := lockSaleName(tx, input.Name); err != nil {
				return err
			}
			var existing models.Sale
			err := tx.Where("name = ? AND start_time <= ? AND end_time >= ?",
				input.Name, input.EndTime, input.StartTime).First(&existing).Error
			if err == nil {
				return errOverlap
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return tx.Create(&sale).Error
		})
		if errors.Is(err, errOverlap) {
			c.JSON(http.StatusConflict, gin.H{"error": "A sale with the same name and an overlapping time range already exists"})
			return
		}
		if err != nil {
			log.Printf("❌ Failed to create sale: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sale"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Sale created successfully", "sale": sale})
	}
}

var errOverlap = errors.New("overlapping sale")

// lockSaleName serializes transactions touching the same sale name so two
// concurrent creates cannot both pass the overlap check before inserting.
// The lock is transaction-scoped and released on commit or rollback. Only
// Postgres supports it; sqlite serializes writers on its own.
func lockSaleName(tx *gorm.DB, name string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", name).Error
}

// GetSales lists all sales (any authenticated user).
func GetSales(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sales []models.Sale
		if err := db.Order("start_time DESC").Find(&sales).Error; err != nil {
			log.Printf("❌ Failed to fetch sales: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
			return
		}
		c.JSON(http.StatusOK, sales)
	}
}

// UpdateSale partially updates a sale (admin only). When the name or window
// changes, the overlap rule is re-checked against the other sales.
func UpdateSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sale models.Sale
		if err := db.First(&sale, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}

		var input UpdateSaleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		windowChanged := false
		if input.Name != nil {
			if *input.Name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
				return
			}
			sale.Name = *input.Name
			windowChanged = true
		}
		if input.Description != nil {
			sale.Description = *input.Description
		}
		if input.Discount != nil {
			sale.Discount = *input.Discount
		}
		if input.StartTime != nil {
			sale.StartTime = *input.StartTime
			windowChanged = true
		}
		if input.EndTime != nil {
			sale.EndTime = *input.EndTime
			windowChanged = true
		}
		if input.Active != nil {
			sale.Active = *input.Active
		}
		if sale.EndTime.Before(sale.StartTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_time must not be before start_time"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if windowChanged {
				if err := lockSaleName(tx, sale.Name); err != nil {
					return err
				}
				var existing models.Sale
				err := tx.Where("id <> ? AND name = ? AND start_time <= ? AND end_time >= ?",
					sale.ID, sale.Name, sale.EndTime, sale.StartTime).First(&existing).Error
				if err == nil {
					return errOverlap
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
			}
			return tx.Save(&sale).Error
		})
		if errors.Is(err, errOverlap) {
			c.JSON(http.StatusConflict, gin.H{"error": "A sale with the same name and an overlapping time range already exists"})
			return
		}
		if err != nil {
			log.Printf("❌ Failed to update sale %d: %v", sale.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sale"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Sale updated successfully", "sale": sale})
	}
}

// DeleteSale removes a sale (admin only). Listings referencing it keep their
// own discount; the association is detached first.
func DeleteSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sale models.Sale
		if err := db.First(&sale, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Furniture{}).
				Where("sale_id = ?", sale.ID).
				Update("sale_id", nil).Error; err != nil {
				return err
			}
			return tx.Delete(&sale).Error
		})
		if err != nil {
			log.Printf("❌ Failed to delete sale %d: %v", sale.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sale"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
	}
}
