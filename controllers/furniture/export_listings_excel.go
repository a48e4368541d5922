package furnitureControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/furnimarket/furniture-market-api/models"
)

// ExportListingsToExcel downloads the full listings table as a spreadsheet
// (admin only).
func ExportListingsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var listings []models.Furniture
		if err := db.Preload("Category").Preload("Owner").Find(&listings).Error; err != nil {
			log.Printf("❌ Failed to fetch furniture for export: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch furniture"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Listings")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Title", "Price", "Condition", "Category", "Owner",
			"Status", "Stock", "Discount", "Rating", "Sold", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, l := range listings {
			row := sheet.AddRow()
			row.AddCell().SetValue(l.ID)
			row.AddCell().SetValue(l.Title)
			row.AddCell().SetValue(l.Price)
			row.AddCell().SetValue(l.Condition)
			row.AddCell().SetValue(l.Category.Name)
			row.AddCell().SetValue(l.Owner.Email)
			row.AddCell().SetValue(string(l.Status))
			row.AddCell().SetValue(l.Stock)
			row.AddCell().SetValue(l.Discount)
			row.AddCell().SetValue(l.Rating)
			row.AddCell().SetValue(l.NoOfSold)
			row.AddCell().SetValue(l.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=listings.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
