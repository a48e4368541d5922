package bannerControllers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/furnimarket/furniture-market-api/models"
	"github.com/furnimarket/furniture-market-api/uploads"
)

// slide is the carousel payload shape the storefront expects.
type slide struct {
	ID            uint    `json:"id"`
	Image         string  `json:"image"`
	Title         string  `json:"title"`
	Subtitle      string  `json:"subtitle"`
	Description   string  `json:"description"`
	Brand         string  `json:"brand"`
	ButtonText    string  `json:"button_text"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
	Link          string  `json:"link"`
}

// GET /api/carousel/slides — active banners only, most recent first.
func GetCarouselSlides(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Where("active = ?", true).Order("created_at DESC").Find(&banners).Error; err != nil {
			log.Printf("❌ Failed to fetch carousel slides: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch carousel slides"})
			return
		}

		slides := make([]slide, 0, len(banners))
		for _, b := range banners {
			slides = append(slides, slide{
				ID:            b.ID,
				Image:         b.ImageURL,
				Title:         b.Title,
				Subtitle:      b.Subtitle,
				Description:   b.Description,
				Brand:         b.Brand,
				ButtonText:    b.ButtonText,
				Category:      b.Category,
				Price:         b.Price,
				OriginalPrice: b.OriginalPrice,
				Link:          b.Link,
			})
		}

		c.JSON(http.StatusOK, slides)
	}
}

// GET /api/carousel (admin) — every banner, active or not.
func GetBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Order("created_at DESC").Find(&banners).Error; err != nil {
			log.Printf("❌ Failed to fetch banners: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

// CreateBanner uploads a carousel banner (admin only, multipart image).
func CreateBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		imageURL, err := uploads.Save(c, file, "banners")
		if err != nil {
			log.Printf("❌ Failed to save banner image: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		banner := models.Banner{
			ImageURL:    imageURL,
			Title:       c.PostForm("title"),
			Subtitle:    c.PostForm("subtitle"),
			Description: c.PostForm("description"),
			Brand:       c.PostForm("brand"),
			Category:    c.PostForm("category"),
			Link:        c.PostForm("link"),
			Active:      true,
		}
		if v := c.PostForm("button_text"); v != "" {
			banner.ButtonText = v
		}
		if v := c.PostForm("price"); v != "" {
			price, parseErr := strconv.ParseFloat(v, 64)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			banner.Price = price
		}
		if v := c.PostForm("original_price"); v != "" {
			price, parseErr := strconv.ParseFloat(v, 64)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid original_price"})
				return
			}
			banner.OriginalPrice = price
		}

		if err := db.Create(&banner).Error; err != nil {
			log.Printf("❌ Failed to create banner: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create banner"})
			return
		}

		c.JSON(http.StatusCreated, banner)
	}
}

// DeleteBanner removes the banner row and its image file (admin only).
func DeleteBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banner models.Banner
		if err := db.First(&banner, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
			return
		}

		if banner.ImageURL != "" {
			localPath := filepath.Join(uploads.Root(), "banners", filepath.Base(banner.ImageURL))
			if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
				log.Printf("❌ Failed to delete banner file: %v", err)
			}
		}

		if err := db.Delete(&banner).Error; err != nil {
			log.Printf("❌ Failed to delete banner %d: %v", banner.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete from database"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
	}
}
