package userControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/furnimarket/furniture-market-api/auth"
	"github.com/furnimarket/furniture-market-api/middleware"
	"github.com/furnimarket/furniture-market-api/models"
	"github.com/furnimarket/furniture-market-api/uploads"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateStatusInput carries the admin-settable account fields. Only fields
// present in the request are applied.
type UpdateStatusInput struct {
	IsBlocked *bool        `json:"is_blocked"`
	Role      *models.Role `json:"role"`
}

// POST /api/users/register
func RegisterUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		email := c.PostForm("email")
		password := c.PostForm("password")
		if name == "" || email == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, email, and password are required"})
			return
		}

		var existing models.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("❌ Failed to check existing email: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}

		hashed, err := auth.HashPassword(password)
		if err != nil {
			log.Printf("❌ Failed to hash password: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}

		user := models.User{
			ID:       uuid.NewString(),
			Name:     name,
			Email:    email,
			Password: hashed,
			Role:     models.RoleUser,
		}

		// Optional profile photo. Written only once the row exists, so a
		// failed insert cannot leave an orphaned file behind.
		photo, photoErr := c.FormFile("photo")

		if err := db.Create(&user).Error; err != nil {
			log.Printf("❌ Failed to create user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}

		if photoErr == nil {
			path, saveErr := uploads.Save(c, photo, "profiles")
			if saveErr != nil {
				log.Printf("❌ Failed to save profile photo: %v", saveErr)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo"})
				return
			}
			if err := db.Model(&user).Update("profile_photo", path).Error; err != nil {
				log.Printf("❌ Failed to store profile photo path: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo"})
				return
			}
			user.ProfilePhoto = path
		}

		token, err := auth.IssueToken(user)
		if err != nil {
			log.Printf("❌ Token generation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":            user.ID,
			"name":          user.Name,
			"email":         user.Email,
			"role":          user.Role,
			"profile_photo": user.ProfilePhoto,
			"token":         token,
		})
	}
}

// POST /api/users/login
func LoginUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}
		if !auth.CheckPassword(user.Password, input.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}
		if user.IsBlocked {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is blocked"})
			return
		}

		token, err := auth.IssueToken(user)
		if err != nil {
			log.Printf("❌ Token generation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":            user.ID,
			"name":          user.Name,
			"email":         user.Email,
			"role":          user.Role,
			"profile_photo": user.ProfilePhoto,
			"token":         token,
		})
	}
}

// GET /api/users/profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, _ := middleware.CurrentUser(c)

		var user models.User
		if err := db.
			Preload("Listings", func(tx *gorm.DB) *gorm.DB {
				return tx.Order("created_at DESC").Preload("Images").Preload("Category")
			}).
			First(&user, "id = ?", current.ID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// GET /api/users (admin)
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "email", "name", "role", "is_blocked", "profile_photo", "created_at").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			log.Printf("❌ Failed to fetch users: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

// PATCH /api/users/:id/status (admin)
func UpdateUserStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.IsBlocked != nil {
			updates["is_blocked"] = *input.IsBlocked
		}
		if input.Role != nil {
			if *input.Role != models.RoleUser && *input.Role != models.RoleAdmin {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
				return
			}
			updates["role"] = *input.Role
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				log.Printf("❌ Failed to update user status: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
		}

		c.JSON(http.StatusOK, user)
	}
}

// PUT /api/users/upload-photo
func UpdateProfilePhoto(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, _ := middleware.CurrentUser(c)

		file, err := c.FormFile("photo")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Photo is required"})
			return
		}

		path, err := uploads.Save(c, file, "profiles")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo"})
			return
		}

		if err := db.Model(&models.User{}).Where("id = ?", current.ID).
			Update("profile_photo", path).Error; err != nil {
			log.Printf("❌ Failed to update profile photo: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile photo"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Profile photo updated", "url": path})
	}
}
