package furnitureControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	furnitureControllers "github.com/furnimarket/furniture-market-api/controllers/furniture"
	"github.com/furnimarket/furniture-market-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Sale{},
		&models.Furniture{},
		&models.FurnitureImage{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Address{},
		&models.Banner{},
	))
	return db
}

// newRouter registers the furniture handlers with the caller injected via
// *currentUser, so tests can switch identity between requests.
func newRouter(db *gorm.DB, currentUser *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authed := r.Group("", func(c *gin.Context) {
		c.Set("user", *currentUser)
		c.Set("user_id", currentUser.ID)
	})

	r.GET("/api/furniture", furnitureControllers.GetFurniture(db))
	r.GET("/api/furniture/featured", furnitureControllers.GetFeaturedFurniture(db))
	r.GET("/api/furniture/:id", furnitureControllers.GetFurnitureByID(db))

	authed.POST("/api/furniture", furnitureControllers.CreateFurniture(db))
	authed.PUT("/api/furniture/:id", furnitureControllers.UpdateFurniture(db))
	authed.DELETE("/api/furniture/:id", furnitureControllers.DeactivateFurniture(db))
	authed.PATCH("/api/furniture/:id/approve", furnitureControllers.ApproveFurniture(db))
	authed.PATCH("/api/furniture/:id/decline", furnitureControllers.DeclineFurniture(db))
	return r
}

func seedUser(t *testing.T, db *gorm.DB, id string, role models.Role) models.User {
	t.Helper()
	user := models.User{
		ID:       id,
		Name:     id,
		Email:    id + "@example.com",
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func listingForm(t *testing.T, fields map[string]string, imageNames ...string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, name := range imageNames {
		fw, err := mw.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("not really a jpeg"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func createListing(t *testing.T, r *gin.Engine, categoryID uint) models.Furniture {
	t.Helper()
	body, contentType := listingForm(t, map[string]string{
		"title":       "Oak table",
		"description": "Solid oak dining table",
		"price":       "120.50",
		"category_id": fmt.Sprint(categoryID),
		"condition":   "used",
		"location":    "Berlin",
	}, "table.jpg")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/furniture", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data models.Furniture `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestCreateFurnitureByUserStartsPending(t *testing.T) {
	db := newTestDB(t)
	t.Setenv("UPLOAD_DIR", t.TempDir())
	user := seedUser(t, db, "alice", models.RoleUser)
	category := seedCategory(t, db, "Tables")
	current := user
	r := newRouter(db, &current)

	listing := createListing(t, r, category.ID)
	assert.Equal(t, models.ListingPending, listing.Status)
	require.Len(t, listing.Images, 1)

	// Hidden from the public list
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/furniture", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Furniture
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Empty(t, listed)

	// Direct fetch must not leak its existence
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/furniture/%d", listing.ID), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateFurnitureByAdminAutoApproved(t *testing.T) {
	db := newTestDB(t)
	t.Setenv("UPLOAD_DIR", t.TempDir())
	admin := seedUser(t, db, "admin", models.RoleAdmin)
	category := seedCategory(t, db, "Chairs")
	current := admin
	r := newRouter(db, &current)

	listing := createListing(t, r, category.ID)
	assert.Equal(t, models.ListingApproved, listing.Status)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/furniture/%d", listing.ID), nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateFurnitureRequiresImageAndCategory(t *testing.T) {
	db := newTestDB(t)
	t.Setenv("UPLOAD_DIR", t.TempDir())
	user := seedUser(t, db, "alice", models.RoleUser)
	category := seedCategory(t, db, "Tables")
	current := user
	r := newRouter(db, &current)

	// No images
	body, contentType := listingForm(t, map[string]string{
		"title":       "Oak table",
		"price":       "10",
		"category_id": fmt.Sprint(category.ID),
		"condition":   "used",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/furniture", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown category
	body, contentType = listingForm(t, map[string]string{
		"title":       "Oak table",
		"price":       "10",
		"category_id": "999",
		"condition":   "used",
	}, "a.jpg")
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/furniture", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Bad condition
	body, contentType = listingForm(t, map[string]string{
		"title":       "Oak table",
		"price":       "10",
		"category_id": fmt.Sprint(category.ID),
		"condition":   "broken",
	}, "a.jpg")
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/furniture", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApproveFurnitureMakesItVisible(t *testing.T) {
	db := newTestDB(t)
	t.Setenv("UPLOAD_DIR", t.TempDir())
	user := seedUser(t, db, "alice", models.RoleUser)
	seedUser(t, db, "admin", models.RoleAdmin)
	category := seedCategory(t, db, "Tables")
	current := user
	r := newRouter(db, &current)

	listing := createListing(t, r, category.ID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/api/furniture/%d/approve", listing.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/furniture/%d", listing.ID), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Approving twice is rejected
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/api/furniture/%d/approve", listing.ID), nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeclineFurnitureIsTerminal(t *testing.T) {
	db := newTestDB(t)
	t.Setenv("UPLOAD_DIR", t.TempDir())
	user := seedUser(t, db, "alice", models.RoleUser)
	category := seedCategory(t, db, "Tables")
	current := user
	r := newRouter(db, &current)

	listing := createListing(t, r, category.ID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/api/furniture/%d/decline", listing.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Furniture{}).Where("id = ?", listing.ID).Count(&count).Error)
	assert.Zero(t, count)

	// Re-approval is impossible: the row is gone
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/api/furniture/%d/approve", listing.ID), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateFurnitureOwnershipRules(t *testing.T) {
	db := newTestDB(t)
	t.Setenv("UPLOAD_DIR", t.TempDir())
	owner := seedUser(t, db, "alice", models.RoleUser)
	other := seedUser(t, db, "bob", models.RoleUser)
	admin := seedUser(t, db, "root", models.RoleAdmin)
	category := seedCategory(t, db, "Tables")
	current := owner
	r := newRouter(db, &current)

	listing := createListing(t, r, category.ID)

	patch := func() (*bytes.Buffer, string) {
		return listingForm(t, map[string]string{"price": "99.99"})
	}

	// A stranger is rejected
	current = other
	body, contentType := patch()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/furniture/%d", listing.ID), body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The owner succeeds, and untouched fields survive
	current = owner
	body, contentType = patch()
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/furniture/%d", listing.ID), body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Furniture
	require.NoError(t, db.First(&updated, listing.ID).Error)
	assert.Equal(t, 99.99, updated.Price)
	assert.Equal(t, "Oak table", updated.Title)

	// So does an admin
	current = admin
	body, contentType = patch()
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/furniture/%d", listing.ID), body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeactivateFurnitureSoftDeletes(t *testing.T) {
	db := newTestDB(t)
	t.Setenv("UPLOAD_DIR", t.TempDir())
	owner := seedUser(t, db, "alice", models.RoleUser)
	other := seedUser(t, db, "bob", models.RoleUser)
	category := seedCategory(t, db, "Tables")
	current := owner
	r := newRouter(db, &current)

	listing := createListing(t, r, category.ID)
	require.NoError(t, db.Model(&models.Furniture{}).Where("id = ?", listing.ID).
		Update("status", models.ListingApproved).Error)

	current = other
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/furniture/%d", listing.ID), nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	current = owner
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/furniture/%d", listing.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)

	// Row survives for cart/wishlist history but is hidden from the public
	var kept models.Furniture
	require.NoError(t, db.First(&kept, listing.ID).Error)
	assert.Equal(t, models.ListingDeactivated, kept.Status)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/furniture/%d", listing.ID), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFeaturedReturnsFiveNewestApproved(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice", models.RoleUser)
	category := seedCategory(t, db, "Tables")
	current := user
	r := newRouter(db, &current)

	for i := 0; i < 7; i++ {
		require.NoError(t, db.Create(&models.Furniture{
			Title:      fmt.Sprintf("Item %d", i),
			Price:      10,
			CategoryID: category.ID,
			Condition:  models.ConditionUsed,
			OwnerID:    user.ID,
			Status:     models.ListingApproved,
		}).Error)
	}
	require.NoError(t, db.Create(&models.Furniture{
		Title:      "Pending item",
		Price:      10,
		CategoryID: category.ID,
		Condition:  models.ConditionUsed,
		OwnerID:    user.ID,
		Status:     models.ListingPending,
	}).Error)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/furniture/featured", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var featured []models.Furniture
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &featured))
	assert.Len(t, featured, 5)
	for _, f := range featured {
		assert.Equal(t, models.ListingApproved, f.Status)
	}
}
