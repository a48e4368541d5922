package bannerControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	bannerControllers "github.com/furnimarket/furniture-market-api/controllers/banner"
	"github.com/furnimarket/furniture-market-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Banner{}))
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/carousel/slides", bannerControllers.GetCarouselSlides(db))
	r.GET("/api/carousel", bannerControllers.GetBanners(db))
	r.POST("/api/carousel", bannerControllers.CreateBanner(db))
	r.DELETE("/api/carousel/:id", bannerControllers.DeleteBanner(db))
	return r
}

func seedBanner(t *testing.T, db *gorm.DB, title string, active bool, createdAt time.Time) models.Banner {
	t.Helper()
	banner := models.Banner{
		ImageURL:  "/uploads/banners/" + title + ".jpg",
		Title:     title,
		Active:    active,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(&banner).Error)
	return banner
}

func TestCarouselSlidesShowOnlyActiveNewestFirst(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedBanner(t, db, "Oldest", true, base)
	seedBanner(t, db, "Hidden", false, base.AddDate(0, 0, 1))
	seedBanner(t, db, "Newest", true, base.AddDate(0, 0, 2))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/carousel/slides", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var slides []struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slides))
	require.Len(t, slides, 2)
	assert.Equal(t, "Newest", slides[0].Title)
	assert.Equal(t, "Oldest", slides[1].Title)
}

func TestGetBannersIncludesInactive(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedBanner(t, db, "Live", true, base)
	seedBanner(t, db, "Hidden", false, base.AddDate(0, 0, 1))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/carousel", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var banners []models.Banner
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &banners))
	assert.Len(t, banners, 2)
}

func createBanner(t *testing.T, r *gin.Engine, title string) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("title", title))
	require.NoError(t, mw.WriteField("price", "199.99"))
	fw, err := mw.CreateFormFile("image", "banner.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("not really a jpeg"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/carousel", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBannerUploadsImage(t *testing.T) {
	uploadDir := t.TempDir()
	t.Setenv("UPLOAD_DIR", uploadDir)
	db := newTestDB(t)
	r := newRouter(db)

	w := createBanner(t, r, "Summer deal")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var banner models.Banner
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &banner))
	assert.True(t, banner.Active)
	assert.Equal(t, 199.99, banner.Price)
	require.NotEmpty(t, banner.ImageURL)

	// The file landed under the banners upload dir
	localPath := filepath.Join(uploadDir, "banners", filepath.Base(banner.ImageURL))
	_, err := os.Stat(localPath)
	assert.NoError(t, err)
}

func TestCreateBannerRequiresImage(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("title", "No image"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/carousel", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteBannerRemovesRowAndFile(t *testing.T) {
	uploadDir := t.TempDir()
	t.Setenv("UPLOAD_DIR", uploadDir)
	db := newTestDB(t)
	r := newRouter(db)

	w := createBanner(t, r, "Short lived")
	require.Equal(t, http.StatusCreated, w.Code)
	var banner models.Banner
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &banner))
	localPath := filepath.Join(uploadDir, "banners", filepath.Base(banner.ImageURL))
	_, err := os.Stat(localPath)
	require.NoError(t, err)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/carousel/%d", banner.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Banner{}).Count(&count).Error)
	assert.Zero(t, count)
	_, err = os.Stat(localPath)
	assert.True(t, os.IsNotExist(err))

	// Deleting again is a 404
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/carousel/%d", banner.ID), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
