package uploads

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Root returns the local directory uploaded files are written to.
func Root() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// UniqueName prefixes the original filename with a uuid so concurrent uploads
// of identically named files cannot collide.
func UniqueName(origName string) string {
	ext := filepath.Ext(origName)
	base := strings.TrimSuffix(filepath.Base(origName), ext)
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%s_%s%s", uuid.NewString(), base, ext)
}

// Save stores an uploaded file under Root()/subdir and returns the public
// /uploads path it is served from.
func Save(c *gin.Context, file *multipart.FileHeader, subdir string) (string, error) {
	dir := filepath.Join(Root(), subdir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	name := UniqueName(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/%s/%s", subdir, name), nil
}
