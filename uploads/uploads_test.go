package uploads_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/furnimarket/furniture-market-api/uploads"
)

func TestUniqueName(t *testing.T) {
	a := uploads.UniqueName("sofa photo.jpg")
	b := uploads.UniqueName("sofa photo.jpg")

	assert.NotEqual(t, a, b)
	assert.True(t, len(a) > len("sofa_photo.jpg"))
	assert.Contains(t, a, "sofa_photo.jpg")
	assert.NotContains(t, a, " ")
}

func TestUniqueNameStripsDirectories(t *testing.T) {
	name := uploads.UniqueName("../../etc/passwd.png")
	assert.NotContains(t, name, "/")
	assert.Contains(t, name, "passwd.png")
}

func TestRootHonorsEnv(t *testing.T) {
	t.Setenv("UPLOAD_DIR", "/tmp/somewhere")
	assert.Equal(t, "/tmp/somewhere", uploads.Root())

	t.Setenv("UPLOAD_DIR", "")
	assert.Equal(t, "uploads", uploads.Root())
}
