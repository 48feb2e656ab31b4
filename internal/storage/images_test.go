package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "contactbook/internal/errors"
)

func uploadHeader(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("profile_picture", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-image-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["profile_picture"][0]
}

func TestImageStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := NewImageStore(dir)

	name, err := store.Save(uploadHeader(t, "photo.png"))
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "_photo.png"), "got %q", name)

	content, err := os.ReadFile(filepath.Join(dir, name))
	assert.NoError(t, err)
	assert.Equal(t, "fake-image-bytes", string(content))

	// Same original filename gets a distinct stored name.
	second, err := store.Save(uploadHeader(t, "photo.png"))
	assert.NoError(t, err)
	assert.NotEqual(t, name, second)
}

func TestImageStore_RejectsUnsupportedExtension(t *testing.T) {
	store := NewImageStore(t.TempDir())

	for _, filename := range []string{"notes.txt", "script.sh", "archive", "image.png.exe"} {
		_, err := store.Save(uploadHeader(t, filename))
		assert.ErrorIs(t, err, apperrors.ErrUnsupportedImage, "filename %q", filename)
	}
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my_photo_1.png", sanitizeFilename("my photo 1.png"))
	assert.Equal(t, "a_b.jpg", sanitizeFilename("a/b.jpg"))
}
