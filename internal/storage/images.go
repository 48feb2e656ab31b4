package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	apperrors "contactbook/internal/errors"
)

// allowedExtensions is the upload allow-list for profile pictures.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// ImageStore writes uploaded images into a local directory under
// collision-resistant names.
type ImageStore struct {
	dir string
}

// NewImageStore creates an image store rooted at dir. The directory is
// created lazily on first save.
func NewImageStore(dir string) *ImageStore {
	return &ImageStore{dir: dir}
}

// Save stores the uploaded file and returns the generated filename. Files
// with extensions outside the allow-list are rejected.
func (s *ImageStore) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", apperrors.ErrUnsupportedImage
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	// Random prefix keeps repeated uploads of the same filename from colliding.
	prefix := strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	name := prefix + "_" + sanitizeFilename(filepath.Base(file.Filename))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return name, nil
}

// sanitizeFilename keeps a conservative character set so the stored name
// is safe to serve back as a static file path.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
