package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrUnsupportedImageType = errors.New("unsupported image type")

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ImageStore saves uploaded cake images to a local directory and hands back
// the URL path the storefront uses to load them. The catalog only ever
// stores this reference; image bytes are never interpreted.
type ImageStore struct {
	dir string
}

// NewImageStore creates an ImageStore writing into dir.
func NewImageStore(dir string) *ImageStore {
	return &ImageStore{dir: dir}
}

// Save writes the uploaded file under a generated name and returns its
// public path, e.g. "uploads/5f8b…c1.jpg".
func (s *ImageStore) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedImageType
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("writing image file: %w", err)
	}

	return path.Join("uploads", name), nil
}
