package mascotgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage is an interface for persisting generated images.
// Implementations can wrap cloud storage clients (GCS, S3, etc.);
// DirStorage is the local-filesystem implementation the CLI uses.
type Storage interface {
	// SaveFile saves image data and returns the location it was written to.
	// The contentType is typically the image's MIME type (e.g., "image/png").
	SaveFile(ctx context.Context, data []byte, path string, contentType string) (string, error)
}

// DirStorage writes images to the local filesystem relative to a base
// directory. Existing files are overwritten. Writes go directly to the
// target path; a killed process may leave a partial file behind.
type DirStorage struct {
	base string
}

// Ensure DirStorage implements Storage.
var _ Storage = (*DirStorage)(nil)

// NewDirStorage creates a DirStorage rooted at base.
// An empty base means paths are used as given.
func NewDirStorage(base string) *DirStorage {
	return &DirStorage{base: base}
}

// SaveFile writes data to the given path, overwriting any existing file.
func (s *DirStorage) SaveFile(_ context.Context, data []byte, path string, _ string) (string, error) {
	target := path
	if s.base != "" {
		target = filepath.Join(s.base, path)
	}

	if err := os.WriteFile(target, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", target, err)
	}
	return target, nil
}

// SaveFirstImage writes the first image of a result to storage and returns
// the saved location. Later images are ignored; at most one write occurs.
// Results without an image payload produce no write and no error — callers
// should check HasImage first if they need to distinguish.
func SaveFirstImage(ctx context.Context, storage Storage, result *GenerateResult, path string) (string, error) {
	if storage == nil {
		return "", ErrStorageNotConfigured
	}
	if !result.HasImage() {
		return "", nil
	}

	img := result.Images[0]
	return storage.SaveFile(ctx, img.Data, path, img.MIMEType)
}

// GetMIMEType maps a file extension to an image MIME type, defaulting to PNG.
func GetMIMEType(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "image/png"
	}
}
