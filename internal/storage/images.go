package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// DiskImageStore writes processed dish images under a local uploads
// directory and returns their path as the opaque image reference.
type DiskImageStore struct {
	Dir string
}

func NewDiskImageStore(dir string) *DiskImageStore {
	return &DiskImageStore{Dir: dir}
}

func (s *DiskImageStore) Store(ctx context.Context, raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", errors.New("empty image payload")
	}
	ext, ok := imageExtensions[http.DetectContentType(raw)]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", http.DetectContentType(raw))
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := fmt.Sprintf("dish_%d%s", time.Now().UnixNano(), ext)
	path := filepath.Join(s.Dir, filename)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return path, nil
}

// Remove deletes a stored image. A missing file is not an error, so record
// cleanup stays idempotent.
func (s *DiskImageStore) Remove(ref string) error {
	if ref == "" {
		return nil
	}
	if err := os.Remove(ref); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove image: %w", err)
	}
	return nil
}
