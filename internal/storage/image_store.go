package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yumyum-spot/menu-service/internal/config"
)

// ImageStore persists uploaded menu images and exposes their public path.
type ImageStore interface {
	Save(name string, r io.Reader) (string, error)
	Remove(relPath string) error
}

// DiskImageStore writes images under the public directory so the HTTP layer
// can serve them as static files.
type DiskImageStore struct {
	publicDir string
	imagesDir string
}

// NewDiskImageStore builds a store rooted at the configured public dir.
func NewDiskImageStore(cfg config.UploadConfig) *DiskImageStore {
	return &DiskImageStore{publicDir: cfg.PublicDir, imagesDir: cfg.ImagesDir}
}

// Save writes the image, replacing any existing file with the same name, and
// returns the relative path stored on the menu item (e.g. "images/soup.jpg").
func (s *DiskImageStore) Save(name string, r io.Reader) (string, error) {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", errors.New("invalid image file name")
	}

	dir := filepath.Join(s.publicDir, s.imagesDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create images dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(s.imagesDir, name)), nil
}

// Remove deletes a previously saved image; a missing file is not an error.
func (s *DiskImageStore) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.publicDir, filepath.FromSlash(relPath)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// PublicDir returns the static file root for the HTTP server.
func (s *DiskImageStore) PublicDir() string {
	return s.publicDir
}
