package imagestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"lostFoundManagement/models"
)

// Store copies report images into a per-category directory and hands back
// the stored path. The rest of the system only ever persists that path
// string; file contents are never inspected.
type Store struct {
	root string
}

// New returns a store rooted at dir ("images" when empty).
func New(dir string) *Store {
	if dir == "" {
		dir = "images"
	}
	return &Store{root: dir}
}

// Save copies the file at srcPath into <root>/<category>/<unix-millis>_<base>
// and returns the stored path. The timestamp prefix keeps repeated uploads
// of the same filename from colliding.
func (s *Store) Save(category models.Category, srcPath string) (string, error) {
	if !category.Valid() {
		return "", fmt.Errorf("invalid category %q", category)
	}
	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open source image: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(s.root, string(category))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create image directory: %w", err)
	}
	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(srcPath))
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create stored image: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("copy image: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("close stored image: %w", err)
	}
	return dstPath, nil
}
