package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store is the boundary to the image/blob backend: accept an upload, hand
// back a retrievable reference, support delete.
type Store interface {
	Save(subdir, filename string, r io.Reader) (string, error)
	Delete(ref string) error
}

// DiskStore keeps uploads under a local media directory, category and
// product images in their own subdirectories.
type DiskStore struct {
	baseDir string
}

func NewDiskStore(baseDir string) *DiskStore {
	return &DiskStore{baseDir: baseDir}
}

func (s *DiskStore) Save(subdir, filename string, r io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create media dir %s: %w", dir, err)
	}

	ref := filepath.Join(subdir, uuid.New().String()+filepath.Ext(filename))
	dst, err := os.Create(filepath.Join(s.baseDir, ref))
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return ref, nil
}

func (s *DiskStore) Delete(ref string) error {
	if ref == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, ref))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete media file %s: %w", ref, err)
	}
	return nil
}
