package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mvtechguy/faseyha-portal/config"
)

// BlobStorage stores uploaded files and hands back browser-facing paths
type BlobStorage interface {
	// Save writes the file under name and returns its public path
	Save(ctx context.Context, name string, reader io.Reader, size int64, contentType string) (string, error)
}

// DiskStorage writes uploads to a local directory served at a public base
// path. Directory and base are injected so tests can redirect storage.
type DiskStorage struct {
	dir        string
	publicBase string
}

func NewDiskStorage(cfg *config.UploadConfig) *DiskStorage {
	return &DiskStorage{
		dir:        cfg.Dir,
		publicBase: cfg.PublicBase,
	}
}

// Save writes the file to the upload directory, creating it if missing.
// Concurrent requests may race on the MkdirAll but it is idempotent.
func (s *DiskStorage) Save(ctx context.Context, name string, reader io.Reader, size int64, contentType string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(s.dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, reader); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.publicBase + "/" + name, nil
}
