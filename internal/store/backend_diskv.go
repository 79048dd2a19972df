package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvBackend stores each key as one file under a base directory.
type DiskvBackend struct {
	d *diskv.Diskv
}

// OpenDiskv opens a file-per-key backend rooted at basePath.
func OpenDiskv(basePath string) (*DiskvBackend, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create kv directory: %w", err)
	}
	return &DiskvBackend{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		TempDir:      filepath.Join(basePath, ".tmp"),
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

// Keys are few and short, so every file lives directly in BasePath.
func flatTransform(string) []string { return []string{} }

func (b *DiskvBackend) Read(key string) ([]byte, error) {
	val, err := b.d.Read(key)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", key, err)
	}
	return val, nil
}

func (b *DiskvBackend) Write(key string, value []byte) error {
	if err := b.d.Write(key, value); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

func (b *DiskvBackend) Erase(key string) error {
	err := b.d.Erase(key)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("erase %q: %w", key, err)
	}
	return nil
}

// Close is a no-op; diskv holds no open handles between calls.
func (b *DiskvBackend) Close() error {
	return nil
}
