package kv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists each key as its own file under a private data
// directory, mirroring the on-device storage contract the mobile app
// relies on. Writes go through a temp file and rename so a crash never
// leaves a half-written value behind.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %v", err)
	}
	return &FileStore{dir: dir}, nil
}

func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.dir, key)
}

func (fs *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read key %q: %v", key, err)
	}
	return string(data), true, nil
}

func (fs *FileStore) Set(ctx context.Context, key, value string) error {
	tmp, err := os.CreateTemp(fs.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for key %q: %v", key, err)
	}

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write key %q: %v", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for key %q: %v", key, err)
	}

	if err := os.Rename(tmp.Name(), fs.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to persist key %q: %v", key, err)
	}
	return nil
}

func (fs *FileStore) MultiGet(ctx context.Context, keys []string) (map[string]string, error) {
	values := make(map[string]string, len(keys))
	for _, key := range keys {
		value, found, err := fs.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if found {
			values[key] = value
		}
	}
	return values, nil
}

func (fs *FileStore) MultiRemove(ctx context.Context, keys []string) error {
	for _, key := range keys {
		if err := os.Remove(fs.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove key %q: %v", key, err)
		}
	}
	return nil
}
