package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stretchfit/stretch-engine/internal/core/domain"
)

// FileSnapshotStore keeps each blob as one JSON file in a directory,
// replaced whole on every save. This is the default store and mirrors
// the read-on-load/write-on-change discipline of browser local storage.
type FileSnapshotStore struct {
	dir string
}

func NewFileSnapshotStore(dir string) (*FileSnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file store: cannot create %s: %w", dir, err)
	}
	return &FileSnapshotStore{dir: dir}, nil
}

func (s *FileSnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("file store: read %s failed: %w", key, err)
	}
	return data, nil
}

func (s *FileSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("file store: write %s failed: %w", key, err)
	}
	return nil
}

func (s *FileSnapshotStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("file store: delete %s failed: %w", key, err)
	}
	return nil
}

func (s *FileSnapshotStore) path(key string) string {
	name := strings.ReplaceAll(key, ":", "_") + ".json"
	return filepath.Join(s.dir, name)
}
