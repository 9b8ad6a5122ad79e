package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"kpi-mantenimiento/internal/storage"
)

// Storage keeps the snapshot slot in a single JSON file.
type Storage struct {
	path string
}

func New(path string) (*Storage, error) {
	const op = "storage.file.New"

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%s: create dir for %s: %w", op, path, err)
	}

	return &Storage{path: path}, nil
}

func (s *Storage) Load(ctx context.Context) ([]byte, error) {
	const op = "storage.file.Load"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, storage.ErrSlotEmpty
		}
		return nil, fmt.Errorf("%s: read %s: %w", op, s.path, err)
	}
	if len(data) == 0 {
		return nil, storage.ErrSlotEmpty
	}

	return data, nil
}

// Save replaces the slot atomically: a temp file in the same directory renamed over the
// previous snapshot.
func (s *Storage) Save(ctx context.Context, payload []byte) error {
	const op = "storage.file.Save"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%s: create temp: %w", op, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: write temp: %w", op, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: close temp: %w", op, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%s: rename: %w", op, err)
	}

	return nil
}
