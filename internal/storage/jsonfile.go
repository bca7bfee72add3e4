package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"daily-dish/internal/domain"
)

// JSONFileStore keeps the whole dish collection in a single JSON file.
// Writes go through a temp file and rename so readers never observe a
// partially written collection.
type JSONFileStore struct {
	Path string
}

func NewJSONFileStore(path string) *JSONFileStore {
	return &JSONFileStore{Path: path}
}

func (s *JSONFileStore) ReadCollection() ([]domain.DishRecord, error) {
	raw, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.DishRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}

	var dishes []domain.DishRecord
	if err := json.Unmarshal(raw, &dishes); err != nil {
		return nil, fmt.Errorf("failed to decode menu file: %w", err)
	}
	return dishes, nil
}

func (s *JSONFileStore) WriteCollection(dishes []domain.DishRecord) error {
	// Compact encoding keeps opaque description payloads byte-stable
	// across write/read cycles.
	payload, err := json.Marshal(dishes)
	if err != nil {
		return fmt.Errorf("failed to encode menu: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0644); err != nil {
		return fmt.Errorf("failed to write menu file: %w", err)
	}
	return os.Rename(tmp, s.Path)
}
