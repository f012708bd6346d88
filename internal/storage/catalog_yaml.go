package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"brandcarousel/internal/core/model"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingID indicates a catalog entry without an id.
	ErrMissingID = errors.New("catalog entry has no id")
	// ErrDuplicateID indicates two catalog entries share an id.
	ErrDuplicateID = errors.New("duplicate catalog id")
)

type yamlCatalog struct {
	Brands []model.Item `yaml:"brands"`
}

// LoadCatalog reads the brand list from YAML. Relative logo references are
// resolved against the catalog's directory. An empty list is valid.
func LoadCatalog(catalogPath string) ([]model.Item, error) {
	rawData, err := os.ReadFile(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return ParseCatalog(rawData, filepath.Dir(catalogPath))
}

// ParseCatalog decodes and validates catalog YAML.
func ParseCatalog(rawData []byte, baseDir string) ([]model.Item, error) {
	var fileData yamlCatalog
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}

	seen := make(map[string]struct{}, len(fileData.Brands))
	items := make([]model.Item, 0, len(fileData.Brands))
	for index, item := range fileData.Brands {
		item.ID = strings.TrimSpace(item.ID)
		if item.ID == "" {
			return nil, fmt.Errorf("catalog entry %d: %w", index, ErrMissingID)
		}
		if _, ok := seen[item.ID]; ok {
			return nil, fmt.Errorf("catalog entry %d %q: %w", index, item.ID, ErrDuplicateID)
		}
		seen[item.ID] = struct{}{}
		if item.Name == "" {
			item.Name = item.ID
		}
		item.Logo = resolveLogoRef(item.Logo, baseDir)
		items = append(items, item)
	}
	return items, nil
}

// SaveCatalog writes the brand list to YAML.
func SaveCatalog(catalogPath string, items []model.Item) error {
	if err := os.MkdirAll(filepath.Dir(catalogPath), 0o755); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}
	serialized, err := yaml.Marshal(yamlCatalog{Brands: items})
	if err != nil {
		return fmt.Errorf("marshal catalog yaml: %w", err)
	}
	if err := os.WriteFile(catalogPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write catalog file: %w", err)
	}
	return nil
}

func resolveLogoRef(ref, baseDir string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || baseDir == "" || strings.Contains(ref, "://") || filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(baseDir, ref)
}
