package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amterp/swatch/internal/model"
	"gopkg.in/yaml.v3"
)

// DecodeCatalog parses catalog bytes, choosing the format from the file extension.
// Schema fields are not validated here.
func DecodeCatalog(data []byte, ext string) (*model.Catalog, error) {
	var cat model.Catalog
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &cat); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (want .toml, .yaml or .yml)", ext)
	}
	return &cat, nil
}

// ReadCatalogFile reads and decodes a catalog file from anywhere on disk.
func ReadCatalogFile(path string) (*model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cat, err := DecodeCatalog(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return cat, nil
}
