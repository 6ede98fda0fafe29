package store

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/amterp/swatch/internal/config"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/version"
)

// FileCatalogStore implements CatalogStore using the filesystem.
// Catalogs are read from TOML or YAML files and always written as TOML.
type FileCatalogStore struct {
	paths *config.Paths
}

// NewCatalogStore creates a new catalog store.
func NewCatalogStore(paths *config.Paths) *FileCatalogStore {
	return &FileCatalogStore{paths: paths}
}

// Create writes a new catalog, failing if one with the same name exists.
func (s *FileCatalogStore) Create(cat *model.Catalog) error {
	if s.Exists(cat.Name) {
		return swerr.CatalogAlreadyExists(cat.Name)
	}

	if err := os.MkdirAll(s.paths.CatalogsRoot(), 0755); err != nil {
		return fmt.Errorf("failed to create catalogs directory: %w", err)
	}

	if err := s.write(cat); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

// Get reads a catalog from disk.
func (s *FileCatalogStore) Get(name string) (*model.Catalog, error) {
	path, ok := s.find(name)
	if !ok {
		return nil, swerr.CatalogNotFound(name)
	}

	cat, err := ReadCatalogFile(path)
	if err != nil {
		return nil, err
	}

	// Strict version validation
	if cat.SwatchSchema == "" {
		return nil, version.MissingCatalogSchema(path)
	}
	if cat.SwatchSchema != version.CurrentCatalogSchema() {
		return nil, version.InvalidCatalogSchema(path, cat.SwatchSchema)
	}

	// The file name is authoritative.
	cat.Name = name
	cat.StampCatalog()
	return cat, nil
}

// Save writes the catalog to disk as TOML.
// A YAML file previously backing the catalog is replaced.
func (s *FileCatalogStore) Save(cat *model.Catalog) error {
	if err := os.MkdirAll(s.paths.CatalogsRoot(), 0755); err != nil {
		return fmt.Errorf("failed to create catalogs directory: %w", err)
	}

	previous, hadPrevious := s.find(cat.Name)
	if err := s.write(cat); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	if hadPrevious && previous != s.paths.CatalogPath(cat.Name) {
		_ = os.Remove(previous)
	}
	return nil
}

// Delete removes every file backing the catalog.
func (s *FileCatalogStore) Delete(name string) error {
	found := false
	for _, ext := range config.CatalogExts {
		err := os.Remove(s.paths.CatalogPathWithExt(name, ext))
		if err == nil {
			found = true
			continue
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete catalog: %w", err)
		}
	}
	if !found {
		return swerr.CatalogNotFound(name)
	}
	return nil
}

// List returns the names of all catalogs, sorted.
func (s *FileCatalogStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.paths.CatalogsRoot())
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil // Return empty slice, not nil
		}
		return nil, fmt.Errorf("failed to read catalogs directory: %w", err)
	}

	seen := make(map[string]bool)
	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := config.CatalogName(entry.Name())
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// Exists returns true if the catalog exists.
func (s *FileCatalogStore) Exists(name string) bool {
	_, ok := s.find(name)
	return ok
}

// Path returns the file backing the catalog, or the canonical TOML path if
// the catalog doesn't exist yet.
func (s *FileCatalogStore) Path(name string) string {
	if path, ok := s.find(name); ok {
		return path
	}
	return s.paths.CatalogPath(name)
}

func (s *FileCatalogStore) find(name string) (string, bool) {
	for _, ext := range config.CatalogExts {
		path := s.paths.CatalogPathWithExt(name, ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func (s *FileCatalogStore) write(cat *model.Catalog) error {
	// Stamp current schema version
	cat.SwatchSchema = version.CurrentCatalogSchema()

	f, err := os.Create(s.paths.CatalogPath(cat.Name))
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cat)
}
