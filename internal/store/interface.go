package store

import "github.com/amterp/swatch/internal/model"

// CatalogStore handles catalog persistence.
type CatalogStore interface {
	Create(catalog *model.Catalog) error
	Get(name string) (*model.Catalog, error)
	Save(catalog *model.Catalog) error
	Delete(name string) error
	List() ([]string, error) // Returns catalog names, sorted
	Exists(name string) bool
	Path(name string) string // Path of the file backing the catalog
}

// GlobalStore handles global config persistence.
type GlobalStore interface {
	Load() (*model.GlobalConfig, error)
	Save(config *model.GlobalConfig) error
	EnsureExists() error
}
