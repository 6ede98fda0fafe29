package service

import (
	"fmt"

	"github.com/amterp/swatch/internal/id"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/store"
	"github.com/amterp/swatch/internal/util"
)

// InitService handles data directory initialization.
type InitService struct {
	catalogStore store.CatalogStore
	globalStore  store.GlobalStore
}

// NewInitService creates a new init service.
func NewInitService(catalogStore store.CatalogStore, globalStore store.GlobalStore) *InitService {
	return &InitService{
		catalogStore: catalogStore,
		globalStore:  globalStore,
	}
}

// Initialize writes the global config and the starter catalog.
// It is safe to run repeatedly: existing files are left alone and created
// reports whether the starter catalog was written.
func (s *InitService) Initialize() (created bool, err error) {
	if err := s.globalStore.EnsureExists(); err != nil {
		return false, fmt.Errorf("failed to create config: %w", err)
	}

	cfg, err := s.globalStore.Load()
	if err != nil {
		return false, err
	}
	catalogName := cfg.EffectiveDefaultCatalog()

	if s.catalogStore.Exists(catalogName) {
		return false, nil
	}

	palettes := model.DefaultPalettes()
	ids := id.GenerateN(len(palettes))
	for i, p := range palettes {
		p.ID = ids[i]
		p.Slug = util.Slugify(p.Name)
	}

	starter := &model.Catalog{
		Name:        catalogName,
		Description: "Palettes bundled with swatch",
		Palettes:    palettes,
	}
	if err := s.catalogStore.Create(starter); err != nil {
		return false, fmt.Errorf("failed to create starter catalog: %w", err)
	}
	return true, nil
}
