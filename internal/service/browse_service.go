package service

import (
	"github.com/amterp/swatch/internal/browse"
)

// BrowseService builds browsers over the stored catalogs.
type BrowseService struct {
	catalogs *CatalogService
}

// NewBrowseService creates a new browse service.
func NewBrowseService(catalogs *CatalogService) *BrowseService {
	return &BrowseService{catalogs: catalogs}
}

// Open loads the palettes of catalogName (all catalogs when empty) into a
// new browser showing the whole list.
func (s *BrowseService) Open(catalogName string, pageSize int) (*browse.Browser, error) {
	palettes, err := s.catalogs.Load(catalogName)
	if err != nil {
		return nil, err
	}
	return browse.New(palettes, pageSize), nil
}

// Reload re-reads the palettes from disk and swaps them into b.
// The active query is re-applied and the current page clamped.
func (s *BrowseService) Reload(b *browse.Browser, catalogName string) error {
	palettes, err := s.catalogs.Load(catalogName)
	if err != nil {
		return err
	}
	b.SetCatalog(palettes)
	return nil
}
