package service

import (
	"fmt"
	"strings"

	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/id"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/store"
	"github.com/amterp/swatch/internal/util"
)

// CatalogService handles catalog and palette operations.
type CatalogService struct {
	catalogStore store.CatalogStore
	globalStore  store.GlobalStore
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalogStore store.CatalogStore, globalStore store.GlobalStore) *CatalogService {
	return &CatalogService{
		catalogStore: catalogStore,
		globalStore:  globalStore,
	}
}

// CatalogSummary describes a catalog without its palettes.
type CatalogSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Palettes    int    `json:"palettes"`
	Path        string `json:"path"`
}

// List returns a summary of every catalog, sorted by name.
func (s *CatalogService) List() ([]CatalogSummary, error) {
	names, err := s.catalogStore.List()
	if err != nil {
		return nil, err
	}

	summaries := make([]CatalogSummary, 0, len(names))
	for _, name := range names {
		cat, err := s.catalogStore.Get(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog %s: %w", name, err)
		}
		summaries = append(summaries, CatalogSummary{
			Name:        cat.Name,
			Description: cat.Description,
			Palettes:    len(cat.Palettes),
			Path:        s.catalogStore.Path(name),
		})
	}
	return summaries, nil
}

// Names returns the catalog names, sorted.
func (s *CatalogService) Names() ([]string, error) {
	return s.catalogStore.List()
}

// Get returns a single catalog.
func (s *CatalogService) Get(name string) (*model.Catalog, error) {
	return s.catalogStore.Get(name)
}

// Path returns the file backing the catalog.
func (s *CatalogService) Path(name string) string {
	return s.catalogStore.Path(name)
}

// LoadAll returns the palettes of every catalog, in catalog order and then
// file order. Each palette is stamped with its catalog name.
func (s *CatalogService) LoadAll() ([]*model.Palette, error) {
	names, err := s.catalogStore.List()
	if err != nil {
		return nil, err
	}

	palettes := []*model.Palette{}
	for _, name := range names {
		cat, err := s.catalogStore.Get(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog %s: %w", name, err)
		}
		palettes = append(palettes, cat.Palettes...)
	}
	return palettes, nil
}

// Load returns the palettes of one catalog, or of all catalogs when name is empty.
func (s *CatalogService) Load(name string) ([]*model.Palette, error) {
	if name == "" {
		return s.LoadAll()
	}
	cat, err := s.catalogStore.Get(name)
	if err != nil {
		return nil, err
	}
	return cat.Palettes, nil
}

// AddPaletteInput contains the parameters for adding a palette.
type AddPaletteInput struct {
	Catalog   string // Empty means the configured default catalog
	Name      string
	Colors    []string
	Favorites int
	Tags      []string
}

// AddPalette validates and appends a palette to a catalog, creating the
// catalog if it doesn't exist yet.
func (s *CatalogService) AddPalette(input AddPaletteInput) (*model.Palette, error) {
	catalogName := input.Catalog
	if catalogName == "" {
		catalogName = s.defaultCatalog()
	}

	palette := &model.Palette{
		Name:      strings.TrimSpace(input.Name),
		Favorites: input.Favorites,
		Colors:    NormalizeColors(input.Colors),
		Tags:      input.Tags,
	}
	if problems := palette.Validate(); len(problems) > 0 {
		return nil, swerr.InvalidField("palette", strings.Join(problems, "; "))
	}

	cat, err := s.catalogStore.Get(catalogName)
	if err != nil {
		if !swerr.IsNotFound(err) {
			return nil, err
		}
		cat = &model.Catalog{Name: catalogName}
	}

	if hasPaletteNamedFold(cat, palette.Name) {
		return nil, swerr.PaletteAlreadyExists(palette.Name, catalogName)
	}

	palette.ID = id.Generate()
	palette.Slug = uniqueSlug(cat, palette.Name)
	palette.Catalog = catalogName
	cat.AddPalette(palette)

	if err := s.catalogStore.Save(cat); err != nil {
		return nil, err
	}
	return palette, nil
}

// RemovePalette deletes a palette by ID from a catalog.
func (s *CatalogService) RemovePalette(catalogName, paletteID string) error {
	cat, err := s.catalogStore.Get(catalogName)
	if err != nil {
		return err
	}
	if !cat.RemovePalette(paletteID) {
		return swerr.PaletteNotFound(paletteID)
	}
	return s.catalogStore.Save(cat)
}

// ImportResult reports what an import did.
type ImportResult struct {
	Catalog string   `json:"catalog"`
	Added   []string `json:"added"`
	Skipped []string `json:"skipped"` // Names already present in the target catalog
}

// Import reads palettes from a TOML or YAML catalog file anywhere on disk
// and merges them into the named catalog. Palettes whose names already exist
// are skipped. Every imported palette is validated before anything is written.
func (s *CatalogService) Import(path, catalogName string) (*ImportResult, error) {
	source, err := store.ReadCatalogFile(path)
	if err != nil {
		return nil, err
	}

	if catalogName == "" {
		catalogName = source.Name
	}
	if catalogName == "" {
		catalogName = s.defaultCatalog()
	}

	cat, err := s.catalogStore.Get(catalogName)
	if err != nil {
		if !swerr.IsNotFound(err) {
			return nil, err
		}
		cat = &model.Catalog{Name: catalogName, Description: source.Description}
	}

	for i, p := range source.Palettes {
		p.Colors = NormalizeColors(p.Colors)
		if problems := p.Validate(); len(problems) > 0 {
			return nil, swerr.InvalidField(fmt.Sprintf("palette %d (%s)", i+1, p.Name), strings.Join(problems, "; "))
		}
	}

	result := &ImportResult{Catalog: catalogName, Added: []string{}, Skipped: []string{}}
	for _, p := range source.Palettes {
		if hasPaletteNamedFold(cat, p.Name) {
			result.Skipped = append(result.Skipped, p.Name)
			continue
		}
		if p.ID == "" || cat.FindPalette(p.ID) != nil {
			p.ID = id.Generate()
		}
		if p.Slug == "" {
			p.Slug = uniqueSlug(cat, p.Name)
		}
		p.Catalog = catalogName
		cat.AddPalette(p)
		result.Added = append(result.Added, p.Name)
	}

	if len(result.Added) == 0 {
		return result, nil
	}
	if err := s.catalogStore.Save(cat); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *CatalogService) defaultCatalog() string {
	cfg, err := s.globalStore.Load()
	if err != nil {
		return model.DefaultCatalogName
	}
	return cfg.EffectiveDefaultCatalog()
}

// NormalizeColors trims hex strings, adds a missing leading '#' and
// lowercases them. Uppercasing happens only at display time.
func NormalizeColors(colors []string) []string {
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if !strings.HasPrefix(c, "#") {
			c = "#" + c
		}
		out = append(out, c)
	}
	return out
}

func hasPaletteNamedFold(cat *model.Catalog, name string) bool {
	for _, p := range cat.Palettes {
		if strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}

// uniqueSlug derives a slug from name, suffixing -2, -3, ... on collision.
func uniqueSlug(cat *model.Catalog, name string) string {
	base := util.Slugify(name)
	if base == "" {
		base = "palette"
	}
	taken := make(map[string]bool, len(cat.Palettes))
	for _, p := range cat.Palettes {
		taken[p.Slug] = true
	}
	if !taken[base] {
		return base
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", base, n)
		if !taken[candidate] {
			return candidate
		}
	}
}

// CreateCatalog creates an empty catalog.
func (s *CatalogService) CreateCatalog(name, description string) error {
	if util.Slugify(name) != name {
		return swerr.InvalidField("catalog name", fmt.Sprintf("must be lowercase alphanumeric with hyphens (try %q)", util.Slugify(name)))
	}
	return s.catalogStore.Create(&model.Catalog{Name: name, Description: description})
}
