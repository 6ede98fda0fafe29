package testutil

import (
	"sort"
	"testing"

	"github.com/amterp/swatch/internal/config"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/util"
	"github.com/amterp/swatch/internal/version"
)

// TestPalette returns a palette with sensible test defaults.
// The ID is derived from the name so lookups stay predictable.
func TestPalette(name string, colors ...string) *model.Palette {
	if len(colors) == 0 {
		colors = []string{"#112233", "#445566", "#778899"}
	}
	slug := util.Slugify(name)
	return &model.Palette{
		ID:        "id-" + slug,
		Slug:      slug,
		Name:      name,
		Favorites: 3,
		Colors:    colors,
	}
}

// TestCatalog returns a stamped catalog holding the given palettes.
func TestCatalog(name string, palettes ...*model.Palette) *model.Catalog {
	cat := &model.Catalog{
		SwatchSchema: version.CurrentCatalogSchema(),
		Name:         name,
		Palettes:     palettes,
	}
	cat.StampCatalog()
	return cat
}

// NewTestPaths creates a Paths rooted in a fresh temp directory.
func NewTestPaths(t *testing.T) *config.Paths {
	t.Helper()
	return config.NewPaths(t.TempDir())
}

// MemCatalogStore is an in-memory store.CatalogStore.
type MemCatalogStore struct {
	Catalogs map[string]*model.Catalog
	SaveErr  error // Returned by Save when set
}

// NewMemCatalogStore creates a store seeded with the given catalogs.
func NewMemCatalogStore(catalogs ...*model.Catalog) *MemCatalogStore {
	s := &MemCatalogStore{Catalogs: make(map[string]*model.Catalog)}
	for _, c := range catalogs {
		s.Catalogs[c.Name] = c
	}
	return s
}

func (s *MemCatalogStore) Create(cat *model.Catalog) error {
	if _, ok := s.Catalogs[cat.Name]; ok {
		return swerr.CatalogAlreadyExists(cat.Name)
	}
	return s.Save(cat)
}

func (s *MemCatalogStore) Get(name string) (*model.Catalog, error) {
	cat, ok := s.Catalogs[name]
	if !ok {
		return nil, swerr.CatalogNotFound(name)
	}
	cat.StampCatalog()
	return cat, nil
}

func (s *MemCatalogStore) Save(cat *model.Catalog) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	cat.SwatchSchema = version.CurrentCatalogSchema()
	s.Catalogs[cat.Name] = cat
	return nil
}

func (s *MemCatalogStore) Delete(name string) error {
	if _, ok := s.Catalogs[name]; !ok {
		return swerr.CatalogNotFound(name)
	}
	delete(s.Catalogs, name)
	return nil
}

func (s *MemCatalogStore) List() ([]string, error) {
	names := []string{}
	for name := range s.Catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemCatalogStore) Exists(name string) bool {
	_, ok := s.Catalogs[name]
	return ok
}

func (s *MemCatalogStore) Path(name string) string {
	return "/mem/" + name + config.CatalogExt
}

// MemGlobalStore is an in-memory store.GlobalStore.
type MemGlobalStore struct {
	Config *model.GlobalConfig
}

func (s *MemGlobalStore) Load() (*model.GlobalConfig, error) {
	if s.Config == nil {
		return &model.GlobalConfig{}, nil
	}
	return s.Config, nil
}

func (s *MemGlobalStore) Save(cfg *model.GlobalConfig) error {
	cfg.SwatchSchema = version.CurrentGlobalSchema()
	s.Config = cfg
	return nil
}

func (s *MemGlobalStore) EnsureExists() error {
	if s.Config == nil {
		return s.Save(&model.GlobalConfig{})
	}
	return nil
}

// FakeClipboard records what was written to it.
type FakeClipboard struct {
	Text   string
	Writes int
	Err    error
}

func (c *FakeClipboard) WriteAll(text string) error {
	if c.Err != nil {
		return c.Err
	}
	c.Text = text
	c.Writes++
	return nil
}
