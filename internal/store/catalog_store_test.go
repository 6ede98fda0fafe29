package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/amterp/swatch/internal/config"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/version"
)

func setupTestCatalogStore(t *testing.T) (*FileCatalogStore, *config.Paths) {
	t.Helper()
	paths := config.NewPaths(t.TempDir())
	return NewCatalogStore(paths), paths
}

func testCatalog(name string) *model.Catalog {
	return &model.Catalog{
		Name: name,
		Palettes: []*model.Palette{
			{ID: "p1", Slug: "sunset", Name: "Sunset", Favorites: 4, Colors: []string{"#ff7e5f", "#feb47b"}},
			{ID: "p2", Slug: "ocean", Name: "Ocean", Favorites: 2, Colors: []string{"#03045e"}, Tags: []string{"blue"}},
		},
	}
}

func TestFileCatalogStore_CreateAndGet(t *testing.T) {
	store, _ := setupTestCatalogStore(t)

	if err := store.Create(testCatalog("starter")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	cat, err := store.Get("starter")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if cat.SwatchSchema != version.CurrentCatalogSchema() {
		t.Errorf("Expected schema stamp %q, got %q", version.CurrentCatalogSchema(), cat.SwatchSchema)
	}
	if len(cat.Palettes) != 2 {
		t.Fatalf("Expected 2 palettes, got %d", len(cat.Palettes))
	}
	p := cat.Palettes[0]
	if p.Name != "Sunset" || p.Favorites != 4 || len(p.Colors) != 2 {
		t.Errorf("Palette not round-tripped: %+v", p)
	}
	if p.Catalog != "starter" {
		t.Errorf("Expected catalog stamp 'starter', got %q", p.Catalog)
	}
	if got := cat.Palettes[1].Tags; len(got) != 1 || got[0] != "blue" {
		t.Errorf("Tags not round-tripped: %v", got)
	}
}

func TestFileCatalogStore_CreateDuplicate(t *testing.T) {
	store, _ := setupTestCatalogStore(t)

	if err := store.Create(testCatalog("starter")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	err := store.Create(testCatalog("starter"))
	if !swerr.IsAlreadyExists(err) {
		t.Errorf("Expected AlreadyExists error, got %v", err)
	}
}

func TestFileCatalogStore_GetNotFound(t *testing.T) {
	store, _ := setupTestCatalogStore(t)

	_, err := store.Get("missing")
	if !swerr.IsNotFound(err) {
		t.Errorf("Expected NotFound error, got %v", err)
	}
}

func TestFileCatalogStore_GetMissingSchema(t *testing.T) {
	store, paths := setupTestCatalogStore(t)

	if err := os.MkdirAll(paths.CatalogsRoot(), 0755); err != nil {
		t.Fatal(err)
	}
	content := "name = \"legacy\"\n\n[[palettes]]\nname = \"Old\"\ncolors = [\"#000000\"]\n"
	if err := os.WriteFile(paths.CatalogPath("legacy"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := store.Get("legacy")
	var schemaErr *version.SchemaVersionError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Expected SchemaVersionError, got %v", err)
	}
	if schemaErr.Found != "missing" {
		t.Errorf("Expected Found=missing, got %q", schemaErr.Found)
	}
}

func TestFileCatalogStore_ReadsYAML(t *testing.T) {
	store, paths := setupTestCatalogStore(t)

	if err := os.MkdirAll(paths.CatalogsRoot(), 0755); err != nil {
		t.Fatal(err)
	}
	content := `swatch_schema: catalog/1
name: ignored
palettes:
  - id: y1
    name: Lagoon
    favorites: 3
    colors: ["#00b4d8", "#90e0ef"]
`
	if err := os.WriteFile(paths.CatalogPathWithExt("lagoon", ".yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cat, err := store.Get("lagoon")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if cat.Name != "lagoon" {
		t.Errorf("Expected file name to win, got %q", cat.Name)
	}
	if len(cat.Palettes) != 1 || cat.Palettes[0].Name != "Lagoon" {
		t.Errorf("Unexpected palettes: %+v", cat.Palettes)
	}

	// Saving converts to TOML and removes the YAML file.
	if err := store.Save(cat); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(paths.CatalogPathWithExt("lagoon", ".yaml")); !os.IsNotExist(err) {
		t.Error("Expected YAML file to be replaced")
	}
	if got := store.Path("lagoon"); got != paths.CatalogPath("lagoon") {
		t.Errorf("Expected TOML path, got %q", got)
	}
}

func TestFileCatalogStore_ListAndDelete(t *testing.T) {
	store, paths := setupTestCatalogStore(t)

	names, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if names == nil || len(names) != 0 {
		t.Errorf("Expected empty non-nil list, got %v", names)
	}

	for _, name := range []string{"zeta", "alpha"} {
		if err := store.Create(testCatalog(name)); err != nil {
			t.Fatalf("Create %s failed: %v", name, err)
		}
	}
	// Stray files are ignored.
	os.WriteFile(filepath.Join(paths.CatalogsRoot(), "README.md"), []byte("hi"), 0644)

	names, err = store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("Expected [alpha zeta], got %v", names)
	}

	if err := store.Delete("alpha"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if store.Exists("alpha") {
		t.Error("Expected alpha to be gone")
	}
	if err := store.Delete("alpha"); !swerr.IsNotFound(err) {
		t.Errorf("Expected NotFound on second delete, got %v", err)
	}
}

func TestDecodeCatalog_UnsupportedExt(t *testing.T) {
	if _, err := DecodeCatalog([]byte("{}"), ".json"); err == nil {
		t.Error("Expected error for unsupported extension")
	}
}
