package service

import (
	"os"
	"path/filepath"
	"testing"

	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/testutil"
)

func newTestCatalogService(catalogs ...*model.Catalog) (*CatalogService, *testutil.MemCatalogStore) {
	cs := testutil.NewMemCatalogStore(catalogs...)
	return NewCatalogService(cs, &testutil.MemGlobalStore{}), cs
}

func TestCatalogService_LoadAll_CatalogThenFileOrder(t *testing.T) {
	svc, _ := newTestCatalogService(
		testutil.TestCatalog("warm", testutil.TestPalette("Ember"), testutil.TestPalette("Apricot")),
		testutil.TestCatalog("cool", testutil.TestPalette("Glacier")),
	)

	palettes, err := svc.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	want := []string{"Glacier", "Ember", "Apricot"}
	if len(palettes) != len(want) {
		t.Fatalf("Expected %d palettes, got %d", len(want), len(palettes))
	}
	for i, name := range want {
		if palettes[i].Name != name {
			t.Errorf("palettes[%d] = %q, want %q", i, palettes[i].Name, name)
		}
	}
	if palettes[0].Catalog != "cool" {
		t.Errorf("Expected palette stamped with catalog 'cool', got %q", palettes[0].Catalog)
	}
}

func TestCatalogService_List(t *testing.T) {
	svc, _ := newTestCatalogService(
		testutil.TestCatalog("warm", testutil.TestPalette("Ember"), testutil.TestPalette("Apricot")),
	)

	summaries, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Palettes != 2 {
		t.Errorf("Unexpected summaries: %+v", summaries)
	}
}

func TestCatalogService_AddPalette(t *testing.T) {
	svc, cs := newTestCatalogService()

	p, err := svc.AddPalette(AddPaletteInput{
		Name:      "Harbor Lights",
		Colors:    []string{"FFAA00", " #0a0B0c "},
		Favorites: 2,
	})
	if err != nil {
		t.Fatalf("AddPalette failed: %v", err)
	}

	if p.ID == "" {
		t.Error("Expected an ID to be assigned")
	}
	if p.Slug != "harbor-lights" {
		t.Errorf("Expected slug 'harbor-lights', got %q", p.Slug)
	}
	if p.Colors[0] != "#ffaa00" || p.Colors[1] != "#0a0b0c" {
		t.Errorf("Expected normalized colors, got %v", p.Colors)
	}

	cat, ok := cs.Catalogs[model.DefaultCatalogName]
	if !ok {
		t.Fatal("Expected default catalog to be created")
	}
	if len(cat.Palettes) != 1 {
		t.Errorf("Expected 1 palette, got %d", len(cat.Palettes))
	}
}

func TestCatalogService_AddPalette_UsesConfiguredDefault(t *testing.T) {
	cs := testutil.NewMemCatalogStore()
	gs := &testutil.MemGlobalStore{Config: &model.GlobalConfig{DefaultCatalog: "mine"}}
	svc := NewCatalogService(cs, gs)

	if _, err := svc.AddPalette(AddPaletteInput{Name: "Mine", Colors: []string{"#000"}}); err != nil {
		t.Fatalf("AddPalette failed: %v", err)
	}
	if !cs.Exists("mine") {
		t.Error("Expected palette to land in configured default catalog")
	}
}

func TestCatalogService_AddPalette_Duplicate(t *testing.T) {
	svc, _ := newTestCatalogService(testutil.TestCatalog("warm", testutil.TestPalette("Ember")))

	_, err := svc.AddPalette(AddPaletteInput{Catalog: "warm", Name: "ember", Colors: []string{"#fff"}})
	if !swerr.IsAlreadyExists(err) {
		t.Errorf("Expected AlreadyExists error, got %v", err)
	}
}

func TestCatalogService_AddPalette_Invalid(t *testing.T) {
	svc, cs := newTestCatalogService()

	tests := []struct {
		name  string
		input AddPaletteInput
	}{
		{"empty name", AddPaletteInput{Name: "  ", Colors: []string{"#fff"}}},
		{"no colors", AddPaletteInput{Name: "Blank"}},
		{"bad color", AddPaletteInput{Name: "Bad", Colors: []string{"#zzzzzz"}}},
		{"favorites", AddPaletteInput{Name: "Loved", Colors: []string{"#fff"}, Favorites: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddPalette(tt.input)
			if !swerr.IsValidationError(err) {
				t.Errorf("Expected validation error, got %v", err)
			}
		})
	}

	if len(cs.Catalogs) != 0 {
		t.Error("Invalid palettes must not create catalogs")
	}
}

func TestCatalogService_AddPalette_UniqueSlug(t *testing.T) {
	existing := testutil.TestPalette("Ember")
	existing.Name = "Ember Old"
	existing.Slug = "ember"
	svc, _ := newTestCatalogService(testutil.TestCatalog("warm", existing))

	p, err := svc.AddPalette(AddPaletteInput{Catalog: "warm", Name: "Ember", Colors: []string{"#f00"}})
	if err != nil {
		t.Fatalf("AddPalette failed: %v", err)
	}
	if p.Slug != "ember-2" {
		t.Errorf("Expected slug 'ember-2', got %q", p.Slug)
	}
}

func TestCatalogService_RemovePalette(t *testing.T) {
	ember := testutil.TestPalette("Ember")
	svc, cs := newTestCatalogService(testutil.TestCatalog("warm", ember))

	if err := svc.RemovePalette("warm", ember.ID); err != nil {
		t.Fatalf("RemovePalette failed: %v", err)
	}
	if len(cs.Catalogs["warm"].Palettes) != 0 {
		t.Error("Expected palette to be removed")
	}

	if err := svc.RemovePalette("warm", ember.ID); !swerr.IsNotFound(err) {
		t.Errorf("Expected NotFound on second removal, got %v", err)
	}
}

func TestCatalogService_Import(t *testing.T) {
	svc, cs := newTestCatalogService(testutil.TestCatalog("warm", testutil.TestPalette("Ember")))

	src := filepath.Join(t.TempDir(), "incoming.yaml")
	content := `name: ignored
palettes:
  - name: Ember
    colors: ["#ff0000"]
  - name: Lagoon
    favorites: 4
    colors: ["00ffcc", "#003344"]
`
	if err := os.WriteFile(src, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := svc.Import(src, "warm")
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if len(result.Added) != 1 || result.Added[0] != "Lagoon" {
		t.Errorf("Expected Lagoon added, got %v", result.Added)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != "Ember" {
		t.Errorf("Expected Ember skipped, got %v", result.Skipped)
	}

	cat := cs.Catalogs["warm"]
	lagoon := cat.Palettes[1]
	if lagoon.ID == "" || lagoon.Slug != "lagoon" {
		t.Errorf("Expected imported palette to get ID and slug, got %+v", lagoon)
	}
	if lagoon.Colors[0] != "#00ffcc" {
		t.Errorf("Expected normalized color, got %q", lagoon.Colors[0])
	}
}

func TestCatalogService_Import_RejectsInvalid(t *testing.T) {
	svc, cs := newTestCatalogService()

	src := filepath.Join(t.TempDir(), "bad.toml")
	content := `[[palettes]]
name = "Good"
colors = ["#fff"]

[[palettes]]
name = "Bad"
colors = ["nope"]
`
	if err := os.WriteFile(src, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Import(src, "target"); !swerr.IsValidationError(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
	if cs.Exists("target") {
		t.Error("Nothing should be written when a palette is invalid")
	}
}

func TestCatalogService_CreateCatalog(t *testing.T) {
	svc, cs := newTestCatalogService()

	if err := svc.CreateCatalog("brand-colors", "Company palette"); err != nil {
		t.Fatalf("CreateCatalog failed: %v", err)
	}
	if !cs.Exists("brand-colors") {
		t.Error("Expected catalog to exist")
	}

	if err := svc.CreateCatalog("brand-colors", ""); !swerr.IsAlreadyExists(err) {
		t.Errorf("Expected AlreadyExists, got %v", err)
	}
	if err := svc.CreateCatalog("Brand Colors", ""); !swerr.IsValidationError(err) {
		t.Errorf("Expected validation error for non-slug name, got %v", err)
	}
}
