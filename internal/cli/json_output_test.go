package cli

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/amterp/swatch/internal/browse"
	"github.com/amterp/swatch/internal/model"
)

// TestPaletteJsonFieldSync ensures paletteJson stays in sync with model.Palette.
// If this test fails, you probably added a field to model.Palette but forgot
// to add it to paletteJson in json_output.go.
func TestPaletteJsonFieldSync(t *testing.T) {
	paletteType := reflect.TypeOf(model.Palette{})
	jsonType := reflect.TypeOf(paletteJson{})

	// Fields that exist in paletteJson but not in model.Palette
	jsonOnly := map[string]bool{
		"Stars":   true,
		"Display": true,
	}

	for i := 0; i < paletteType.NumField(); i++ {
		field := paletteType.Field(i)
		jsonField, found := jsonType.FieldByName(field.Name)
		if !found {
			t.Errorf("model.Palette has field %q but paletteJson does not. "+
				"Add it to paletteJson and paletteToJson().", field.Name)
			continue
		}
		if field.Type != jsonField.Type {
			t.Errorf("Field %q has type %v in model.Palette but %v in paletteJson",
				field.Name, field.Type, jsonField.Type)
		}
	}

	for i := 0; i < jsonType.NumField(); i++ {
		field := jsonType.Field(i)
		if jsonOnly[field.Name] {
			continue
		}
		if _, found := paletteType.FieldByName(field.Name); !found {
			t.Errorf("paletteJson has field %q that doesn't exist in model.Palette. "+
				"If this is intentional, add it to the jsonOnly map.", field.Name)
		}
	}
}

func TestPaletteToJson_DisplayIsUppercaseOnly(t *testing.T) {
	p := &model.Palette{ID: "x", Name: "Ember", Favorites: 2, Colors: []string{"#ff4400", "aabbcc80"}}

	out := paletteToJson(p)

	if out.Colors[0] != "#ff4400" {
		t.Errorf("Stored color must be untouched, got %q", out.Colors[0])
	}
	if out.Display[0] != "#FF4400" || out.Display[1] != "#AABBCC80" {
		t.Errorf("Unexpected display colors %v", out.Display)
	}
	if out.Stars != "★★☆☆☆" {
		t.Errorf("Unexpected stars %q", out.Stars)
	}
}

func TestNewSearchOutput_OneBasedPage(t *testing.T) {
	var palettes []*model.Palette
	for i := 0; i < 7; i++ {
		palettes = append(palettes, &model.Palette{Name: "p", Colors: []string{"#000"}})
	}
	b := browse.New(palettes, 5)
	b.Next()

	out := NewSearchOutput(b.Snapshot())
	if out.Page != 2 || out.Pages != 2 {
		t.Errorf("Expected page 2 of 2, got %d of %d", out.Page, out.Pages)
	}
	if len(out.Palettes) != 2 {
		t.Errorf("Expected 2 palettes on last page, got %d", len(out.Palettes))
	}
}

func TestNewCatalogsOutput_EmptyArray(t *testing.T) {
	data, err := json.Marshal(NewCatalogsOutput(nil))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"catalogs":[]`) {
		t.Errorf("Expected empty array, got %s", data)
	}
}
