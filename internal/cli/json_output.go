package cli

import (
	"encoding/json"
	"fmt"

	"github.com/amterp/swatch/internal/browse"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/service"
)

// paletteJson represents a palette for JSON output.
// Adds display-only fields that model.Palette doesn't store.
//
// SYNC WARNING: This struct must stay in sync with model.Palette fields.
// If you add fields to model.Palette, add them here too. See TestPaletteJsonFieldSync.
type paletteJson struct {
	ID        string   `json:"id"`
	Slug      string   `json:"slug"`
	Name      string   `json:"name"`
	Catalog   string   `json:"catalog,omitempty"`
	Favorites int      `json:"favorites"`
	Stars     string   `json:"stars"`
	Colors    []string `json:"colors"`
	Display   []string `json:"display"` // Uppercased #RRGGBB[AA], one per color
	Tags      []string `json:"tags,omitempty"`
}

func paletteToJson(p *model.Palette) paletteJson {
	display := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		display[i] = model.DisplayHex(c)
	}
	colors := p.Colors
	if colors == nil {
		colors = []string{}
	}
	return paletteJson{
		ID:        p.ID,
		Slug:      p.Slug,
		Name:      p.Name,
		Catalog:   p.Catalog,
		Favorites: p.Favorites,
		Stars:     model.Stars(p.Favorites),
		Colors:    colors,
		Display:   display,
		Tags:      p.Tags,
	}
}

func palettesToJson(palettes []*model.Palette) []paletteJson {
	result := make([]paletteJson, 0, len(palettes))
	for _, p := range palettes {
		result = append(result, paletteToJson(p))
	}
	return result
}

// PaletteOutput wraps a single palette for JSON output.
type PaletteOutput struct {
	Palette paletteJson `json:"palette"`
}

// NewPaletteOutput creates a PaletteOutput from a model.Palette.
func NewPaletteOutput(p *model.Palette) PaletteOutput {
	return PaletteOutput{Palette: paletteToJson(p)}
}

// SearchOutput wraps one page of search results for JSON output.
// Page is 1-based here, matching the --page flag.
type SearchOutput struct {
	Query    string        `json:"query"`
	Page     int           `json:"page"`
	Pages    int           `json:"pages"`
	PageSize int           `json:"page_size"`
	Matches  int           `json:"matches"`
	Total    int           `json:"total"`
	Palettes []paletteJson `json:"palettes"`
}

// NewSearchOutput creates a SearchOutput from a browser view.
func NewSearchOutput(v browse.View) SearchOutput {
	return SearchOutput{
		Query:    v.Query,
		Page:     v.Page + 1,
		Pages:    v.Pages,
		PageSize: v.PageSize,
		Matches:  v.Matches,
		Total:    v.Total,
		Palettes: palettesToJson(v.Palettes),
	}
}

// CatalogsOutput wraps the catalog list for JSON output.
// Always returns an empty array (not null) when there are no catalogs.
type CatalogsOutput struct {
	Catalogs []service.CatalogSummary `json:"catalogs"`
}

// NewCatalogsOutput creates a CatalogsOutput.
func NewCatalogsOutput(catalogs []service.CatalogSummary) CatalogsOutput {
	if catalogs == nil {
		catalogs = []service.CatalogSummary{}
	}
	return CatalogsOutput{Catalogs: catalogs}
}

// CopyOutput reports what was copied to the clipboard.
type CopyOutput struct {
	Palette string `json:"palette"`
	Index   int    `json:"index,omitempty"` // 1-based; omitted with --all
	Copied  string `json:"copied"`
}

// ImportOutput wraps an import result for JSON output.
type ImportOutput struct {
	Import *service.ImportResult `json:"import"`
}

// ExportOutput reports where a palette was written.
type ExportOutput struct {
	Palette string `json:"palette"`
	Path    string `json:"path"`
}

// printJson marshals the value as indented JSON and prints it to stdout.
func printJson(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

// warnJsonNotSupported prints a warning to stderr when --json is used on an unsupported command.
func warnJsonNotSupported(command string) {
	PrintWarning("--json is not supported for '%s' (flag ignored)", command)
}
