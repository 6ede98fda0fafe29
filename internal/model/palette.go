package model

import (
	"fmt"
	"strings"
)

const (
	// MaxFavorites is the top of the favorites rating scale.
	MaxFavorites = 5
	// MaxSwatches is how many colors of a palette are shown at once.
	MaxSwatches = 5
)

// Palette is a named, ordered set of colors with a favorites rating.
// Palettes are immutable once loaded; the owning catalog hands out pointers
// that must not be mutated.
type Palette struct {
	ID        string   `toml:"id" yaml:"id" json:"id"`
	Slug      string   `toml:"slug" yaml:"slug" json:"slug"`
	Name      string   `toml:"name" yaml:"name" json:"name"`
	Favorites int      `toml:"favorites" yaml:"favorites" json:"favorites"`
	Colors    []string `toml:"colors" yaml:"colors" json:"colors"`
	Tags      []string `toml:"tags,omitempty" yaml:"tags,omitempty" json:"tags,omitempty"`

	// Catalog is the name of the catalog the palette was loaded from.
	// Populated by the service layer, not persisted.
	Catalog string `toml:"-" yaml:"-" json:"catalog,omitempty"`
}

// Swatches returns the colors shown for the palette, capped at MaxSwatches.
func (p *Palette) Swatches() []string {
	if len(p.Colors) <= MaxSwatches {
		return p.Colors
	}
	return p.Colors[:MaxSwatches]
}

// Color returns the color at index i, or false if out of range.
func (p *Palette) Color(i int) (string, bool) {
	if i < 0 || i >= len(p.Colors) {
		return "", false
	}
	return p.Colors[i], true
}

// Validate checks the palette for structural problems.
// Returns one message per problem, nil if the palette is valid.
func (p *Palette) Validate() []string {
	var problems []string
	if strings.TrimSpace(p.Name) == "" {
		problems = append(problems, "name is empty")
	}
	if p.Favorites < 0 || p.Favorites > MaxFavorites {
		problems = append(problems, fmt.Sprintf("favorites %d out of range 0-%d", p.Favorites, MaxFavorites))
	}
	if len(p.Colors) == 0 {
		problems = append(problems, "no colors")
	}
	for i, c := range p.Colors {
		if _, err := ParseHex(c); err != nil {
			problems = append(problems, fmt.Sprintf("color %d: %v", i+1, err))
		}
	}
	return problems
}

// Stars renders a favorites count as five filled or empty stars.
func Stars(favorites int) string {
	var b strings.Builder
	for i := 0; i < MaxFavorites; i++ {
		if i < favorites {
			b.WriteString("★")
		} else {
			b.WriteString("☆")
		}
	}
	return b.String()
}

// DisplayHex returns a hex color as shown to users: uppercased, with a
// leading '#'. Storage and matching always use the original string.
func DisplayHex(hex string) string {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	return strings.ToUpper(hex)
}
