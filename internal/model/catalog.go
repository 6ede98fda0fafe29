package model

// Catalog is a named collection of palettes.
// Stored as catalogs/<name>.toml in the data directory.
// Schema changes require a version bump—see internal/version/version.go.
type Catalog struct {
	SwatchSchema string     `toml:"swatch_schema" yaml:"swatch_schema" json:"swatch_schema"`
	Name         string     `toml:"name" yaml:"name" json:"name"`
	Description  string     `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	Palettes     []*Palette `toml:"palettes" yaml:"palettes" json:"palettes"`
}

// FindPalette returns the palette with the given ID, or nil.
func (c *Catalog) FindPalette(id string) *Palette {
	for _, p := range c.Palettes {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// HasPaletteNamed reports whether a palette with the exact name exists.
func (c *Catalog) HasPaletteNamed(name string) bool {
	for _, p := range c.Palettes {
		if p.Name == name {
			return true
		}
	}
	return false
}

// AddPalette appends a palette to the catalog.
func (c *Catalog) AddPalette(p *Palette) {
	c.Palettes = append(c.Palettes, p)
}

// RemovePalette removes the palette with the given ID.
// Returns false if it wasn't present.
func (c *Catalog) RemovePalette(id string) bool {
	for i, p := range c.Palettes {
		if p.ID == id {
			c.Palettes = append(c.Palettes[:i], c.Palettes[i+1:]...)
			return true
		}
	}
	return false
}

// StampCatalog sets the Catalog field on every palette to the catalog name.
func (c *Catalog) StampCatalog() {
	for _, p := range c.Palettes {
		p.Catalog = c.Name
	}
}
