package model

// DefaultCatalogName is the catalog created by `swatch init`.
const DefaultCatalogName = "starter"

// DefaultPalettes returns the palettes written to the starter catalog.
// IDs and slugs are assigned when the catalog is created.
func DefaultPalettes() []*Palette {
	return []*Palette{
		{Name: "Sunset Boulevard", Favorites: 5, Colors: []string{"#ff7e5f", "#feb47b", "#ffcc80", "#d4596a", "#6a2c70"}},
		{Name: "Deep Ocean", Favorites: 4, Colors: []string{"#03045e", "#0077b6", "#00b4d8", "#90e0ef", "#caf0f8"}},
		{Name: "Forest Floor", Favorites: 3, Colors: []string{"#2d6a4f", "#40916c", "#52b788", "#95d5b2", "#d8f3dc"}},
		{Name: "Desert Sand", Favorites: 2, Colors: []string{"#edc9af", "#d4a373", "#ccd5ae", "#e9edc9", "#fefae0"}},
		{Name: "Neon Nights", Favorites: 4, Colors: []string{"#f72585", "#7209b7", "#3a0ca3", "#4361ee", "#4cc9f0"}},
		{Name: "Autumn Leaves", Favorites: 3, Colors: []string{"#9c6644", "#b08968", "#ddb892", "#e6ccb2", "#ede0d4"}},
		{Name: "Pastel Dream", Favorites: 5, Colors: []string{"#ffadad", "#ffd6a5", "#fdffb6", "#caffbf", "#9bf6ff", "#a0c4ff", "#bdb2ff"}},
		{Name: "Monochrome", Favorites: 1, Colors: []string{"#000000", "#333333", "#666666", "#999999", "#cccccc", "#ffffff"}},
		{Name: "Retro Arcade", Favorites: 4, Colors: []string{"#ff006e", "#fb5607", "#ffbe0b", "#8338ec", "#3a86ff"}},
		{Name: "Nordic Frost", Favorites: 3, Colors: []string{"#2e3440", "#3b4252", "#88c0d0", "#81a1c1", "#eceff4"}},
		{Name: "Coffee House", Favorites: 2, Colors: []string{"#3e2723", "#5d4037", "#8d6e63", "#bcaaa4", "#efebe9"}},
		{Name: "Glass Overlay", Favorites: 0, Colors: []string{"#ffffff80", "#00000040", "#3a86ff99", "#ff006e66"}},
	}
}
