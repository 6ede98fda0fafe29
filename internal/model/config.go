package model

// DefaultPageSize is the number of palettes per page when nothing else is configured.
const DefaultPageSize = 5

// DefaultServePort is the first port `swatch serve` tries.
const DefaultServePort = 7341

// GlobalConfig represents the user's swatch configuration.
// Stored at <data dir>/config.toml (default ~/.config/swatch/config.toml).
// Schema changes require a version bump—see internal/version/version.go.
type GlobalConfig struct {
	SwatchSchema   string `toml:"swatch_schema"`
	PageSize       int    `toml:"page_size,omitempty"`
	DefaultCatalog string `toml:"default_catalog,omitempty"`
	Editor         string `toml:"editor,omitempty"`
	ServePort      int    `toml:"serve_port,omitempty"`
}

// EffectivePageSize returns the configured page size, or the default.
func (g *GlobalConfig) EffectivePageSize() int {
	if g == nil || g.PageSize <= 0 {
		return DefaultPageSize
	}
	return g.PageSize
}

// EffectiveDefaultCatalog returns the catalog new palettes go to.
func (g *GlobalConfig) EffectiveDefaultCatalog() string {
	if g == nil || g.DefaultCatalog == "" {
		return DefaultCatalogName
	}
	return g.DefaultCatalog
}

// EffectiveServePort returns the configured server port, or the default.
func (g *GlobalConfig) EffectiveServePort() int {
	if g == nil || g.ServePort <= 0 {
		return DefaultServePort
	}
	return g.ServePort
}
