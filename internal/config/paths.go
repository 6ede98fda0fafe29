package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultDataDir = ".config/swatch"
	CatalogsDir    = "catalogs"
	ConfigFileName = "config.toml"
	LogsDir        = "logs"
	CatalogExt     = ".toml"
	LocalDataDir   = ".swatch"
)

// CatalogExts lists the file extensions recognized as catalogs, in lookup order.
var CatalogExts = []string{".toml", ".yaml", ".yml"}

// Paths provides path resolution for swatch data files.
type Paths struct {
	root string
}

// NewPaths creates a new Paths resolver rooted at the given data directory.
// An empty root resolves to ~/.config/swatch.
func NewPaths(root string) *Paths {
	if root == "" {
		root = DefaultDataRoot()
	}
	return &Paths{root: root}
}

// Root returns the data directory.
func (p *Paths) Root() string {
	return p.root
}

// ConfigPath returns the path to the global config file.
func (p *Paths) ConfigPath() string {
	return filepath.Join(p.root, ConfigFileName)
}

// CatalogsRoot returns the catalogs directory.
func (p *Paths) CatalogsRoot() string {
	return filepath.Join(p.root, CatalogsDir)
}

// CatalogPath returns the canonical (TOML) file path for a catalog.
func (p *Paths) CatalogPath(name string) string {
	return filepath.Join(p.CatalogsRoot(), name+CatalogExt)
}

// CatalogPathWithExt returns the catalog file path for a specific extension.
func (p *Paths) CatalogPathWithExt(name, ext string) string {
	return filepath.Join(p.CatalogsRoot(), name+ext)
}

// LogsRoot returns the directory debug logs are written to.
func (p *Paths) LogsRoot() string {
	return filepath.Join(p.root, LogsDir)
}

// CatalogName returns the catalog name for a file name, or false if the
// file isn't a catalog.
func CatalogName(fileName string) (string, bool) {
	base := filepath.Base(fileName)
	if strings.HasPrefix(base, ".") {
		return "", false
	}
	ext := filepath.Ext(base)
	for _, known := range CatalogExts {
		if ext == known {
			return strings.TrimSuffix(base, ext), true
		}
	}
	return "", false
}

// DefaultDataRoot returns ~/.config/swatch, or "" if the home dir is unknown.
func DefaultDataRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultDataDir)
}
