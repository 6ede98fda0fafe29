package service

import (
	"encoding/json"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/version"
)

// writeCatalogTOML writes a catalog to an arbitrary TOML file.
func writeCatalogTOML(path string, cat *model.Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cat.SwatchSchema = version.CurrentCatalogSchema()
	encoder := toml.NewEncoder(f)
	return encoder.Encode(cat)
}

// writeJSON writes a value to an indented JSON file.
func writeJSON(path string, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(output, '\n'), 0644)
}
