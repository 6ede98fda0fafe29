package version

import (
	"fmt"
)

// SchemaVersionError indicates a schema version problem during file read/write.
type SchemaVersionError struct {
	FileType    string // "catalog", "global config"
	FilePath    string // Path to the problematic file
	Found       string // What was found (e.g., "missing", "catalog/2")
	Expected    string // What was expected (e.g., "catalog/1")
	MinRequired string // Minimum swatch version required (if upgrade needed)
}

func (e *SchemaVersionError) Error() string {
	if e.MinRequired != "" {
		return fmt.Sprintf(
			"%s schema version %s requires swatch >= %s (file: %s, found: %s, supports up to: %s)",
			e.FileType, e.Found, e.MinRequired, e.FilePath, e.Found, e.Expected,
		)
	}
	if e.Found == "missing" {
		return fmt.Sprintf(
			"%s has no schema version (file: %s). Add swatch_schema = %q or run 'swatch doctor'.",
			e.FileType, e.FilePath, e.Expected,
		)
	}
	return fmt.Sprintf(
		"%s has invalid schema version: found %s, expected %s (file: %s)",
		e.FileType, e.Found, e.Expected, e.FilePath,
	)
}

// MissingCatalogSchema creates an error for a catalog missing swatch_schema.
func MissingCatalogSchema(path string) error {
	return &SchemaVersionError{
		FileType: "catalog",
		FilePath: path,
		Found:    "missing",
		Expected: CurrentCatalogSchema(),
	}
}

// InvalidCatalogSchema creates an error for a catalog with an unsupported schema.
func InvalidCatalogSchema(path, found string) error {
	e := &SchemaVersionError{
		FileType: "catalog",
		FilePath: path,
		Found:    found,
		Expected: CurrentCatalogSchema(),
	}
	if v, err := ParseCatalogVersion(found); err == nil && v > CurrentCatalogVersion {
		e.MinRequired = minRequired(found)
	}
	return e
}

// MissingGlobalSchema creates an error for a global config missing swatch_schema.
func MissingGlobalSchema(path string) error {
	return &SchemaVersionError{
		FileType: "global config",
		FilePath: path,
		Found:    "missing",
		Expected: CurrentGlobalSchema(),
	}
}

// InvalidGlobalSchema creates an error for a global config with unsupported schema.
func InvalidGlobalSchema(path, found string) error {
	e := &SchemaVersionError{
		FileType: "global config",
		FilePath: path,
		Found:    found,
		Expected: CurrentGlobalSchema(),
	}
	if v, err := ParseGlobalVersion(found); err == nil && v > CurrentGlobalVersion {
		e.MinRequired = minRequired(found)
	}
	return e
}

func minRequired(schema string) string {
	if minSwatch, ok := MinSwatchVersion[schema]; ok {
		return minSwatch
	}
	return "a newer version"
}
