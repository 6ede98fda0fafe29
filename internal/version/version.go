package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current schema versions - bump these when making breaking changes.
//
// CHECKLIST when bumping a version:
//  1. Update the constant below
//  2. Add entry to MinSwatchVersion map (tested by TestMinSwatchVersionCompleteness)
//  3. Teach the doctor service about the old shape
const (
	CurrentCatalogVersion = 1
	CurrentGlobalVersion  = 1
)

// Schema type prefixes for config files.
const (
	CatalogSchemaPrefix = "catalog/"
	GlobalSchemaPrefix  = "global/"
)

// MinSwatchVersion maps schema identifiers to the minimum swatch version required.
// Used to provide helpful upgrade messages when encountering newer schemas.
var MinSwatchVersion = map[string]string{
	"catalog/1": "0.1.0",
	"global/1":  "0.1.0",
}

// FormatCatalogSchema creates a catalog schema string from a version number.
// Example: FormatCatalogSchema(1) returns "catalog/1"
func FormatCatalogSchema(v int) string {
	return fmt.Sprintf("%s%d", CatalogSchemaPrefix, v)
}

// FormatGlobalSchema creates a global schema string from a version number.
// Example: FormatGlobalSchema(1) returns "global/1"
func FormatGlobalSchema(v int) string {
	return fmt.Sprintf("%s%d", GlobalSchemaPrefix, v)
}

// ParseCatalogVersion extracts the version number from a catalog schema string.
func ParseCatalogVersion(schema string) (int, error) {
	return parseSchemaVersion(schema, CatalogSchemaPrefix, "catalog")
}

// ParseGlobalVersion extracts the version number from a global schema string.
func ParseGlobalVersion(schema string) (int, error) {
	return parseSchemaVersion(schema, GlobalSchemaPrefix, "global")
}

func parseSchemaVersion(schema, prefix, schemaType string) (int, error) {
	if !strings.HasPrefix(schema, prefix) {
		return 0, fmt.Errorf("invalid %s schema format: %q (expected %sN)", schemaType, schema, prefix)
	}
	versionStr := strings.TrimPrefix(schema, prefix)
	v, err := strconv.Atoi(versionStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s schema version: %q", schemaType, versionStr)
	}
	if v < 1 {
		return 0, fmt.Errorf("invalid %s schema version: %d (must be >= 1)", schemaType, v)
	}
	return v, nil
}

// CurrentCatalogSchema returns the current catalog schema string.
func CurrentCatalogSchema() string {
	return FormatCatalogSchema(CurrentCatalogVersion)
}

// CurrentGlobalSchema returns the current global schema string.
func CurrentGlobalSchema() string {
	return FormatGlobalSchema(CurrentGlobalVersion)
}
