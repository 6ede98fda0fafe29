package service

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/id"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/store"
	"github.com/amterp/swatch/internal/util"
	"github.com/amterp/swatch/internal/version"
)

// IssueSeverity indicates how critical an issue is.
type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
)

// Issue codes for diagnostic results.
const (
	// Priority 1: Catalog integrity (errors)
	CodeMalformedCatalog   = "MALFORMED_CATALOG"
	CodeSchemaMismatch     = "SCHEMA_MISMATCH"
	CodeInvalidColor       = "INVALID_COLOR"
	CodeEmptyPalette       = "EMPTY_PALETTE"
	CodeEmptyName          = "EMPTY_NAME"
	CodeMissingPaletteID   = "MISSING_PALETTE_ID"
	CodeDuplicatePaletteID = "DUPLICATE_PALETTE_ID"

	// Priority 2: Data quality (warnings)
	CodeMissingSchema  = "MISSING_SCHEMA"
	CodeFavoritesRange = "FAVORITES_OUT_OF_RANGE"
	CodeMissingSlug    = "MISSING_SLUG"
	CodeDuplicateName  = "DUPLICATE_NAME"
	CodeTooManyColors  = "TOO_MANY_COLORS"

	// Priority 3: Global config (warnings)
	CodeMalformedGlobalConfig = "MALFORMED_GLOBAL_CONFIG"
	CodeGlobalSchemaOutdated  = "GLOBAL_SCHEMA_OUTDATED"
)

// Issue represents a single diagnostic finding.
type Issue struct {
	Severity   IssueSeverity     `json:"severity"`
	Code       string            `json:"code"`
	Catalog    string            `json:"catalog,omitempty"`
	Palette    string            `json:"palette,omitempty"`
	Message    string            `json:"message"`
	Fixable    bool              `json:"fixable"`
	FixAction  string            `json:"fix_action,omitempty"`
	FixError   string            `json:"fix_error,omitempty"`   // Populated if fix was attempted but failed
	FixContext map[string]string `json:"fix_context,omitempty"` // Structured data for fix logic
}

// CatalogDiagnostic contains stats for a single catalog.
type CatalogDiagnostic struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Palettes int    `json:"palettes"`
	Colors   int    `json:"colors"`
}

// ReportSummary summarizes the diagnostic results.
type ReportSummary struct {
	Errors    int `json:"errors"`
	Warnings  int `json:"warnings"`
	Fixed     int `json:"fixed"`
	FixFailed int `json:"fix_failed,omitempty"`
}

// DiagnosticReport contains all diagnostic results.
type DiagnosticReport struct {
	Catalogs []CatalogDiagnostic `json:"catalogs"`
	Issues   []Issue             `json:"issues"`
	Summary  ReportSummary       `json:"summary"`
}

// HasErrors returns true if there are any error-level issues.
func (r *DiagnosticReport) HasErrors() bool {
	return r.Summary.Errors > 0
}

// Fixable counts issues that Fix can repair.
func (r *DiagnosticReport) Fixable() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Fixable {
			n++
		}
	}
	return n
}

// IssuesFor returns the issues reported against one catalog, errors first.
// An empty name selects issues outside any catalog (the global config).
func (r *DiagnosticReport) IssuesFor(catalog string) []Issue {
	var errs, warns []Issue
	for _, issue := range r.Issues {
		if issue.Catalog != catalog {
			continue
		}
		if issue.Severity == SeverityError {
			errs = append(errs, issue)
		} else {
			warns = append(warns, issue)
		}
	}
	return append(errs, warns...)
}

func (r *DiagnosticReport) add(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

func (r *DiagnosticReport) summarize() {
	r.Summary.Errors, r.Summary.Warnings = 0, 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			r.Summary.Errors++
		} else {
			r.Summary.Warnings++
		}
	}
}

// DoctorService validates swatch data for consistency issues.
type DoctorService struct {
	paths        *config.Paths
	catalogStore store.CatalogStore
}

// NewDoctorService creates a new diagnostic service.
func NewDoctorService(paths *config.Paths, catalogStore store.CatalogStore) *DoctorService {
	return &DoctorService{paths: paths, catalogStore: catalogStore}
}

// Diagnose analyzes all catalogs (or a specific catalog) for issues.
// Catalog files are decoded directly so that schema problems are reported
// rather than aborting the check.
func (s *DoctorService) Diagnose(catalogName string) (*DiagnosticReport, error) {
	report := &DiagnosticReport{
		Catalogs: []CatalogDiagnostic{},
		Issues:   []Issue{},
	}

	s.checkGlobalConfig(report)

	names, err := s.catalogStore.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list catalogs: %w", err)
	}

	// Palette IDs must be unique across catalogs: the resolver searches all of them.
	seenIDs := make(map[string]string) // id -> catalog it was first seen in

	for _, name := range names {
		if catalogName != "" && name != catalogName {
			continue
		}
		s.checkCatalog(report, name, seenIDs)
	}

	report.summarize()
	return report, nil
}

// Fix applies automatic fixes for issues that have deterministic solutions.
// Returns a new report showing remaining issues and what was fixed.
func (s *DoctorService) Fix(report *DiagnosticReport) (*DiagnosticReport, error) {
	fixed := 0
	fixFailed := 0
	remaining := []Issue{}

	for _, issue := range report.Issues {
		if !issue.Fixable {
			remaining = append(remaining, issue)
			continue
		}

		var err error
		switch issue.Code {
		case CodeMissingSchema:
			err = s.rewriteCatalog(issue.Catalog, func(*model.Catalog) error { return nil })
		case CodeMissingPaletteID, CodeDuplicatePaletteID:
			err = s.rewritePalette(issue, func(p *model.Palette) { p.ID = id.Generate() })
		case CodeMissingSlug:
			err = s.rewritePalette(issue, func(p *model.Palette) { p.Slug = util.Slugify(p.Name) })
		case CodeFavoritesRange:
			err = s.rewritePalette(issue, func(p *model.Palette) {
				p.Favorites = max(0, min(p.Favorites, model.MaxFavorites))
			})
		default:
			remaining = append(remaining, issue)
			continue
		}

		if err != nil {
			// If fix failed, keep the issue with error recorded
			issue.FixError = err.Error()
			remaining = append(remaining, issue)
			fixFailed++
		} else {
			fixed++
		}
	}

	newReport := &DiagnosticReport{
		Catalogs: report.Catalogs,
		Issues:   remaining,
		Summary: ReportSummary{
			Fixed:     fixed,
			FixFailed: fixFailed,
		},
	}
	newReport.summarize()
	return newReport, nil
}

func (s *DoctorService) checkGlobalConfig(report *DiagnosticReport) {
	path := s.paths.ConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return // No global config is fine
		}
		report.add(Issue{
			Severity: SeverityWarning,
			Code:     CodeMalformedGlobalConfig,
			Message:  fmt.Sprintf("Cannot read global config: %v", err),
		})
		return
	}

	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		report.add(Issue{
			Severity: SeverityWarning,
			Code:     CodeMalformedGlobalConfig,
			Message:  fmt.Sprintf("Invalid TOML in global config: %v", err),
		})
		return
	}

	schema, _ := raw["swatch_schema"].(string)
	if schema == version.CurrentGlobalSchema() {
		return
	}
	msg := fmt.Sprintf("Global config missing schema version, current is %s", version.CurrentGlobalSchema())
	if schema != "" {
		msg = fmt.Sprintf("Global config has schema %s, current is %s", schema, version.CurrentGlobalSchema())
	}
	report.add(Issue{
		Severity:  SeverityWarning,
		Code:      CodeGlobalSchemaOutdated,
		Message:   msg,
		FixAction: fmt.Sprintf("Set swatch_schema = %q in %s", version.CurrentGlobalSchema(), path),
	})
}

func (s *DoctorService) checkCatalog(report *DiagnosticReport, name string, seenIDs map[string]string) {
	path := s.catalogStore.Path(name)
	diag := CatalogDiagnostic{Name: name, Path: path}
	defer func() { report.Catalogs = append(report.Catalogs, diag) }()

	cat, err := store.ReadCatalogFile(path)
	if err != nil {
		report.add(Issue{
			Severity: SeverityError,
			Code:     CodeMalformedCatalog,
			Catalog:  name,
			Message:  fmt.Sprintf("Cannot read catalog: %v", err),
		})
		return
	}

	diag.Palettes = len(cat.Palettes)

	switch {
	case cat.SwatchSchema == "":
		report.add(Issue{
			Severity:  SeverityWarning,
			Code:      CodeMissingSchema,
			Catalog:   name,
			Message:   fmt.Sprintf("Catalog missing schema version, current is %s", version.CurrentCatalogSchema()),
			Fixable:   true,
			FixAction: "Stamp current schema version",
		})
	case cat.SwatchSchema != version.CurrentCatalogSchema():
		report.add(Issue{
			Severity:  SeverityError,
			Code:      CodeSchemaMismatch,
			Catalog:   name,
			Message:   fmt.Sprintf("Catalog has schema %s, current is %s", cat.SwatchSchema, version.CurrentCatalogSchema()),
			FixAction: "Upgrade swatch or restore the catalog from a compatible version",
		})
	}

	seenNames := make(map[string]bool)
	for i, p := range cat.Palettes {
		diag.Colors += len(p.Colors)
		s.checkPalette(report, name, i, p, seenIDs, seenNames)
	}
}

func (s *DoctorService) checkPalette(report *DiagnosticReport, catalog string, index int, p *model.Palette, seenIDs map[string]string, seenNames map[string]bool) {
	label := p.Name
	if label == "" {
		label = fmt.Sprintf("#%d", index+1)
	}
	ctx := map[string]string{"index": strconv.Itoa(index)}

	paletteIssue := func(sev IssueSeverity, code, msg string, fixable bool, action string) {
		report.add(Issue{
			Severity:   sev,
			Code:       code,
			Catalog:    catalog,
			Palette:    label,
			Message:    msg,
			Fixable:    fixable,
			FixAction:  action,
			FixContext: ctx,
		})
	}

	if strings.TrimSpace(p.Name) == "" {
		paletteIssue(SeverityError, CodeEmptyName, "Palette has no name", false, "")
	} else {
		folded := util.Fold(p.Name)
		if seenNames[folded] {
			paletteIssue(SeverityWarning, CodeDuplicateName, fmt.Sprintf("Another palette in %s is named %q", catalog, p.Name), false, "Rename one of the palettes")
		}
		seenNames[folded] = true
	}

	switch {
	case p.ID == "":
		paletteIssue(SeverityError, CodeMissingPaletteID, "Palette has no ID", true, "Generate a new ID")
	case seenIDs[p.ID] != "":
		paletteIssue(SeverityError, CodeDuplicatePaletteID,
			fmt.Sprintf("ID %s already used by a palette in catalog %s", p.ID, seenIDs[p.ID]),
			true, "Generate a new ID for this palette")
	default:
		seenIDs[p.ID] = catalog
	}

	if p.Slug == "" && p.Name != "" {
		paletteIssue(SeverityWarning, CodeMissingSlug, "Palette has no slug", true, fmt.Sprintf("Set slug to %q", util.Slugify(p.Name)))
	}

	if p.Favorites < 0 || p.Favorites > model.MaxFavorites {
		paletteIssue(SeverityWarning, CodeFavoritesRange,
			fmt.Sprintf("Favorites %d outside 0-%d", p.Favorites, model.MaxFavorites),
			true, "Clamp to the valid range")
	}

	if len(p.Colors) == 0 {
		paletteIssue(SeverityError, CodeEmptyPalette, "Palette has no colors", false, "")
	}
	for i, hex := range p.Colors {
		if _, err := model.ParseHex(hex); err != nil {
			paletteIssue(SeverityError, CodeInvalidColor, fmt.Sprintf("Color %d: %v", i+1, err), false, "")
		}
	}
	if len(p.Colors) > model.MaxSwatches {
		paletteIssue(SeverityWarning, CodeTooManyColors,
			fmt.Sprintf("%d colors, only the first %d are shown as swatches", len(p.Colors), model.MaxSwatches),
			false, "")
	}
}

// rewriteCatalog decodes the catalog without schema validation, applies fn,
// then saves it through the store, which stamps the current schema.
func (s *DoctorService) rewriteCatalog(name string, fn func(*model.Catalog) error) error {
	cat, err := store.ReadCatalogFile(s.catalogStore.Path(name))
	if err != nil {
		return err
	}
	if cat.SwatchSchema != "" && cat.SwatchSchema != version.CurrentCatalogSchema() {
		return version.InvalidCatalogSchema(s.catalogStore.Path(name), cat.SwatchSchema)
	}
	cat.Name = name
	if err := fn(cat); err != nil {
		return err
	}
	return s.catalogStore.Save(cat)
}

func (s *DoctorService) rewritePalette(issue Issue, fn func(*model.Palette)) error {
	index, err := strconv.Atoi(issue.FixContext["index"])
	if err != nil {
		return fmt.Errorf("missing palette index: %w", err)
	}
	return s.rewriteCatalog(issue.Catalog, func(cat *model.Catalog) error {
		if index < 0 || index >= len(cat.Palettes) {
			return fmt.Errorf("palette %d no longer exists", index+1)
		}
		fn(cat.Palettes[index])
		return nil
	})
}
