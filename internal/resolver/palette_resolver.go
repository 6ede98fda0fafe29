package resolver

import (
	"sort"
	"strings"

	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/store"
	"github.com/amterp/swatch/internal/util"
)

// PaletteResolver handles palette ID, slug and name resolution.
type PaletteResolver struct {
	catalogStore store.CatalogStore
}

// NewPaletteResolver creates a new palette resolver.
func NewPaletteResolver(catalogStore store.CatalogStore) *PaletteResolver {
	return &PaletteResolver{catalogStore: catalogStore}
}

// Resolve finds a palette in catalogName, or across all catalogs when
// catalogName is empty. A ref of the form "catalog/slug" pins the catalog.
//
// Matching tries, in order: exact ID, exact slug, case- and accent-insensitive
// name, then a unique name or slug prefix. The first tier with any hits wins;
// more than one hit in that tier is ambiguous.
func (r *PaletteResolver) Resolve(catalogName, ref string) (*model.Palette, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, swerr.InvalidField("palette", "reference is empty")
	}

	if catalogName == "" {
		if cat, rest, ok := strings.Cut(ref, "/"); ok && r.catalogStore.Exists(cat) {
			catalogName, ref = cat, rest
		}
	}

	candidates, err := r.candidates(catalogName)
	if err != nil {
		return nil, err
	}

	folded := util.Fold(ref)
	tiers := []func(*model.Palette) bool{
		func(p *model.Palette) bool { return p.ID == ref },
		func(p *model.Palette) bool { return p.Slug == ref },
		func(p *model.Palette) bool { return util.Fold(p.Name) == folded },
		func(p *model.Palette) bool {
			return strings.HasPrefix(util.Fold(p.Name), folded) || strings.HasPrefix(p.Slug, folded)
		},
	}

	for _, match := range tiers {
		var hits []*model.Palette
		for _, p := range candidates {
			if match(p) {
				hits = append(hits, p)
			}
		}
		switch len(hits) {
		case 0:
			continue
		case 1:
			return hits[0], nil
		default:
			return nil, swerr.AmbiguousPalette(ref, qualifiedNames(hits))
		}
	}

	return nil, swerr.PaletteNotFound(ref)
}

// Complete returns "slug" completions for prefix, qualified as
// "catalog/slug" when the slug occurs in more than one catalog.
func (r *PaletteResolver) Complete(prefix string) []string {
	candidates, err := r.candidates("")
	if err != nil {
		return nil
	}

	counts := make(map[string]int)
	for _, p := range candidates {
		counts[p.Slug]++
	}

	var out []string
	for _, p := range candidates {
		name := p.Slug
		if counts[p.Slug] > 1 {
			name = p.Catalog + "/" + p.Slug
		}
		if strings.HasPrefix(p.Slug, prefix) || strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func (r *PaletteResolver) candidates(catalogName string) ([]*model.Palette, error) {
	if catalogName != "" {
		cat, err := r.catalogStore.Get(catalogName)
		if err != nil {
			return nil, err
		}
		return cat.Palettes, nil
	}

	names, err := r.catalogStore.List()
	if err != nil {
		return nil, err
	}
	var all []*model.Palette
	for _, name := range names {
		cat, err := r.catalogStore.Get(name)
		if err != nil {
			return nil, err
		}
		all = append(all, cat.Palettes...)
	}
	return all, nil
}

func qualifiedNames(palettes []*model.Palette) []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Catalog + "/" + p.Slug
	}
	return names
}
