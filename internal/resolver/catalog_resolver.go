package resolver

import (
	"fmt"

	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/prompt"
	"github.com/amterp/swatch/internal/store"
)

// CatalogResolver handles catalog selection for commands that write.
type CatalogResolver struct {
	catalogStore store.CatalogStore
	globalStore  store.GlobalStore
	prompter     prompt.Prompter
}

// NewCatalogResolver creates a new catalog resolver.
func NewCatalogResolver(
	catalogStore store.CatalogStore,
	globalStore store.GlobalStore,
	prompter prompt.Prompter,
) *CatalogResolver {
	return &CatalogResolver{
		catalogStore: catalogStore,
		globalStore:  globalStore,
		prompter:     prompter,
	}
}

// Resolve determines which catalog to use:
// 1. If explicit catalog provided, it must exist
// 2. If only one catalog exists, use it
// 3. If default_catalog configured and present, use it
// 4. If interactive, prompt user
// 5. Otherwise, fail with error
func (r *CatalogResolver) Resolve(explicit string, interactive bool) (string, error) {
	if explicit != "" {
		if !r.catalogStore.Exists(explicit) {
			return "", swerr.CatalogNotFound(explicit)
		}
		return explicit, nil
	}

	catalogs, err := r.catalogStore.List()
	if err != nil {
		return "", err
	}

	if len(catalogs) == 0 {
		return "", &swerr.NotInitializedError{}
	}

	if len(catalogs) == 1 {
		return catalogs[0], nil
	}

	if globalCfg, _ := r.globalStore.Load(); globalCfg != nil {
		if def := globalCfg.DefaultCatalog; def != "" && r.catalogStore.Exists(def) {
			return def, nil
		}
	}

	if !interactive {
		return "", fmt.Errorf("multiple catalogs exist; specify with --catalog or set default_catalog in config")
	}

	return r.prompter.Select("Select catalog", catalogs)
}
