package cli

import (
	"fmt"

	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/editor"
)

func registerEdit(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("edit")
	cmd.SetDescription("Open a catalog file in your editor")

	ctx.EditCatalog, _ = ra.NewString("catalog").
		SetOptional(true).
		SetDefault("").
		SetUsage("Catalog name (prompted if several exist)").
		SetCompletionFunc(completeCatalogs).
		Register(cmd)

	ctx.EditUsed, _ = parent.RegisterCmd(cmd)
}

func runEdit(catalog string, g globalFlags) {
	app := mustApp(g)

	if err := app.RequireInit(); err != nil {
		Fatal(err)
	}

	catalogName, err := app.CatalogResolver.Resolve(catalog, !g.nonInteractive)
	if err != nil {
		Fatal(err)
	}

	path := app.CatalogService.Path(catalogName)
	if err := editor.NewEditor(app.GlobalConfig).EditFile(path); err != nil {
		Fatal(fmt.Errorf("editor failed: %w", err))
	}

	// Re-read strictly so mistakes surface now rather than on the next search.
	if _, err := app.CatalogService.Get(catalogName); err != nil {
		PrintWarning("catalog %q no longer loads: %v", catalogName, err)
		PrintInfo("Run 'swatch doctor -c %s' for details", catalogName)
		return
	}

	report, err := app.DoctorService.Diagnose(catalogName)
	if err == nil && len(report.Issues) > 0 {
		PrintWarning("%d issue(s) found; run 'swatch doctor -c %s'", len(report.Issues), catalogName)
		return
	}
	PrintSuccess("Saved catalog %q", catalogName)
}
