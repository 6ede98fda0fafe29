package cli

import (
	"strings"

	"github.com/amterp/ra"
)

func registerImport(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("import")
	cmd.SetDescription("Import palettes from a TOML or YAML catalog file")

	ctx.ImportFile, _ = ra.NewString("file").
		SetUsage("Path to a .toml, .yaml or .yml file").
		Register(cmd)

	ctx.ImportCatalog, _ = ra.NewString("catalog").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Target catalog (default: the file's name field, then default catalog)").
		SetCompletionFunc(completeCatalogs).
		Register(cmd)

	ctx.ImportUsed, _ = parent.RegisterCmd(cmd)
}

func runImport(path, catalog string, g globalFlags) {
	app := mustApp(g)

	result, err := app.CatalogService.Import(path, catalog)
	if err != nil {
		Fatal(err)
	}

	if g.json {
		if err := printJson(ImportOutput{Import: result}); err != nil {
			Fatal(err)
		}
		return
	}

	if len(result.Added) > 0 {
		PrintSuccess("Imported %d palette(s) into %q", len(result.Added), result.Catalog)
	} else {
		PrintInfo("Nothing new to import into %q", result.Catalog)
	}
	if len(result.Skipped) > 0 {
		PrintWarning("Skipped %d already present: %s", len(result.Skipped), strings.Join(result.Skipped, ", "))
	}
}
