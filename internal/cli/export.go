package cli

import (
	"github.com/amterp/ra"
)

func registerExport(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("export")
	cmd.SetDescription("Write a palette to .png, .gpl, .json or .toml")

	ctx.ExportPalette, _ = ra.NewString("palette").
		SetUsage("Palette ID, slug or name").
		SetCompletionFunc(completePalettes).
		Register(cmd)

	ctx.ExportOutput, _ = ra.NewString("output").
		SetUsage("Output file; the extension picks the format").
		Register(cmd)

	ctx.ExportCatalog, _ = ra.NewString("catalog").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Catalog name").
		SetCompletionFunc(completeCatalogs).
		Register(cmd)

	ctx.ExportUsed, _ = parent.RegisterCmd(cmd)
}

func runExport(ref, output, catalog string, g globalFlags) {
	app := mustApp(g)

	if err := app.RequireInit(); err != nil {
		Fatal(err)
	}

	palette, err := app.PaletteResolver.Resolve(catalog, ref)
	if err != nil {
		Fatal(err)
	}

	if err := app.ExportService.Export(palette, output); err != nil {
		Fatal(err)
	}

	if g.json {
		if err := printJson(ExportOutput{Palette: palette.ID, Path: output}); err != nil {
			Fatal(err)
		}
		return
	}
	PrintSuccess("Exported %s to %s", RenderBold(palette.Name), output)
}
