package cli

import (
	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/logger"
)

func registerCopy(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("copy")
	cmd.SetDescription("Copy a palette color to the clipboard")

	ctx.CopyPalette, _ = ra.NewString("palette").
		SetUsage("Palette ID, slug or name").
		SetCompletionFunc(completePalettes).
		Register(cmd)

	ctx.CopyIndex, _ = ra.NewInt("index").
		SetOptional(true).
		SetDefault(1).
		SetUsage("Color to copy, starting at 1").
		Register(cmd)

	ctx.CopyAll, _ = ra.NewBool("all").
		SetShort("a").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Copy every color, space separated").
		Register(cmd)

	ctx.CopyCatalog, _ = ra.NewString("catalog").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Catalog name").
		SetCompletionFunc(completeCatalogs).
		Register(cmd)

	ctx.CopyUsed, _ = parent.RegisterCmd(cmd)
}

func runCopy(ref string, index int, all bool, catalog string, g globalFlags) {
	app := mustApp(g)

	if err := app.RequireInit(); err != nil {
		Fatal(err)
	}

	palette, err := app.PaletteResolver.Resolve(catalog, ref)
	if err != nil {
		Fatal(err)
	}

	var copied string
	if all {
		index = 0
		copied, err = app.CopyService.CopyAll(palette)
	} else {
		copied, err = app.CopyService.CopyColor(palette, index-1)
	}
	if err != nil {
		Fatal(err)
	}
	logger.Info("copied", "palette", palette.ID, "index", index, "text", copied)

	if g.json {
		if err := printJson(CopyOutput{Palette: palette.ID, Index: index, Copied: copied}); err != nil {
			Fatal(err)
		}
		return
	}

	if all {
		PrintSuccess("Copied %d colors from %s", len(palette.Colors), RenderBold(palette.Name))
		return
	}
	PrintSuccess("Copied %s from %s", RenderSwatch(copied), RenderBold(palette.Name))
}
