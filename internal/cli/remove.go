package cli

import (
	"fmt"

	"github.com/amterp/ra"
)

func registerRemove(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("remove")
	cmd.SetDescription("Remove a palette from its catalog")

	ctx.RemovePalette, _ = ra.NewString("palette").
		SetUsage("Palette ID, slug or name").
		SetCompletionFunc(completePalettes).
		Register(cmd)

	ctx.RemoveCatalog, _ = ra.NewString("catalog").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Catalog name").
		SetCompletionFunc(completeCatalogs).
		Register(cmd)

	ctx.RemoveForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Skip confirmation (required in non-interactive mode)").
		Register(cmd)

	ctx.RemoveUsed, _ = parent.RegisterCmd(cmd)
}

func runRemove(ref, catalog string, force bool, g globalFlags) {
	app := mustApp(g)

	if err := app.RequireInit(); err != nil {
		Fatal(err)
	}

	palette, err := app.PaletteResolver.Resolve(catalog, ref)
	if err != nil {
		Fatal(err)
	}

	if !force {
		if g.nonInteractive {
			Fatal(fmt.Errorf("removing palette %q (%s) requires --force in non-interactive mode", palette.Name, palette.ID))
		}

		confirmed, err := app.Prompter.Confirm(
			fmt.Sprintf("Remove palette %q from %s?", palette.Name, palette.Catalog),
			false,
		)
		if err != nil {
			Fatal(err)
		}
		if !confirmed {
			PrintInfo("Cancelled")
			return
		}
	}

	if err := app.CatalogService.RemovePalette(palette.Catalog, palette.ID); err != nil {
		Fatal(err)
	}

	if g.json {
		warnJsonNotSupported("remove")
	}
	PrintSuccess("Removed palette %q (%s) from catalog %q", palette.Name, palette.ID, palette.Catalog)
}
