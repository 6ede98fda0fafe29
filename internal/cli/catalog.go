package cli

import (
	"fmt"

	"github.com/amterp/ra"
)

func registerCatalog(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("catalog")
	cmd.SetDescription("Manage palette catalogs")

	// catalog create
	createCmd := ra.NewCmd("create")
	createCmd.SetDescription("Create a new, empty catalog")

	ctx.CatalogCreateName, _ = ra.NewString("name").
		SetUsage("Name of the catalog to create").
		Register(createCmd)

	ctx.CatalogCreateDescription, _ = ra.NewString("description").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Short description shown by 'catalog list'").
		Register(createCmd)

	ctx.CatalogCreateUsed, _ = cmd.RegisterCmd(createCmd)

	// catalog list
	listCmd := ra.NewCmd("list")
	listCmd.SetDescription("List all catalogs")

	ctx.CatalogListUsed, _ = cmd.RegisterCmd(listCmd)

	ctx.CatalogUsed, _ = parent.RegisterCmd(cmd)
}

func runCatalogCreate(name, description string, g globalFlags) {
	app := mustApp(g)

	if err := app.CatalogService.CreateCatalog(name, description); err != nil {
		Fatal(err)
	}

	if g.json {
		warnJsonNotSupported("catalog create")
	}
	PrintSuccess("Created catalog %q", name)
}

func runCatalogList(g globalFlags) {
	app := mustApp(g)

	catalogs, err := app.CatalogService.List()
	if err != nil {
		Fatal(err)
	}

	if g.json {
		if err := printJson(NewCatalogsOutput(catalogs)); err != nil {
			Fatal(err)
		}
		return
	}

	if len(catalogs) == 0 {
		PrintInfo("No catalogs found (run 'swatch init')")
		return
	}

	for _, c := range catalogs {
		count := RenderMuted(fmt.Sprintf("(%d palettes)", c.Palettes))
		fmt.Printf("%s %s\n", RenderBold(c.Name), count)
		if c.Description != "" {
			fmt.Printf("  %s\n", c.Description)
		}
	}
}
