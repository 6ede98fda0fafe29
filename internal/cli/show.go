package cli

import (
	"fmt"
	"strings"

	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/model"
)

func registerShow(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("show")
	cmd.SetDescription("Display palette details")

	ctx.ShowPalette, _ = ra.NewString("palette").
		SetUsage("Palette ID, slug or name").
		SetCompletionFunc(completePalettes).
		Register(cmd)

	ctx.ShowCatalog, _ = ra.NewString("catalog").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Catalog name").
		SetCompletionFunc(completeCatalogs).
		Register(cmd)

	ctx.ShowUsed, _ = parent.RegisterCmd(cmd)
}

func runShow(ref, catalog string, g globalFlags) {
	app := mustApp(g)

	if err := app.RequireInit(); err != nil {
		Fatal(err)
	}

	palette, err := app.PaletteResolver.Resolve(catalog, ref)
	if err != nil {
		Fatal(err)
	}

	if g.json {
		if err := printJson(NewPaletteOutput(palette)); err != nil {
			Fatal(err)
		}
		return
	}

	printPalette(palette)
}

func printPalette(p *model.Palette) {
	const labelWidth = 10

	// Title box
	fmt.Println(TitleBox(p.Name))
	fmt.Println()

	fmt.Println(LabelValue("ID", RenderID(p.ID), labelWidth))
	fmt.Println(LabelValue("Slug", p.Slug, labelWidth))
	fmt.Println(LabelValue("Catalog", p.Catalog, labelWidth))
	fmt.Println(LabelValue("Favorites", RenderStars(p.Favorites), labelWidth))
	if len(p.Tags) > 0 {
		fmt.Println(LabelValue("Tags", strings.Join(p.Tags, ", "), labelWidth))
	}

	fmt.Printf("\n%s\n", RenderMuted(fmt.Sprintf("Colors (%d):", len(p.Colors))))
	for i, hex := range p.Colors {
		index := RenderMuted(fmt.Sprintf("%2d", i+1))
		fmt.Printf("  %s %s %s\n", index, ColorSwatch(hex), RenderSwatch(hex))
	}
	if len(p.Colors) > model.MaxSwatches {
		fmt.Printf("\n%s\n", RenderMuted(fmt.Sprintf("Only the first %d colors appear in search results.", model.MaxSwatches)))
	}
}
