package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/service"
)

func registerAdd(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("add")
	cmd.SetDescription("Add a new palette")

	ctx.AddName, _ = ra.NewString("name").
		SetOptional(true).
		SetDefault("").
		SetUsage("Palette name (prompted if omitted)").
		Register(cmd)

	ctx.AddColors, _ = ra.NewStringSlice("color").
		SetShort("C").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Hex color, e.g. '#ff7e5f' (repeatable, or comma separated)").
		Register(cmd)

	ctx.AddFavorites, _ = ra.NewInt("favorites").
		SetShort("f").
		SetOptional(true).
		SetDefault(-1).
		SetFlagOnly(true).
		SetUsage("Rating from 0 to 5").
		Register(cmd)

	ctx.AddTags, _ = ra.NewStringSlice("tag").
		SetShort("t").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Tag to attach (repeatable)").
		Register(cmd)

	ctx.AddCatalog, _ = ra.NewString("catalog").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Target catalog").
		SetCompletionFunc(completeCatalogs).
		Register(cmd)

	ctx.AddUsed, _ = parent.RegisterCmd(cmd)
}

func runAdd(name string, colorArgs []string, favorites int, tags []string, catalog string, g globalFlags) {
	app := mustApp(g)

	if err := app.RequireInit(); err != nil {
		Fatal(err)
	}

	catalogName, err := app.CatalogResolver.Resolve(catalog, !g.nonInteractive)
	if err != nil {
		Fatal(err)
	}

	if strings.TrimSpace(name) == "" {
		name, err = app.Prompter.Input("Palette name", "", requireNonEmpty)
		if err != nil {
			Fatal(fmt.Errorf("palette name required: %w", err))
		}
	}

	colors := splitColors(colorArgs)
	if len(colors) == 0 {
		input, err := app.Prompter.Input("Colors (hex, space or comma separated)", "", validateColorList)
		if err != nil {
			Fatal(fmt.Errorf("at least one --color required: %w", err))
		}
		colors = splitColors([]string{input})
	}

	if favorites < 0 {
		favorites = 0
		if !g.nonInteractive {
			options := []string{"0", "1", "2", "3", "4", "5"}
			choice, err := app.Prompter.Select("Favorites", options)
			if err != nil {
				Fatal(err)
			}
			favorites, _ = strconv.Atoi(choice)
		}
	}

	palette, err := app.CatalogService.AddPalette(service.AddPaletteInput{
		Catalog:   catalogName,
		Name:      name,
		Colors:    colors,
		Favorites: favorites,
		Tags:      tags,
	})
	if err != nil {
		Fatal(err)
	}

	if g.json {
		if err := printJson(NewPaletteOutput(palette)); err != nil {
			Fatal(err)
		}
		return
	}

	PrintSuccess("Added palette %s (%s) to %q", RenderBold(palette.Name), RenderID(palette.Slug), catalogName)
	printPaletteCard(palette)
}

// splitColors flattens repeated and comma/space separated color arguments.
func splitColors(args []string) []string {
	var colors []string
	for _, arg := range args {
		colors = append(colors, strings.FieldsFunc(arg, isColorSeparator)...)
	}
	return colors
}

func isColorSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t'
}

func requireNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be empty")
	}
	return nil
}

func validateColorList(s string) error {
	colors := splitColors([]string{s})
	if len(colors) == 0 {
		return errors.New("enter at least one color")
	}
	for _, c := range colors {
		if _, err := model.ParseHex(c); err != nil {
			return err
		}
	}
	return nil
}
