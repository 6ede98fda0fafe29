package cli

import (
	"fmt"
	"strings"

	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/browse"
	"github.com/amterp/swatch/internal/logger"
	"github.com/amterp/swatch/internal/model"
)

func registerSearch(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("search")
	cmd.SetDescription("Filter palettes by name, tag or hex and print one page of results")

	ctx.SearchQuery, _ = ra.NewString("query").
		SetOptional(true).
		SetDefault("").
		SetUsage("Search text; every word must match (empty lists everything)").
		Register(cmd)

	ctx.SearchPage, _ = ra.NewInt("page").
		SetShort("p").
		SetOptional(true).
		SetDefault(1).
		SetFlagOnly(true).
		SetUsage("Page to show, starting at 1").
		Register(cmd)

	ctx.SearchPageSize, _ = ra.NewInt("page-size").
		SetShort("n").
		SetOptional(true).
		SetDefault(0).
		SetFlagOnly(true).
		SetUsage("Palettes per page (default: config, then 5)").
		Register(cmd)

	ctx.SearchCatalog, _ = ra.NewString("catalog").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Search only this catalog (default: all)").
		SetCompletionFunc(completeCatalogs).
		Register(cmd)

	ctx.SearchUsed, _ = parent.RegisterCmd(cmd)
}

func runSearch(query string, page, pageSize int, catalog string, g globalFlags) {
	app := mustApp(g)

	if err := app.RequireInit(); err != nil {
		Fatal(err)
	}

	b, err := app.BrowseService.Open(catalog, app.PageSize(pageSize))
	if err != nil {
		Fatal(err)
	}

	b.Search(query)
	if page > 1 {
		b.GoTo(page - 1)
		if b.PageCurrent() != page-1 {
			PrintWarning("page %d is past the end, showing page %d", page, b.PageCurrent()+1)
		}
	}
	logger.Debug("search", "query", query, "matches", b.Len(), "page", b.PageCurrent())

	view := b.Snapshot()

	if g.json {
		if err := printJson(NewSearchOutput(view)); err != nil {
			Fatal(err)
		}
		return
	}

	printView(view)
}

// printView prints one page of palettes followed by the page footer.
func printView(view browse.View) {
	if view.Matches == 0 {
		if strings.TrimSpace(view.Query) == "" {
			PrintInfo("No palettes yet (add one with 'swatch add')")
		} else {
			PrintInfo("No palettes match %q", view.Query)
		}
		return
	}

	for _, p := range view.Palettes {
		printPaletteCard(p)
		fmt.Println()
	}

	footer := fmt.Sprintf("page %d / %d", view.Page+1, view.Pages)
	matches := fmt.Sprintf("%d of %d palettes", view.Matches, view.Total)
	fmt.Printf("%s  %s\n", RenderBold(footer), RenderMuted(matches))
}

// printPaletteCard prints a palette's name, rating, reference and swatches.
func printPaletteCard(p *model.Palette) {
	ref := p.Slug
	if p.Catalog != "" {
		ref = p.Catalog + "/" + p.Slug
	}
	fmt.Printf("%s  %s  %s\n", RenderBold(p.Name), RenderStars(p.Favorites), RenderID(ref))

	swatches := make([]string, 0, model.MaxSwatches)
	for _, hex := range p.Swatches() {
		swatches = append(swatches, RenderSwatch(hex))
	}
	line := strings.Join(swatches, " ")
	if extra := len(p.Colors) - len(p.Swatches()); extra > 0 {
		line += " " + RenderMuted(fmt.Sprintf("+%d", extra))
	}
	fmt.Printf("  %s\n", line)
}
