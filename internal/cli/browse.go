package cli

import (
	"fmt"

	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/browse"
	"github.com/amterp/swatch/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

func registerBrowse(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("browse")
	cmd.SetDescription("Open the interactive palette browser")

	ctx.BrowseQuery, _ = ra.NewString("query").
		SetOptional(true).
		SetDefault("").
		SetUsage("Initial search text").
		Register(cmd)

	ctx.BrowseCatalog, _ = ra.NewString("catalog").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Browse only this catalog (default: all)").
		SetCompletionFunc(completeCatalogs).
		Register(cmd)

	ctx.BrowsePageSize, _ = ra.NewInt("page-size").
		SetShort("n").
		SetOptional(true).
		SetDefault(0).
		SetFlagOnly(true).
		SetUsage("Palettes per page (default: config, then 5)").
		Register(cmd)

	ctx.BrowseUsed, _ = parent.RegisterCmd(cmd)
}

func runBrowse(catalog string, pageSize int, query string, g globalFlags) {
	app := mustApp(g)

	if err := app.RequireInit(); err != nil {
		Fatal(err)
	}

	b, err := app.BrowseService.Open(catalog, app.PageSize(pageSize))
	if err != nil {
		Fatal(err)
	}
	b.Search(query)

	title := "swatch"
	if catalog != "" {
		title = fmt.Sprintf("swatch · %s", catalog)
	}

	m := tui.NewModel(b, tui.Options{
		Title:  title,
		Copier: app.CopyService,
		Reload: func(b *browse.Browser) error {
			return app.BrowseService.Reload(b, catalog)
		},
	})

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		Fatal(err)
	}
}
