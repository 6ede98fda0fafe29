package cli

import (
	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/discovery"
	"github.com/amterp/swatch/internal/git"
)

func registerInit(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("init")
	cmd.SetDescription("Create the swatch data directory and the starter catalog")

	ctx.InitLocal, _ = ra.NewBool("local").
		SetShort("l").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Create a project-local .swatch/ at the git root (or here) instead").
		Register(cmd)

	ctx.InitUsed, _ = parent.RegisterCmd(cmd)
}

func runInit(local bool, g globalFlags) {
	var app *App
	if local {
		root, err := discovery.LocalRootFor(git.NewClient(), ".")
		if err != nil {
			Fatal(err)
		}
		app, err = NewAppAt(config.LoadEnv(), root, !g.nonInteractive)
		if err != nil {
			Fatal(err)
		}
		app = withLogging(app, g)
	} else {
		app = mustApp(g)
	}

	created, err := app.InitService.Initialize()
	if err != nil {
		Fatal(err)
	}

	if g.json {
		if err := printJson(map[string]any{"root": app.Paths.Root(), "created": created}); err != nil {
			Fatal(err)
		}
		return
	}

	if !created {
		PrintInfo("Already initialized in %s", app.Paths.Root())
		return
	}
	PrintSuccess("Initialized swatch in %s", app.Paths.Root())
	PrintInfo("Try %s or %s", RenderBold("swatch search ocean"), RenderBold("swatch browse"))
}
