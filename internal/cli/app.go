package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/discovery"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/logger"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/prompt"
	"github.com/amterp/swatch/internal/resolver"
	"github.com/amterp/swatch/internal/service"
	"github.com/amterp/swatch/internal/store"
)

// App holds all the dependencies for the CLI.
// Uses interfaces for testability.
type App struct {
	Env             *config.Env
	Paths           *config.Paths
	GlobalConfig    *model.GlobalConfig
	GlobalStore     store.GlobalStore
	CatalogStore    store.CatalogStore
	Prompter        prompt.Prompter
	InitService     *service.InitService
	CatalogService  *service.CatalogService
	BrowseService   *service.BrowseService
	CopyService     *service.CopyService
	DoctorService   *service.DoctorService
	ExportService   *service.ExportService
	PaletteResolver *resolver.PaletteResolver
	CatalogResolver *resolver.CatalogResolver
}

// NewApp creates a new App with all dependencies wired up.
// If interactive is false, uses NoopPrompter that fails on prompts.
func NewApp(interactive bool) (*App, error) {
	env := config.LoadEnv()
	return NewAppAt(env, resolveDataRoot(env), interactive)
}

// resolveDataRoot picks the data directory: $SWATCH_HOME, then a
// project-local .swatch/ found above the working directory, then the default.
func resolveDataRoot(env *config.Env) string {
	if env.Home != "" {
		return env.Home
	}
	local, err := discovery.DiscoverLocal()
	if err != nil {
		logger.Warn("project discovery failed", "error", err)
		return ""
	}
	if local != nil {
		return local.DataRoot
	}
	return ""
}

// NewAppAt creates an App rooted at the given data directory ("" for the default).
func NewAppAt(env *config.Env, root string, interactive bool) (*App, error) {
	paths := config.NewPaths(root)

	globalStore := store.NewGlobalStore(paths)
	catalogStore := store.NewCatalogStore(paths)

	// Load global config with warnings (don't silently ignore errors)
	globalCfg, err := globalStore.Load()
	if err != nil {
		PrintWarning("failed to load global config: %v", err)
		globalCfg = &model.GlobalConfig{}
	}

	var prompter prompt.Prompter
	if interactive {
		prompter = prompt.NewHuhPrompter()
	} else {
		prompter = &prompt.NoopPrompter{}
	}

	catalogService := service.NewCatalogService(catalogStore, globalStore)

	return &App{
		Env:             env,
		Paths:           paths,
		GlobalConfig:    globalCfg,
		GlobalStore:     globalStore,
		CatalogStore:    catalogStore,
		Prompter:        prompter,
		InitService:     service.NewInitService(catalogStore, globalStore),
		CatalogService:  catalogService,
		BrowseService:   service.NewBrowseService(catalogService),
		CopyService:     service.NewCopyService(service.SystemClipboard{}),
		DoctorService:   service.NewDoctorService(paths, catalogStore),
		ExportService:   service.NewExportService(),
		PaletteResolver: resolver.NewPaletteResolver(catalogStore),
		CatalogResolver: resolver.NewCatalogResolver(catalogStore, globalStore, prompter),
	}, nil
}

// mustApp builds the App and sets up logging, exiting on failure.
func mustApp(g globalFlags) *App {
	app, err := NewApp(!g.nonInteractive)
	if err != nil {
		Fatal(err)
	}
	return withLogging(app, g)
}

func withLogging(app *App, g globalFlags) *App {
	if err := app.InitLogging(g.debug, false); err != nil {
		PrintWarning("failed to set up logging: %v", err)
	}
	return app
}

// InitLogging enables debug logging when requested by flag or SWATCH_DEBUG.
// Logs go to a daily file under the data directory, or to stderr when
// toStderr is set (used by the server, which has no screen to protect).
func (a *App) InitLogging(debug, toStderr bool) error {
	opts := logger.Options{
		Enabled: debug || a.Env.Debug,
		LogDir:  a.Paths.LogsRoot(),
		Level:   a.Env.LogLevel,
	}
	if toStderr {
		opts.Enabled = true
		opts.Writer = os.Stderr
		if !debug && !a.Env.Debug {
			opts.Level = max(opts.Level, slog.LevelInfo)
		}
	}
	return logger.Init(opts)
}

// RequireInit ensures at least one catalog exists.
func (a *App) RequireInit() error {
	catalogs, err := a.CatalogStore.List()
	if err != nil || len(catalogs) == 0 {
		return &swerr.NotInitializedError{Path: a.Paths.Root()}
	}
	return nil
}

// PageSize resolves the page size: flag > SWATCH_PAGE_SIZE > config > default.
func (a *App) PageSize(flag int) int {
	if flag > 0 {
		return flag
	}
	if a.Env.PageSize > 0 {
		return a.Env.PageSize
	}
	return a.GlobalConfig.EffectivePageSize()
}

// Fatal prints an error and exits.
func Fatal(err error) {
	logger.Error("command failed", "error", err)
	fmt.Fprintf(os.Stderr, "%s %v\n", StyleError.Render("Error:"), err)
	os.Exit(1)
}
