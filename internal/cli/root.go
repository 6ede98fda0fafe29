package cli

import (
	"os"

	"github.com/amterp/ra"
)

// CommandContext holds parsed values and used flags for all commands.
type CommandContext struct {
	// Global flags
	Json           *bool
	NonInteractive *bool
	Debug          *bool

	// init command
	InitUsed  *bool
	InitLocal *bool

	// catalog command
	CatalogUsed              *bool
	CatalogListUsed          *bool
	CatalogCreateUsed        *bool
	CatalogCreateName        *string
	CatalogCreateDescription *string

	// search command
	SearchUsed     *bool
	SearchQuery    *string
	SearchPage     *int
	SearchPageSize *int
	SearchCatalog  *string

	// show command
	ShowUsed    *bool
	ShowPalette *string
	ShowCatalog *string

	// copy command
	CopyUsed    *bool
	CopyPalette *string
	CopyIndex   *int
	CopyAll     *bool
	CopyCatalog *string

	// add command
	AddUsed      *bool
	AddName      *string
	AddColors    *[]string
	AddFavorites *int
	AddTags      *[]string
	AddCatalog   *string

	// remove command
	RemoveUsed    *bool
	RemovePalette *string
	RemoveCatalog *string
	RemoveForce   *bool

	// import command
	ImportUsed    *bool
	ImportFile    *string
	ImportCatalog *string

	// edit command
	EditUsed    *bool
	EditCatalog *string

	// export command
	ExportUsed    *bool
	ExportPalette *string
	ExportOutput  *string
	ExportCatalog *string

	// doctor command
	DoctorUsed    *bool
	DoctorFix     *bool
	DoctorDryRun  *bool
	DoctorCatalog *string

	// browse command
	BrowseUsed     *bool
	BrowseCatalog  *string
	BrowsePageSize *int
	BrowseQuery    *string

	// serve command
	ServeUsed     *bool
	ServePort     *int
	ServeNoOpen   *bool
	ServeCatalog  *string
	ServePageSize *int

	// completion command
	CompletionUsed  *bool
	CompletionShell *string
}

// globalFlags is the dereferenced set of flags every command sees.
type globalFlags struct {
	json           bool
	nonInteractive bool
	debug          bool
}

// Run is the main entry point for the CLI.
func Run() {
	ctx := &CommandContext{}

	cmd := ra.NewCmd("swatch")
	cmd.SetDescription("Browse, search and copy colors from palette catalogs")

	ctx.Json, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(cmd, ra.WithGlobal(true))

	// Global flag for non-interactive mode
	ctx.NonInteractive, _ = ra.NewBool("non-interactive").
		SetShort("I").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Fail instead of prompting for missing input").
		Register(cmd, ra.WithGlobal(true))

	ctx.Debug, _ = ra.NewBool("debug").
		SetShort("d").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Write debug logs to the swatch logs directory").
		Register(cmd, ra.WithGlobal(true))

	// Register all subcommands
	registerInit(cmd, ctx)
	registerCatalog(cmd, ctx)
	registerSearch(cmd, ctx)
	registerShow(cmd, ctx)
	registerCopy(cmd, ctx)
	registerAdd(cmd, ctx)
	registerRemove(cmd, ctx)
	registerImport(cmd, ctx)
	registerEdit(cmd, ctx)
	registerExport(cmd, ctx)
	registerDoctor(cmd, ctx)
	registerBrowse(cmd, ctx)
	registerServe(cmd, ctx)
	registerCompletion(cmd, ctx)

	// Parse command line
	cmd.ParseOrExit(os.Args[1:])

	// Execute the appropriate command
	executeCommand(ctx, cmd)
}

func executeCommand(ctx *CommandContext, rootCmd *ra.Cmd) {
	g := globalFlags{
		json:           *ctx.Json,
		nonInteractive: *ctx.NonInteractive,
		debug:          *ctx.Debug,
	}

	switch {
	case *ctx.InitUsed:
		runInit(*ctx.InitLocal, g)

	case *ctx.CatalogListUsed:
		runCatalogList(g)

	case *ctx.CatalogCreateUsed:
		runCatalogCreate(*ctx.CatalogCreateName, *ctx.CatalogCreateDescription, g)

	case *ctx.SearchUsed:
		runSearch(*ctx.SearchQuery, *ctx.SearchPage, *ctx.SearchPageSize, *ctx.SearchCatalog, g)

	case *ctx.ShowUsed:
		runShow(*ctx.ShowPalette, *ctx.ShowCatalog, g)

	case *ctx.CopyUsed:
		runCopy(*ctx.CopyPalette, *ctx.CopyIndex, *ctx.CopyAll, *ctx.CopyCatalog, g)

	case *ctx.AddUsed:
		runAdd(*ctx.AddName, *ctx.AddColors, *ctx.AddFavorites, *ctx.AddTags, *ctx.AddCatalog, g)

	case *ctx.RemoveUsed:
		runRemove(*ctx.RemovePalette, *ctx.RemoveCatalog, *ctx.RemoveForce, g)

	case *ctx.ImportUsed:
		runImport(*ctx.ImportFile, *ctx.ImportCatalog, g)

	case *ctx.EditUsed:
		runEdit(*ctx.EditCatalog, g)

	case *ctx.ExportUsed:
		runExport(*ctx.ExportPalette, *ctx.ExportOutput, *ctx.ExportCatalog, g)

	case *ctx.DoctorUsed:
		runDoctor(*ctx.DoctorCatalog, *ctx.DoctorFix, *ctx.DoctorDryRun, g)

	case *ctx.BrowseUsed:
		runBrowse(*ctx.BrowseCatalog, *ctx.BrowsePageSize, *ctx.BrowseQuery, g)

	case *ctx.ServeUsed:
		runServe(*ctx.ServePort, *ctx.ServeNoOpen, *ctx.ServeCatalog, *ctx.ServePageSize, g)

	case *ctx.CompletionUsed:
		runCompletion(*ctx.CompletionShell, rootCmd)
	}
}
