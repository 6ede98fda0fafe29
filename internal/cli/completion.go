package cli

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/resolver"
	"github.com/amterp/swatch/internal/store"
)

// completionCtx provides lightweight store access for shell completion.
// Completion functions run during ParseOrExit, before NewApp() is called,
// so we can't use the full App. This initializes just enough to list
// catalogs and palettes.
type completionCtx struct {
	once         sync.Once
	catalogStore *store.FileCatalogStore
	resolver     *resolver.PaletteResolver
	err          error
}

var compCtx completionCtx

func initCompletionCtx() {
	compCtx.once.Do(func() {
		env := config.LoadEnv()
		paths := config.NewPaths(resolveDataRoot(env))
		if _, err := os.Stat(paths.CatalogsRoot()); err != nil {
			compCtx.err = fmt.Errorf("no catalogs directory")
			return
		}
		compCtx.catalogStore = store.NewCatalogStore(paths)
		compCtx.resolver = resolver.NewPaletteResolver(compCtx.catalogStore)
	})
}

// completeCatalogs returns catalog names matching the given prefix.
func completeCatalogs(toComplete string) ([]string, ra.CompletionDirective) {
	initCompletionCtx()
	if compCtx.err != nil {
		return nil, ra.CompletionDirectiveNoFileComp
	}

	catalogs, err := compCtx.catalogStore.List()
	if err != nil {
		return nil, ra.CompletionDirectiveNoFileComp
	}

	var result []string
	for _, c := range catalogs {
		if strings.HasPrefix(c, toComplete) {
			result = append(result, c)
		}
	}
	return result, ra.CompletionDirectiveNoFileComp
}

// completePalettes returns palette slugs matching the given prefix, limited
// to the catalog given with -c/--catalog when present.
func completePalettes(toComplete string) ([]string, ra.CompletionDirective) {
	initCompletionCtx()
	if compCtx.err != nil {
		return nil, ra.CompletionDirectiveNoFileComp
	}

	catalog := catalogFromArgs(os.Args)
	if catalog == "" {
		return compCtx.resolver.Complete(toComplete), ra.CompletionDirectiveNoFileComp
	}

	cat, err := compCtx.catalogStore.Get(catalog)
	if err != nil {
		return nil, ra.CompletionDirectiveNoFileComp
	}

	var result []string
	for _, p := range cat.Palettes {
		if strings.HasPrefix(p.Slug, toComplete) {
			result = append(result, p.Slug)
		}
	}
	return result, ra.CompletionDirectiveNoFileComp
}

// catalogFromArgs scans the argument list for an explicit -c/--catalog flag value.
func catalogFromArgs(args []string) string {
	for i, arg := range args {
		// --catalog=value or -c=value (skip empty values so fallback logic runs)
		if strings.HasPrefix(arg, "--catalog=") {
			if v := strings.TrimPrefix(arg, "--catalog="); v != "" {
				return v
			}
		}
		if strings.HasPrefix(arg, "-c=") {
			if v := strings.TrimPrefix(arg, "-c="); v != "" {
				return v
			}
		}
		// --catalog value or -c value
		if (arg == "--catalog" || arg == "-c") && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// registerCompletion adds the "swatch completion <shell>" command.
func registerCompletion(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("completion")
	cmd.SetDescription("Output shell completion script")

	ctx.CompletionShell, _ = ra.NewString("shell").
		SetUsage("Shell type").
		SetEnumConstraint([]string{"bash", "zsh"}).
		Register(cmd)

	ctx.CompletionUsed, _ = parent.RegisterCmd(cmd)
}

// runCompletion outputs the shell completion script to stdout.
func runCompletion(shell string, rootCmd *ra.Cmd) {
	var err error
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(os.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(os.Stdout)
	default:
		Fatal(fmt.Errorf("unsupported shell: %s (supported: bash, zsh)", shell))
	}
	if err != nil {
		Fatal(fmt.Errorf("failed to generate completion script: %w", err))
	}
}
