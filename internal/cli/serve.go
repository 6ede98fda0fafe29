package cli

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/api"
)

func registerServe(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("serve")
	cmd.SetDescription("Start the local HTTP API for browsing palettes")

	ctx.ServePort, _ = ra.NewInt("port").
		SetOptional(true).
		SetDefault(0).
		SetShort("p").
		SetFlagOnly(true).
		SetUsage("Port to listen on (default: config, then 7341; tries the next one if in use)").
		Register(cmd)

	ctx.ServeNoOpen, _ = ra.NewBool("no-open").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Don't open browser automatically").
		Register(cmd)

	ctx.ServeCatalog, _ = ra.NewString("catalog").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Serve only this catalog (default: all)").
		SetCompletionFunc(completeCatalogs).
		Register(cmd)

	ctx.ServePageSize, _ = ra.NewInt("page-size").
		SetShort("n").
		SetOptional(true).
		SetDefault(0).
		SetFlagOnly(true).
		SetUsage("Palettes per page (default: config, then 5)").
		Register(cmd)

	ctx.ServeUsed, _ = parent.RegisterCmd(cmd)
}

func runServe(port int, noOpen bool, catalog string, pageSize int, g globalFlags) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}
	if err := app.InitLogging(g.debug, true); err != nil {
		PrintWarning("failed to set up logging: %v", err)
	}

	if err := app.RequireInit(); err != nil {
		Fatal(err)
	}

	session, err := api.NewSession(app.BrowseService, catalog, app.PageSize(pageSize))
	if err != nil {
		Fatal(err)
	}

	handler := api.NewHandler(
		session,
		app.CatalogService,
		app.PaletteResolver,
		app.CopyService,
	)

	if port <= 0 {
		port = app.GlobalConfig.EffectiveServePort()
	}
	// Find an available port starting from the requested one
	actualPort := findAvailablePort(port)

	server := api.NewServer(handler, actualPort, app.Paths.CatalogsRoot())

	url := fmt.Sprintf("http://localhost:%d/api/v1/view", actualPort)
	fmt.Printf("swatch API running at %s\n", RenderURL(url))
	fmt.Println("Press Ctrl+C to stop")

	if !noOpen {
		openBrowser(url)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	if err := server.Start(); err != nil {
		Fatal(err)
	}
}

// findAvailablePort tries ports starting from startPort until it finds one that's available.
func findAvailablePort(startPort int) int {
	maxAttempts := 100
	for i := 0; i < maxAttempts; i++ {
		port := startPort + i
		if isPortAvailable(port) {
			return port
		}
	}
	// If we couldn't find a port after maxAttempts, return the original and let it fail naturally
	return startPort
}

// isPortAvailable checks if a port is available by attempting to listen on it.
func isPortAvailable(port int) bool {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	listener.Close()
	return true
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	if cmd != nil {
		_ = cmd.Start()
	}
}
