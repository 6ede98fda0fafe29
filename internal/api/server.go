package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/amterp/swatch/internal/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wraps the HTTP server for the local API.
type Server struct {
	httpServer *http.Server
	watcher    *FileWatcher
	wsHub      *WebSocketHub
}

// NewServer creates a new server with the given handler, port, and catalogs directory.
// If catalogsDir is empty, file watching is disabled.
func NewServer(handler *Handler, port int, catalogsDir string) *Server {
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	wsHub := NewWebSocketHub()
	mux.HandleFunc("GET /api/v1/ws", wsHub.ServeWS)
	handler.SetOnReload(wsHub.BroadcastCatalogChange)

	var watcher *FileWatcher
	if catalogsDir != "" {
		var err error
		watcher, err = NewFileWatcher(catalogsDir)
		if err != nil {
			logger.Warn("failed to create file watcher", "error", err)
		} else {
			watcher.Subscribe(handler)
		}
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      Logging(Cors(mux)),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		watcher: watcher,
		wsHub:   wsHub,
	}
}

// Start begins listening for HTTP requests. Blocks until shutdown.
func (s *Server) Start() error {
	if s.watcher != nil {
		if err := s.watcher.Start(); err != nil {
			logger.Warn("failed to start file watcher", "error", err)
		}
	}

	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		if err := s.watcher.Stop(); err != nil {
			logger.Warn("failed to stop file watcher", "error", err)
		}
	}

	return s.httpServer.Shutdown(ctx)
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
