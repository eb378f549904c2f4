package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/impact/internal/app"
	"github.com/rpggio/impact/internal/config"
	"github.com/rpggio/impact/internal/logging"
	"github.com/rpggio/impact/internal/mcp"
	"github.com/rpggio/impact/internal/transport"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	console := io.Writer(os.Stdout)
	if cfg.Transport.Mode == config.TransportStdio {
		console = os.Stderr
	}
	logger, closeLog := logging.Open(console, cfg.Log.Level, cfg.Log.Path)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Open(ctx, cfg.DB, logger)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.DB.Path, "error", err)
		os.Exit(1)
	}
	defer a.Close()

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Records:  a.Records,
			Activity: a.Activity,
		},
		Version: version,
		Logger:  logger,
	})

	if cfg.Transport.Mode == config.TransportStdio {
		err = runStdioMode(ctx, logger, mcpServer)
	} else {
		err = runHTTPMode(ctx, logger, mcpServer, a, cfg.Server)
	}
	if err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func runStdioMode(ctx context.Context, logger *slog.Logger, mcpServer *sdkmcp.Server) error {
	logger.Info("starting stdio transport")

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("shutting down")
	return nil
}

func runHTTPMode(ctx context.Context, logger *slog.Logger, mcpServer *sdkmcp.Server, a *app.App, cfg config.ServerConfig) error {
	router := newRouter(logger, mcpServer, a)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	return httpServer.Shutdown(shutdownCtx)
}

// newRouter serves the download API and the streamable MCP endpoint at /mcp.
func newRouter(logger *slog.Logger, mcpServer *sdkmcp.Server, a *app.App) http.Handler {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			SessionTimeout: 30 * time.Minute,
		},
	)

	return transport.NewServer(transport.Config{
		Records: a.Records,
		Exports: a.Activity,
		MCP:     mcpHandler,
		Logger:  logger,
	})
}
