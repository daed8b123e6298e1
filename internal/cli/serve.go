package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/tmsim/pkg/adapters/http"
	mcpAdapter "github.com/aretw0/tmsim/pkg/adapters/mcp"
)

// NewHTTPServer builds the HTTP server for app without starting it. Served
// simulations are bounded by the server limit of the configuration.
func NewHTTPServer(app *App, addr string) *http.Server {
	if addr == "" {
		addr = app.Config.Server.Addr
	}
	handler := httpAdapter.NewHandler(app.Engine.Limited(app.Config.Server.Limit()), app.Logger, httpAdapter.WithMetrics(app.Metrics.Handler()))
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  app.Config.Server.ReadTimeout,
		WriteTimeout: app.Config.Server.WriteTimeout,
	}
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, app *App, addr string) error {
	srv := NewHTTPServer(app, addr)

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		app.Logger.Info("Starting tmsim server", "address", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			if cerr := srv.Close(); cerr != nil {
				app.Logger.Error("Error killing server", "error", cerr)
			}
			return fmt.Errorf("graceful shutdown did not complete: %w", err)
		}
		app.Logger.Info("tmsim server stopped gracefully")
		return nil
	}
}

// ServeMCP exposes the engine as an MCP server, over stdio or SSE when port > 0.
func ServeMCP(ctx context.Context, app *App, port int) error {
	srv := mcpAdapter.NewServer(app.Engine.Limited(app.Config.Server.Limit()))
	if port > 0 {
		return srv.ServeSSE(ctx, port)
	}
	return srv.ServeStdio()
}
