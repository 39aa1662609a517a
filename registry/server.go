package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServeStdio runs the registry as an MCP server over stdio.
// Blocks until the client disconnects or ctx is cancelled.
func (r *Registry) ServeStdio(ctx context.Context) error {
	r.logger.Info("serving MCP over stdio", "tools", r.tools)
	return r.server.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler returns an http.Handler for the streamable HTTP transport.
func (r *Registry) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return r.server
	}, &mcp.StreamableHTTPOptions{Logger: r.logger})
}

// ListenAndServe serves HTTPHandler on addr until ctx is cancelled, then
// shuts down gracefully.
func (r *Registry) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.HTTPHandler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("serving MCP over HTTP", "addr", addr, "tools", r.tools)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		<-errCh
		return nil
	}
}
