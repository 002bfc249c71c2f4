package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"
)

// Transport selects how the server talks to its MCP client.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportSSE   Transport = "sse"
	TransportHTTP  Transport = "http"
)

const shutdownTimeout = 5 * time.Second

func ParseTransport(s string) (Transport, error) {
	switch t := Transport(s); t {
	case TransportStdio, TransportSSE, TransportHTTP:
		return t, nil
	default:
		return "", fmt.Errorf("unknown transport %q (want stdio, sse or http)", s)
	}
}

// Serve blocks until ctx is cancelled or the transport fails. addr is ignored
// for stdio.
func (s *Server) Serve(ctx context.Context, transport Transport, addr string) error {
	switch transport {
	case TransportStdio:
		return s.ServeStdio(ctx)
	case TransportSSE:
		sse := server.NewSSEServer(s.MCP, server.WithSSEEndpoint("/sse"))
		s.log.Info("MCP server listening", "transport", transport, "addr", addr, "endpoint", "/sse")
		return serveHandler(ctx, addr, sse)
	case TransportHTTP:
		s.log.Info("MCP server listening", "transport", transport, "addr", addr, "endpoint", "/mcp/jsonrpc")
		return serveHandler(ctx, addr, s.Handler)
	default:
		return fmt.Errorf("unknown transport %q", transport)
	}
}

func (s *Server) ServeStdio(ctx context.Context) error {
	stdio := server.NewStdioServer(s.MCP)
	s.log.Info("MCP server running on stdio")
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("mcp stdio server: %w", err)
	}
	return nil
}

func serveHandler(ctx context.Context, addr string, handler http.Handler) error {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
