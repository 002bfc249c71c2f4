package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pleasure1234/linux-do-mcp/internal/config"
	"github.com/pleasure1234/linux-do-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:          "mcp-server",
		Short:        "linux.do MCP server",
		SilenceUsage: true,
		RunE:         run,
	}

	root.PersistentFlags().String("transport", "stdio", "MCP transport: stdio, sse or http")
	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host (sse and http transports)")
	root.PersistentFlags().Int("port", 8080, "HTTP port (sse and http transports)")
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	root.PersistentFlags().String("linux-do-base-url", "https://linux.do", "Forum base URL")
	root.PersistentFlags().String("request-timeout", "30s", "Per-request timeout for forum calls (0 disables)")
	root.PersistentFlags().Float64("requests-per-second", 0, "Limit on forum requests per second (0 disables)")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	transport, err := mcp.ParseTransport(config.Transport())
	if err != nil {
		return err
	}

	srv := mcp.New(mcp.DefaultConfig())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := net.JoinHostPort(config.Host(), strconv.Itoa(config.Port()))
	return srv.Serve(ctx, transport, addr)
}
