package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/pleasure1234/linux-do-mcp/internal/config"
	"github.com/pleasure1234/linux-do-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:          "linuxdo",
		Short:        "Inspect and call the linux.do MCP tools from the command line",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	root.PersistentFlags().String("linux-do-base-url", "https://linux.do", "Forum base URL")
	root.PersistentFlags().String("request-timeout", "30s", "Per-request timeout for forum calls (0 disables)")

	root.AddCommand(toolsCmd(), callCmd())

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("linuxdo: %v", err)
	}
}

func toolsCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Print the tool catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCatalog(cmd.OutOrStdout(), mcp.Catalog(), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format: yaml or json")
	return cmd
}

func callCmd() *cobra.Command {
	var rawArgs string
	cmd := &cobra.Command{
		Use:   "call TOOL",
		Short: "Invoke one tool against the forum and print its result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolArgs := map[string]any{}
			if rawArgs != "" {
				if err := json.Unmarshal([]byte(rawArgs), &toolArgs); err != nil {
					return fmt.Errorf("--args must be a JSON object: %w", err)
				}
			}

			srv := mcp.New(mcp.DefaultConfig())

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			result := srv.Call(ctx, args[0], toolArgs)
			for _, content := range result.Content {
				if text, ok := content.(mcplib.TextContent); ok {
					fmt.Fprintln(cmd.OutOrStdout(), text.Text)
				}
			}
			if result.IsError {
				return fmt.Errorf("tool %s returned an error", args[0])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rawArgs, "args", "", `Tool arguments as a JSON object, e.g. '{"page":2}'`)
	return cmd
}

func writeCatalog(w io.Writer, tools []mcplib.Tool, format string) error {
	var (
		out []byte
		err error
	)
	switch format {
	case "yaml":
		out, err = yaml.Marshal(tools)
	case "json":
		out, err = json.MarshalIndent(tools, "", "  ")
		out = append(out, '\n')
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	_, err = w.Write(out)
	return err
}
