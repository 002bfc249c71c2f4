package mcp

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pleasure1234/linux-do-mcp/internal/config"
	"github.com/pleasure1234/linux-do-mcp/internal/logging"
)

const serverName = "pleasure1234/linux-do-mcp"

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler

	handlers map[string]server.ToolHandlerFunc
	log      logging.Logger
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		serverName,
		config.Version,
		server.WithToolCapabilities(true),
	)

	s := &Server{
		MCP:      mcpServer,
		handlers: map[string]server.ToolHandlerFunc{},
		log:      cfg.Logger.WithName("mcp"),
	}

	for _, tool := range Catalog() {
		adapter, ok := cfg.ToolAdapters[tool.Name]
		if !ok {
			continue
		}
		handler := s.dispatch(tool.Name, adapter)
		s.handlers[tool.Name] = handler
		mcpServer.AddTool(tool, handler)
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)
	s.HTTP = httpServer
	s.Handler = httpServer
	return s
}

// Tools lists the registered tool names in sorted order.
func (s *Server) Tools() []string {
	names := make([]string, 0, len(s.handlers))
	for name := range s.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call runs a tool outside of any transport. It goes through the same
// dispatcher as MCP clients do, so failures come back as error results.
func (s *Server) Call(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	handler, ok := s.handlers[name]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown tool: %s", name))
	}
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	result, _ := handler(ctx, req)
	return result
}

// dispatch wraps an adapter so that neither errors nor panics leave the tool
// call; both become results with IsError set.
func (s *Server) dispatch(name string, adapter ToolAdapter) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		log := s.log.WithValues("tool", name)
		defer func() {
			if r := recover(); r != nil {
				log.Error(fmt.Errorf("%v", r), "tool handler panicked")
				result, err = mcp.NewToolResultError(fmt.Sprintf("Error: %v", r)), nil
			}
		}()

		log.Debug("calling tool")
		result, err = adapter.ToolAdapter(ctx, req)
		if err != nil {
			log.Error(err, "tool call failed")
			return mcp.NewToolResultError("Error: " + err.Error()), nil
		}
		if result == nil {
			return mcp.NewToolResultError("Error: empty result"), nil
		}
		return result, nil
	}
}
