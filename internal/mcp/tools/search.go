package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pleasure1234/linux-do-mcp/internal/forum"
)

type SearchHandler struct {
	Service SearchService
}

func (h *SearchHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	term := stringArgument(req.GetArguments(), "term")
	if strings.TrimSpace(term) == "" {
		return mcp.NewToolResultError("term parameter is required"), nil
	}
	resp, err := h.Service.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return jsonResult(forum.ToSearchResult(resp, h.Service.Config()))
}
