package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pleasure1234/linux-do-mcp/internal/forum"
)

type CategoryTopicsHandler struct {
	Service CategoryService
}

func (h *CategoryTopicsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	name := stringArgument(args, "category")
	categoryID, ok := forum.CategoryID(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Errorf("%w: %q", forum.ErrUnknownCategory, name).Error()), nil
	}

	page, err := pageArguments(args, forum.DefaultCategoryPerPage)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := h.Service.CategoriesAndLatest(ctx, page)
	if err != nil {
		return nil, err
	}
	return jsonResult(forum.ToCategoryTopics(resp, categoryID, h.Service.Config()))
}
