package tools

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pleasure1234/linux-do-mcp/internal/forum"
)

// TopicListingHandler serves one topic listing endpoint (latest, hot, top,
// new, unread, unseen, posted).
type TopicListingHandler struct {
	Service TopicService
	Listing string
	// WithPeriod makes the period argument mandatory and part of the path.
	WithPeriod bool
	Auth       bool
}

func (h *TopicListingHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	page, err := pageArguments(args, forum.DefaultPerPage)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	period := ""
	if h.WithPeriod {
		period = stringArgument(args, "period")
		if !slices.Contains(forum.Periods, period) {
			return mcp.NewToolResultError(fmt.Sprintf("period must be one of %s", strings.Join(forum.Periods, ", "))), nil
		}
	}

	resp, err := h.Service.Topics(ctx, h.Listing, period, page, h.Auth)
	if err != nil {
		return nil, err
	}
	return jsonResult(forum.ToTopicList(resp, h.Service.Config()))
}

func pageArguments(args map[string]any, defaultPerPage int) (forum.Page, error) {
	page, err := intArgument(args, "page", forum.DefaultPage)
	if err != nil {
		return forum.Page{}, err
	}
	perPage, err := intArgument(args, "per_page", defaultPerPage)
	if err != nil {
		return forum.Page{}, err
	}
	return forum.Page{Page: page, PerPage: perPage}, nil
}

// FetchAgainHandler re-runs a topic listing tool with caller supplied
// parameters.
type FetchAgainHandler struct {
	Targets map[string]*TopicListingHandler
}

func (h *FetchAgainHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	name := stringArgument(args, "tool")
	target, ok := h.Targets[name]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown tool: %s", name)), nil
	}

	params := map[string]any{}
	if raw, ok := args["params"]; ok && raw != nil {
		p, ok := raw.(map[string]any)
		if !ok {
			return mcp.NewToolResultError("params must be an object"), nil
		}
		params = p
	}

	inner := mcp.CallToolRequest{}
	inner.Params.Name = name
	inner.Params.Arguments = params
	return target.ToolAdapter(ctx, inner)
}
