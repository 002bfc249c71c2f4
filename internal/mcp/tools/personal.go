package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pleasure1234/linux-do-mcp/internal/forum"
)

type NotificationsHandler struct {
	Service NotificationService
}

func (h *NotificationsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	limit, err := intArgument(args, "limit", forum.DefaultNotifications)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	buckets, err := stringSliceArgument(args, "filter_by_types")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := h.Service.Notifications(ctx, limit, buckets)
	if err != nil {
		return nil, err
	}
	return jsonResult(forum.ToNotificationList(resp))
}

type BookmarksHandler struct {
	Service BookmarkService
}

func (h *BookmarksHandler) ToolAdapter(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := h.Service.Bookmarks(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResult(forum.ToBookmarkList(resp))
}

type PrivateMessagesHandler struct {
	Service PrivateMessageService
}

func (h *PrivateMessagesHandler) ToolAdapter(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := h.Service.PrivateMessages(ctx)
	if err != nil {
		return nil, err
	}
	messages, err := forum.ToPrivateMessageList(raw, h.Service.Config())
	if err != nil {
		return nil, err
	}
	return jsonResult(messages)
}
