package mcp

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pleasure1234/linux-do-mcp/internal/forum"
)

const (
	ToolLatestTopic    = "latest_topic"
	ToolTopTopic       = "top_topic"
	ToolHotTopic       = "hot_topic"
	ToolCategoryTopic  = "category_topic"
	ToolNewTopic       = "new_topic"
	ToolUnreadTopic    = "unread_topic"
	ToolUnseenTopic    = "unseen_topic"
	ToolPostTopic      = "post_topic"
	ToolTopicSearch    = "topic_search"
	ToolNotification   = "new_notification"
	ToolBookmark       = "my_bookmark"
	ToolPrivateMessage = "my_private_message"
	ToolFetchAgain     = "fetch_again"
)

// fetchAgainTargets are the listings fetch_again may re-run.
var fetchAgainTargets = []string{
	ToolLatestTopic, ToolNewTopic, ToolTopTopic, ToolHotTopic,
	ToolUnreadTopic, ToolUnseenTopic, ToolPostTopic,
}

func pageOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("page", mcp.Description("页码，默认为1")),
		mcp.WithNumber("per_page", mcp.Description("每页条数，默认为10")),
	}
}

func listingTool(name, description string, extra ...mcp.ToolOption) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(description),
		mcp.WithReadOnlyHintAnnotation(true),
	}
	opts = append(opts, extra...)
	opts = append(opts, pageOptions()...)
	return mcp.NewTool(name, opts...)
}

// Catalog returns every tool the server can expose, in display order.
func Catalog() []mcp.Tool {
	return []mcp.Tool{
		listingTool(ToolLatestTopic, "获取Linux.do有新帖子的话题"),
		listingTool(ToolTopTopic, "获取Linux.do过去一年一月一周一天中最活跃的话题",
			mcp.WithString("period",
				mcp.Required(),
				mcp.Description("时间周期：每日/每周/每月/每季度/每年/全部"),
				mcp.Enum(forum.Periods...),
			),
		),
		listingTool(ToolHotTopic, "获取Linux.do最近热门话题"),
		mcp.NewTool(ToolCategoryTopic,
			mcp.WithDescription("获取Linux.do特定分类下的话题"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithString("category",
				mcp.Required(),
				mcp.Description("话题分类名称"),
				mcp.Enum(forum.CategoryNames()...),
			),
			mcp.WithNumber("page", mcp.Description("页码，默认为1")),
			mcp.WithNumber("per_page", mcp.Description("每页条数，默认为50")),
		),
		listingTool(ToolNewTopic, "获取Linux.do最近几天创建的话题"),
		listingTool(ToolUnreadTopic, "获取Linux.do您当前正在关注或追踪，具有未读帖子的话题"),
		listingTool(ToolUnseenTopic, "获取Linux.do新话题和您当前正在关注或追踪，具有未读帖子的话题"),
		listingTool(ToolPostTopic, "获取Linux.do您发过帖子的话题"),
		mcp.NewTool(ToolTopicSearch,
			mcp.WithDescription("搜索Linux.do论坛上的话题"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithString("term",
				mcp.Required(),
				mcp.Description("搜索关键词"),
			),
		),
		mcp.NewTool(ToolNotification,
			mcp.WithDescription("获取Linux.do您最近的未读通知"),
			mcp.WithNumber("limit", mcp.Description("获取的通知数量，默认为10")),
			mcp.WithArray("filter_by_types",
				mcp.Description("过滤通知类型，默认为所有类型，可选值: "+strings.Join(forum.NotificationBuckets(), ", ")),
				mcp.Items(map[string]any{"type": "string"}),
			),
		),
		mcp.NewTool(ToolBookmark,
			mcp.WithDescription("获取Linux.do您收藏的帖子"),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		mcp.NewTool(ToolPrivateMessage,
			mcp.WithDescription("获取Linux.do您收到的私信"),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		mcp.NewTool(ToolFetchAgain,
			mcp.WithDescription("重新获取指定的Linux.do话题列表"),
			mcp.WithString("tool",
				mcp.Required(),
				mcp.Description("要重新调用的工具名称"),
				mcp.Enum(fetchAgainTargets...),
			),
			mcp.WithObject("params",
				mcp.Required(),
				mcp.Description("工具的原始参数"),
				mcp.Properties(map[string]any{
					"page":     map[string]any{"type": "number"},
					"per_page": map[string]any{"type": "number"},
					"period": map[string]any{
						"type": "string",
						"enum": forum.Periods,
					},
				}),
			),
		),
	}
}
