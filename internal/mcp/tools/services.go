package tools

import (
	"context"

	"github.com/pleasure1234/linux-do-mcp/internal/forum"
)

type configured interface {
	Config() forum.Config
}

type TopicService interface {
	configured
	Topics(ctx context.Context, listing, period string, page forum.Page, auth bool) (forum.TopicListResponse, error)
}

type SearchService interface {
	configured
	Search(ctx context.Context, term string) (forum.SearchResponse, error)
}

type CategoryService interface {
	configured
	CategoriesAndLatest(ctx context.Context, page forum.Page) (forum.CategoryResponse, error)
}

type NotificationService interface {
	Notifications(ctx context.Context, limit int, buckets []string) (forum.NotificationResponse, error)
}

type BookmarkService interface {
	Bookmarks(ctx context.Context) (forum.BookmarkResponse, error)
}

type PrivateMessageService interface {
	configured
	PrivateMessages(ctx context.Context) ([]byte, error)
}

// ForumService is satisfied by *forum.Client.
type ForumService interface {
	TopicService
	SearchService
	CategoryService
	NotificationService
	BookmarkService
	PrivateMessageService
}

var _ ForumService = (*forum.Client)(nil)
