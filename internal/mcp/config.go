package mcp

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/pleasure1234/linux-do-mcp/internal/config"
	"github.com/pleasure1234/linux-do-mcp/internal/forum"
	"github.com/pleasure1234/linux-do-mcp/internal/logging"
	"github.com/pleasure1234/linux-do-mcp/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
	Logger       logging.Logger
}

// DefaultConfig loads the forum settings from the environment and wires every
// tool against a live client. Missing credentials are fatal.
func DefaultConfig() Config {
	forumCfg, err := forum.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load forum config: %v", err)
	}

	logger := logging.New(logging.FromLevel(config.LogLevel()))
	client := forum.NewClient(forumCfg, forum.WithLogger(logger))
	return NewConfig(client, logger)
}

// NewConfig registers the full tool set against svc.
func NewConfig(svc tools.ForumService, logger logging.Logger) Config {
	listing := func(name string, auth bool) *tools.TopicListingHandler {
		return &tools.TopicListingHandler{Service: svc, Listing: name, Auth: auth}
	}

	listings := map[string]*tools.TopicListingHandler{
		ToolLatestTopic: listing("latest", false),
		ToolHotTopic:    listing("hot", false),
		ToolTopTopic:    {Service: svc, Listing: "top", WithPeriod: true},
		ToolNewTopic:    listing("new", true),
		ToolUnreadTopic: listing("unread", true),
		ToolUnseenTopic: listing("unseen", true),
		ToolPostTopic:   listing("posted", true),
	}

	adapters := map[string]ToolAdapter{
		ToolCategoryTopic:  &tools.CategoryTopicsHandler{Service: svc},
		ToolTopicSearch:    &tools.SearchHandler{Service: svc},
		ToolNotification:   &tools.NotificationsHandler{Service: svc},
		ToolBookmark:       &tools.BookmarksHandler{Service: svc},
		ToolPrivateMessage: &tools.PrivateMessagesHandler{Service: svc},
		ToolFetchAgain:     &tools.FetchAgainHandler{Targets: listings},
	}
	for name, h := range listings {
		adapters[name] = h
	}

	return Config{
		ToolAdapters: adapters,
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
		Logger: logger,
	}
}
