package forum

import (
	"context"
	"net/url"
	"strconv"
)

const (
	DefaultPage            = 1
	DefaultPerPage         = 10
	DefaultCategoryPerPage = 50
	DefaultNotifications   = 10

	// Topics kept per category_topic call.
	CategoryTopicLimit = 5
)

// Periods accepted by the top listing.
var Periods = []string{"daily", "weekly", "monthly", "quarterly", "yearly", "all"}

// Page selects a slice of a listing. Zero values take the defaults.
type Page struct {
	Page    int
	PerPage int
}

func (p Page) values(defaultPerPage int) url.Values {
	page, perPage := p.Page, p.PerPage
	if page <= 0 {
		page = DefaultPage
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	return url.Values{
		"page":     {strconv.Itoa(page)},
		"per_page": {strconv.Itoa(perPage)},
	}
}

// Topics fetches a topic listing such as latest, hot, new or top/<period>.
func (c *Client) Topics(ctx context.Context, listing, period string, page Page, auth bool) (TopicListResponse, error) {
	endpoint := listing + ".json"
	if period != "" {
		endpoint = listing + "/" + period + ".json"
	}
	var resp TopicListResponse
	err := c.GetJSON(ctx, endpoint, page.values(DefaultPerPage), auth, &resp)
	return resp, err
}

func (c *Client) Search(ctx context.Context, term string) (SearchResponse, error) {
	var resp SearchResponse
	err := c.GetJSON(ctx, "search/query.json", url.Values{"term": {term}}, false, &resp)
	return resp, err
}

func (c *Client) CategoriesAndLatest(ctx context.Context, page Page) (CategoryResponse, error) {
	var resp CategoryResponse
	err := c.GetJSON(ctx, "categories_and_latest", page.values(DefaultCategoryPerPage), false, &resp)
	return resp, err
}

// Notifications lists recent notifications, optionally narrowed to buckets
// (reply, like, other).
func (c *Client) Notifications(ctx context.Context, limit int, buckets []string) (NotificationResponse, error) {
	if limit <= 0 {
		limit = DefaultNotifications
	}
	params := url.Values{
		"limit":                     {strconv.Itoa(limit)},
		"recent":                    {"true"},
		"bump_last_seen_reviewable": {"true"},
	}
	if filter := JoinNotificationFilter(buckets); filter != "" {
		params.Set("filter_by_types", filter)
		params.Set("silent", "true")
	}
	var resp NotificationResponse
	err := c.GetJSON(ctx, "notifications.json", params, true, &resp)
	return resp, err
}

func (c *Client) Bookmarks(ctx context.Context) (BookmarkResponse, error) {
	var resp BookmarkResponse
	endpoint := "u/" + url.PathEscape(c.cfg.Username) + "/user-menu-bookmarks.json"
	err := c.GetJSON(ctx, endpoint, nil, true, &resp)
	return resp, err
}

// PrivateMessages returns the raw private message listing.
func (c *Client) PrivateMessages(ctx context.Context) ([]byte, error) {
	endpoint := "topics/private-messages/" + url.PathEscape(c.cfg.Username) + ".json"
	return c.Fetch(ctx, endpoint, nil, true)
}
