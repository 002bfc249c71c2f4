package forum

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/pleasure1234/linux-do-mcp/internal/mcp/tools/types"
)

func ToTopicList(resp TopicListResponse, cfg Config) types.TopicList {
	topics := make([]types.TopicSummary, 0, len(resp.TopicList.Topics))
	for _, t := range resp.TopicList.Topics {
		topics = append(topics, types.TopicSummary{
			Title:     t.Title,
			CreatedAt: t.CreatedAt,
			URL:       cfg.TopicURL(t.ID),
			Poster:    OrDefault(PlaceholderUsername, findUser(resp.Users, t).Username),
		})
	}
	return types.TopicList{Topics: topics}
}

func ToSearchResult(resp SearchResponse, cfg Config) types.SearchResult {
	result := types.SearchResult{
		Topics: make([]types.SearchTopic, 0, len(resp.Topics)),
		Posts:  make([]types.SearchPost, 0, len(resp.Posts)),
	}
	for _, t := range resp.Topics {
		result.Topics = append(result.Topics, types.SearchTopic{
			Title:     t.FancyTitle,
			CreatedAt: t.CreatedAt,
			URL:       cfg.TopicURL(t.ID),
		})
	}
	for _, p := range resp.Posts {
		result.Posts = append(result.Posts, types.SearchPost{
			Username:  p.Username,
			CreatedAt: p.CreatedAt,
			LikeCount: p.LikeCount,
			URL:       cfg.TopicURL(p.TopicID),
		})
	}
	return result
}

// ToCategoryTopics keeps the first CategoryTopicLimit topics of categoryID in
// response order.
func ToCategoryTopics(resp CategoryResponse, categoryID int, cfg Config) types.CategoryTopics {
	name := ""
	for _, c := range resp.CategoryList.Categories {
		if c.ID == categoryID {
			name = c.Name
			break
		}
	}

	topics := make([]types.TopicSummary, 0, CategoryTopicLimit)
	for _, t := range resp.TopicList.Topics {
		if len(topics) == CategoryTopicLimit {
			break
		}
		if t.CategoryID != categoryID {
			continue
		}
		topics = append(topics, types.TopicSummary{
			Title:     t.Title,
			CreatedAt: t.CreatedAt,
			URL:       cfg.TopicURL(t.ID),
			Poster:    OrDefault(PlaceholderUsername, findUser(resp.Users, t).Name),
		})
	}
	return types.CategoryTopics{
		Category: OrDefault(PlaceholderCategory, name),
		Topics:   topics,
	}
}

func ToNotificationList(resp NotificationResponse) types.NotificationList {
	out := make([]types.Notification, 0, len(resp.Notifications))
	for _, n := range resp.Notifications {
		out = append(out, ToNotification(n))
	}
	return types.NotificationList{Notifications: out}
}

func ToNotification(n Notification) types.Notification {
	username := OrDefault(PlaceholderUsername, n.Data.DisplayUsername, n.ActingUserName)
	message := n.Data.Message

	if strings.Contains(username, systemMessageMarker) {
		message = username
		username = SystemNotification
	}
	if code, _ := NotificationTypeCode("granted_badge"); n.NotificationType == code && n.Data.BadgeName != "" {
		message = `获得了 "` + n.Data.BadgeName + `" 徽章`
	}

	return types.Notification{
		Username:         username,
		Title:            OrDefault("", n.FancyTitle, n.Data.TopicTitle),
		NotificationType: NotificationTypeName(n.NotificationType),
		Message:          message,
		CreatedAt:        n.CreatedAt,
		Read:             n.Read,
	}
}

func ToBookmarkList(resp BookmarkResponse) types.BookmarkList {
	out := make([]types.Bookmark, 0, len(resp.Bookmarks))
	for _, b := range resp.Bookmarks {
		username := ""
		if b.User != nil {
			username = b.User.Username
		}
		out = append(out, types.Bookmark{
			Title:     OrDefault("", b.TopicTitle, b.FancyTitle),
			CreatedAt: b.CreatedAt,
			URL:       b.BookmarkableURL,
			Username:  OrDefault(PlaceholderUsername, username),
		})
	}
	return types.BookmarkList{Bookmarks: out}
}

// ToPrivateMessageList reads the listing without a fixed schema; private
// message payloads vary between forum versions.
func ToPrivateMessageList(raw []byte, cfg Config) (types.PrivateMessageList, error) {
	if !gjson.ValidBytes(raw) {
		return types.PrivateMessageList{}, fmt.Errorf("decode private messages: invalid JSON")
	}
	doc := gjson.ParseBytes(raw)

	names := map[int64]string{}
	doc.Get("users").ForEach(func(_, user gjson.Result) bool {
		names[user.Get("id").Int()] = user.Get("name").String()
		return true
	})

	out := []types.PrivateMessage{}
	doc.Get("topic_list.topics").ForEach(func(_, topic gjson.Result) bool {
		poster := ""
		if first := topic.Get("posters.0.user_id"); first.Exists() {
			poster = names[first.Int()]
		}
		out = append(out, types.PrivateMessage{
			Title:      topic.Get("title").String(),
			CreatedAt:  topic.Get("created_at").String(),
			URL:        cfg.TopicURL(int(topic.Get("id").Int())),
			LastPoster: OrDefault(PlaceholderUsername, poster),
		})
		return true
	})
	return types.PrivateMessageList{Messages: out}, nil
}

func findUser(users []User, t Topic) User {
	id, ok := t.FirstPosterID()
	if !ok {
		return User{}
	}
	for _, u := range users {
		if u.ID == id {
			return u
		}
	}
	return User{}
}
