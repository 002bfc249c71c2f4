package types

type Notification struct {
	Username         string `json:"username"`
	Title            string `json:"title"`
	NotificationType string `json:"notification_type"`
	Message          string `json:"message"`
	CreatedAt        string `json:"created_at"`
	Read             bool   `json:"read"`
}

type NotificationList struct {
	Notifications []Notification `json:"notifications"`
}

type Bookmark struct {
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	URL       string `json:"url"`
	Username  string `json:"username"`
}

type BookmarkList struct {
	Bookmarks []Bookmark `json:"bookmarks"`
}

type PrivateMessage struct {
	Title      string `json:"title"`
	CreatedAt  string `json:"created_at"`
	URL        string `json:"url"`
	LastPoster string `json:"last_poster"`
}

type PrivateMessageList struct {
	Messages []PrivateMessage `json:"messages"`
}
