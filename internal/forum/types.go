package forum

// Response shapes owned by the forum. Only the fields the formatters read are
// declared; anything else in the payload is ignored.

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type Poster struct {
	UserID int `json:"user_id"`
}

type Topic struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	FancyTitle string   `json:"fancy_title"`
	CreatedAt  string   `json:"created_at"`
	CategoryID int      `json:"category_id"`
	Posters    []Poster `json:"posters"`
}

// FirstPosterID returns the original poster's user id, if any.
func (t Topic) FirstPosterID() (int, bool) {
	if len(t.Posters) == 0 {
		return 0, false
	}
	return t.Posters[0].UserID, true
}

type TopicList struct {
	Topics []Topic `json:"topics"`
}

type TopicListResponse struct {
	Users     []User    `json:"users"`
	TopicList TopicList `json:"topic_list"`
}

type SearchPost struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
	TopicID   int    `json:"topic_id"`
	LikeCount int    `json:"like_count"`
}

type SearchResponse struct {
	Posts  []SearchPost `json:"posts"`
	Topics []Topic      `json:"topics"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CategoryList struct {
	Categories []Category `json:"categories"`
}

type CategoryResponse struct {
	CategoryList CategoryList `json:"category_list"`
	TopicList    TopicList    `json:"topic_list"`
	Users        []User       `json:"users"`
}

type NotificationData struct {
	TopicTitle      string `json:"topic_title"`
	Message         string `json:"message"`
	DisplayUsername string `json:"display_username"`
	BadgeName       string `json:"badge_name"`
}

type Notification struct {
	ID               int              `json:"id"`
	NotificationType int              `json:"notification_type"`
	Read             bool             `json:"read"`
	CreatedAt        string           `json:"created_at"`
	FancyTitle       string           `json:"fancy_title"`
	ActingUserName   string           `json:"acting_user_name"`
	Data             NotificationData `json:"data"`
}

type NotificationResponse struct {
	Notifications []Notification `json:"notifications"`
}

type BookmarkUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type Bookmark struct {
	ID              int           `json:"id"`
	TopicTitle      string        `json:"topic_title"`
	FancyTitle      string        `json:"fancy_title"`
	CreatedAt       string        `json:"created_at"`
	BookmarkableURL string        `json:"bookmarkable_url"`
	User            *BookmarkUser `json:"user"`
}

type BookmarkResponse struct {
	Bookmarks []Bookmark `json:"bookmarks"`
}
