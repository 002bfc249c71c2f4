package types

type TopicSummary struct {
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	URL       string `json:"url"`
	Poster    string `json:"poster"`
}

type TopicList struct {
	Topics []TopicSummary `json:"topics"`
}

type CategoryTopics struct {
	Category string         `json:"category"`
	Topics   []TopicSummary `json:"topics"`
}

type SearchTopic struct {
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	URL       string `json:"url"`
}

type SearchPost struct {
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
	LikeCount int    `json:"like_count"`
	URL       string `json:"url"`
}

type SearchResult struct {
	Topics []SearchTopic `json:"topics"`
	Posts  []SearchPost  `json:"posts"`
}
