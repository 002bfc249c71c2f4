package forum

const (
	PlaceholderUsername = "某位佬友"
	PlaceholderCategory = "未知分类"
	SystemNotification  = "系统通知"

	// Marks an acting-user field that actually carries a system summary such
	// as "3 个回复".
	systemMessageMarker = "个回复"
)

// OrDefault returns the first non-empty value, or fallback.
func OrDefault(fallback string, values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return fallback
}
