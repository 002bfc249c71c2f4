package forum

import (
	"sort"
	"strings"
)

// UnknownNotificationType is the name reported for codes missing from the table.
const UnknownNotificationType = "unknown"

var categoryIDs = map[string]int{
	"Feedback":      2,
	"Development":   4,
	"Flea Market":   10,
	"Off-Topic":     11,
	"Resources":     14,
	"Job Market":    27,
	"Book Club":     32,
	"News Flash":    34,
	"Benefits":      36,
	"Documentation": 42,
	"Set Sail":      46,
	"Web Archive":   92,
}

// Order shown to MCP clients in the category enum.
var categoryOrder = []string{
	"Development", "Resources", "Documentation", "Flea Market",
	"Job Market", "Book Club", "Set Sail", "News Flash",
	"Web Archive", "Benefits", "Off-Topic", "Feedback",
}

var notificationTypes = map[string]int{
	"mentioned":                       1,
	"replied":                         2,
	"quoted":                          3,
	"edited":                          4,
	"liked":                           5,
	"private_message":                 6,
	"invited_to_private_message":      7,
	"invitee_accepted":                8,
	"posted":                          9,
	"moved_post":                      10,
	"linked":                          11,
	"granted_badge":                   12,
	"invited_to_topic":                13,
	"custom":                          14,
	"group_mentioned":                 15,
	"group_message_summary":           16,
	"watching_first_post":             17,
	"topic_reminder":                  18,
	"liked_consolidated":              19,
	"post_approved":                   20,
	"code_review_commit_approved":     21,
	"membership_request_accepted":     22,
	"membership_request_consolidated": 23,
	"bookmark_reminder":               24,
	"reaction":                        25,
	"votes_released":                  26,
	"event_reminder":                  27,
	"event_invitation":                28,
	"chat_mention":                    29,
	"chat_message":                    30,
	"chat_invitation":                 31,
	"chat_group_mention":              32,
	"chat_quoted":                     33,
	"assigned":                        34,
	"question_answer_user_commented":  35,
	"watching_category_or_tag":        36,
	"new_features":                    37,
	"admin_problems":                  38,
	"linked_consolidated":             39,
	"chat_watched_thread":             40,
	"following":                       800,
	"following_created_topic":         801,
	"following_replied":               802,
	"circles_activity":                900,
}

var notificationNames = invert(notificationTypes)

// Coarse buckets accepted by new_notification, expanded to the type names the
// forum understands in filter_by_types.
var notificationBuckets = map[string][]string{
	"reply": {"mentioned", "group_mentioned", "posted", "quoted", "replied"},
	"like":  {"liked", "liked_consolidated", "reaction"},
	"other": {
		"edited", "invited_to_private_message", "invitee_accepted", "moved_post",
		"linked", "granted_badge", "invited_to_topic", "custom",
		"watching_first_post", "topic_reminder", "post_approved",
		"code_review_commit_approved", "membership_request_accepted",
		"membership_request_consolidated", "votes_released", "event_reminder",
		"event_invitation", "chat_group_mention", "assigned",
		"question_answer_user_commented", "watching_category_or_tag",
		"new_features", "admin_problems", "linked_consolidated", "following",
		"following_created_topic", "following_replied", "circles_activity",
	},
}

var bucketOrder = []string{"reply", "like", "other"}

func invert(m map[string]int) map[int]string {
	out := make(map[int]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// CategoryID resolves a category display name to its forum id.
func CategoryID(name string) (int, bool) {
	id, ok := categoryIDs[name]
	return id, ok
}

// CategoryNames lists the accepted category names.
func CategoryNames() []string {
	return append([]string(nil), categoryOrder...)
}

// NotificationTypeName maps a numeric type to its symbolic name, or
// UnknownNotificationType.
func NotificationTypeName(code int) string {
	if name, ok := notificationNames[code]; ok {
		return name
	}
	return UnknownNotificationType
}

// NotificationTypeCode maps a symbolic type name to its numeric code.
func NotificationTypeCode(name string) (int, bool) {
	code, ok := notificationTypes[name]
	return code, ok
}

// NotificationTypeNames returns every known type name ordered by code.
func NotificationTypeNames() []string {
	names := make([]string, 0, len(notificationTypes))
	for name := range notificationTypes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return notificationTypes[names[i]] < notificationTypes[names[j]]
	})
	return names
}

// NotificationBuckets lists the bucket names accepted by ExpandNotificationFilter.
func NotificationBuckets() []string {
	return append([]string(nil), bucketOrder...)
}

// ExpandNotificationFilter flattens buckets into type names. Unknown buckets
// are skipped and duplicates are kept.
func ExpandNotificationFilter(buckets []string) []string {
	var out []string
	for _, b := range buckets {
		out = append(out, notificationBuckets[b]...)
	}
	return out
}

// JoinNotificationFilter is ExpandNotificationFilter joined for the query string.
func JoinNotificationFilter(buckets []string) string {
	return strings.Join(ExpandNotificationFilter(buckets), ",")
}
