package enums

import "fmt"

// NotificationType categorizes entries in the admin notification feed.
type NotificationType string

const (
	NotificationTypeComment NotificationType = "comment"
	NotificationTypeSystem  NotificationType = "system"
	NotificationTypeAlert   NotificationType = "alert"
)

var validNotificationTypes = []NotificationType{
	NotificationTypeComment,
	NotificationTypeSystem,
	NotificationTypeAlert,
}

// IsValid reports whether the value is a known NotificationType.
func (n NotificationType) IsValid() bool {
	for _, candidate := range validNotificationTypes {
		if candidate == n {
			return true
		}
	}
	return false
}

// NotificationPriority orders the admin notification feed.
type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "low"
	NotificationPriorityMedium NotificationPriority = "medium"
	NotificationPriorityHigh   NotificationPriority = "high"
)

var validNotificationPriorities = []NotificationPriority{
	NotificationPriorityLow,
	NotificationPriorityMedium,
	NotificationPriorityHigh,
}

// IsValid reports whether the value is a known NotificationPriority.
func (n NotificationPriority) IsValid() bool {
	for _, candidate := range validNotificationPriorities {
		if candidate == n {
			return true
		}
	}
	return false
}

// NotificationReadFilter selects feed entries by read state.
type NotificationReadFilter string

const (
	NotificationReadFilterAll    NotificationReadFilter = "all"
	NotificationReadFilterUnread NotificationReadFilter = "unread"
	NotificationReadFilterRead   NotificationReadFilter = "read"
)

var validNotificationReadFilters = []NotificationReadFilter{
	NotificationReadFilterAll,
	NotificationReadFilterUnread,
	NotificationReadFilterRead,
}

// IsValid reports whether the value is a known NotificationReadFilter.
func (n NotificationReadFilter) IsValid() bool {
	for _, candidate := range validNotificationReadFilters {
		if candidate == n {
			return true
		}
	}
	return false
}

// ParseNotificationReadFilter converts raw input into a
// NotificationReadFilter. Empty input means "all".
func ParseNotificationReadFilter(value string) (NotificationReadFilter, error) {
	if value == "" {
		return NotificationReadFilterAll, nil
	}
	for _, candidate := range validNotificationReadFilters {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid notification read filter %q", value)
}
