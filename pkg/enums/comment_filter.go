package enums

import "fmt"

// CommentAuthorFilter selects comments by who wrote them in the admin
// moderation panel.
type CommentAuthorFilter string

const (
	CommentAuthorFilterAll   CommentAuthorFilter = "all"
	CommentAuthorFilterAdmin CommentAuthorFilter = "admin"
	CommentAuthorFilterUser  CommentAuthorFilter = "user"
)

var validCommentAuthorFilters = []CommentAuthorFilter{
	CommentAuthorFilterAll,
	CommentAuthorFilterAdmin,
	CommentAuthorFilterUser,
}

// String implements fmt.Stringer.
func (c CommentAuthorFilter) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CommentAuthorFilter.
func (c CommentAuthorFilter) IsValid() bool {
	for _, candidate := range validCommentAuthorFilters {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCommentAuthorFilter converts raw input into a CommentAuthorFilter.
// Empty input means "all".
func ParseCommentAuthorFilter(value string) (CommentAuthorFilter, error) {
	if value == "" {
		return CommentAuthorFilterAll, nil
	}
	for _, candidate := range validCommentAuthorFilters {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid comment author filter %q", value)
}
