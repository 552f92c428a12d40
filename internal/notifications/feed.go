package notifications

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/yqlstore/storefront/pkg/enums"
	pkgerrors "github.com/yqlstore/storefront/pkg/errors"
	"github.com/yqlstore/storefront/pkg/models"
)

const (
	// recentCommentWindow bounds how far back comment notifications reach.
	recentCommentWindow = 24 * time.Hour
	// maxCommentNotifications caps the comment entries per build.
	maxCommentNotifications = 5
	// detailsLimit truncates long comment bodies in the feed.
	detailsLimit = 100
)

// Notification is one entry in the admin feed.
type Notification struct {
	ID        string
	Type      enums.NotificationType
	Priority  enums.NotificationPriority
	Title     string
	Message   string
	Details   string
	Timestamp time.Time
	Read      bool
}

// API is the slice of the backend the feed builder consumes.
type API interface {
	ListAllComments(ctx context.Context) ([]models.Comment, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// Feed holds the built notifications and their read state.
type Feed struct {
	mu      sync.Mutex
	entries []Notification
}

// Build fetches comments and products and derives the admin feed. The two
// fetches fail independently: a partial feed is returned alongside the
// combined error so the panel can still render what it has.
func Build(ctx context.Context, api API) (*Feed, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "backend client required")
	}

	var buildErr error
	feed := &Feed{}
	now := time.Now()

	comments, err := api.ListAllComments(ctx)
	if err != nil {
		buildErr = multierr.Append(buildErr, err)
	} else {
		feed.entries = append(feed.entries, commentNotifications(comments, now)...)
	}

	products, err := api.ListProducts(ctx)
	if err != nil {
		buildErr = multierr.Append(buildErr, err)
	} else {
		feed.entries = append(feed.entries, catalogNotifications(products, now)...)
	}

	sort.SliceStable(feed.entries, func(i, j int) bool {
		return feed.entries[i].Timestamp.After(feed.entries[j].Timestamp)
	})
	return feed, buildErr
}

func commentNotifications(comments []models.Comment, now time.Time) []Notification {
	recent := make([]models.Comment, 0, len(comments))
	cutoff := now.Add(-recentCommentWindow)
	for _, c := range comments {
		if c.CreatedAt.After(cutoff) {
			recent = append(recent, c)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > maxCommentNotifications {
		recent = recent[:maxCommentNotifications]
	}

	entries := make([]Notification, 0, len(recent))
	for _, c := range recent {
		title := "New Comment"
		if c.IsAdmin {
			title = "Admin Reply"
		}
		entries = append(entries, Notification{
			ID:        uuid.NewString(),
			Type:      enums.NotificationTypeComment,
			Priority:  enums.NotificationPriorityMedium,
			Title:     title,
			Message:   c.AuthorName + " commented on a product",
			Details:   truncate(c.Body, detailsLimit),
			Timestamp: c.CreatedAt,
		})
	}
	return entries
}

func catalogNotifications(products []models.Product, now time.Time) []Notification {
	if len(products) == 0 {
		return []Notification{{
			ID:        uuid.NewString(),
			Type:      enums.NotificationTypeSystem,
			Priority:  enums.NotificationPriorityHigh,
			Title:     "No Products Available",
			Message:   "The catalog is empty; customers cannot browse or buy.",
			Timestamp: now,
		}}
	}
	return []Notification{{
		ID:        uuid.NewString(),
		Type:      enums.NotificationTypeAlert,
		Priority:  enums.NotificationPriorityHigh,
		Title:     "Low Stock Alert",
		Message:   "Some products may be running low on stock.",
		Timestamp: now.Add(-2 * time.Hour),
	}}
}

// truncate cuts long bodies at a rune boundary so Details stays valid UTF-8.
func truncate(body string, limit int) string {
	trimmed := strings.TrimSpace(body)
	if len(trimmed) <= limit {
		return trimmed
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(trimmed[cut]) {
		cut--
	}
	return trimmed[:cut] + "..."
}

// List returns the entries matching the read filter, newest first.
func (f *Feed) List(filter enums.NotificationReadFilter) []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Notification, 0, len(f.entries))
	for _, n := range f.entries {
		switch filter {
		case enums.NotificationReadFilterUnread:
			if n.Read {
				continue
			}
		case enums.NotificationReadFilterRead:
			if !n.Read {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

// UnreadCount reports how many entries are still unread.
func (f *Feed) UnreadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, n := range f.entries {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flags one entry as read. Unknown ids are a no-op.
func (f *Feed) MarkRead(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries[i].Read = true
			return
		}
	}
}

// MarkAllRead flags every entry as read.
func (f *Feed) MarkAllRead() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.entries {
		f.entries[i].Read = true
	}
}

// Delete removes one entry. Unknown ids are a no-op.
func (f *Feed) Delete(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return
		}
	}
}
