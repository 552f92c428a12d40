package notifications

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/yqlstore/storefront/pkg/enums"
	pkgerrors "github.com/yqlstore/storefront/pkg/errors"
	"github.com/yqlstore/storefront/pkg/models"
)

type fakeAPI struct {
	commentsFn func(ctx context.Context) ([]models.Comment, error)
	productsFn func(ctx context.Context) ([]models.Product, error)
}

func (f *fakeAPI) ListAllComments(ctx context.Context) ([]models.Comment, error) {
	if f.commentsFn != nil {
		return f.commentsFn(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) ListProducts(ctx context.Context) ([]models.Product, error) {
	if f.productsFn != nil {
		return f.productsFn(ctx)
	}
	return nil, nil
}

func commentAt(id, author, body string, age time.Duration, admin bool) models.Comment {
	return models.Comment{
		ID:         id,
		AuthorID:   "user_" + id,
		AuthorName: author,
		Body:       body,
		IsAdmin:    admin,
		CreatedAt:  time.Now().Add(-age),
	}
}

func TestBuildDerivesCommentNotifications(t *testing.T) {
	api := &fakeAPI{
		commentsFn: func(ctx context.Context) ([]models.Comment, error) {
			return []models.Comment{
				commentAt("c1", "Dana", "great freezer", time.Hour, false),
				commentAt("c2", "YQL Store", "thanks for the feedback", 90*time.Minute, true),
				commentAt("c3", "Omar", "ancient comment", 48*time.Hour, false),
			}, nil
		},
		productsFn: func(ctx context.Context) ([]models.Product, error) {
			return []models.Product{{ID: "p1"}}, nil
		},
	}

	feed, err := Build(context.Background(), api)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	comments := 0
	for _, n := range feed.List(enums.NotificationReadFilterAll) {
		if n.Type == enums.NotificationTypeComment {
			comments++
		}
	}
	if comments != 2 {
		t.Fatalf("expected 2 comment notifications inside the window, got %d", comments)
	}

	entries := feed.List(enums.NotificationReadFilterAll)
	if entries[0].Title != "New Comment" || entries[0].Message != "Dana commented on a product" {
		t.Fatalf("unexpected newest entry: %+v", entries[0])
	}
	if entries[1].Title != "Admin Reply" {
		t.Fatalf("admin comment should be titled as a reply: %+v", entries[1])
	}
}

func TestBuildCapsAndTruncatesCommentEntries(t *testing.T) {
	long := strings.Repeat("x", 150)
	api := &fakeAPI{
		commentsFn: func(ctx context.Context) ([]models.Comment, error) {
			var comments []models.Comment
			for i := 0; i < 8; i++ {
				comments = append(comments, commentAt(string(rune('a'+i)), "Dana", long, time.Duration(i)*time.Minute, false))
			}
			return comments, nil
		},
		productsFn: func(ctx context.Context) ([]models.Product, error) {
			return []models.Product{{ID: "p1"}}, nil
		},
	}

	feed, err := Build(context.Background(), api)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	comments := 0
	for _, n := range feed.List(enums.NotificationReadFilterAll) {
		if n.Type != enums.NotificationTypeComment {
			continue
		}
		comments++
		if len(n.Details) != 103 || !strings.HasSuffix(n.Details, "...") {
			t.Fatalf("details not truncated: %d chars", len(n.Details))
		}
	}
	if comments != 5 {
		t.Fatalf("expected comment entries capped at 5, got %d", comments)
	}
}

func TestBuildTruncatesOnRuneBoundary(t *testing.T) {
	body := strings.Repeat("x", 99) + "étagère réfrigérée"
	api := &fakeAPI{
		commentsFn: func(ctx context.Context) ([]models.Comment, error) {
			return []models.Comment{commentAt("c1", "Dana", body, time.Hour, false)}, nil
		},
		productsFn: func(ctx context.Context) ([]models.Product, error) {
			return []models.Product{{ID: "p1"}}, nil
		},
	}

	feed, err := Build(context.Background(), api)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, n := range feed.List(enums.NotificationReadFilterAll) {
		if n.Type != enums.NotificationTypeComment {
			continue
		}
		if !utf8.ValidString(n.Details) {
			t.Fatalf("details must stay valid UTF-8: %q", n.Details)
		}
		if !strings.HasSuffix(n.Details, "...") {
			t.Fatalf("details not truncated: %q", n.Details)
		}
		// The two-byte rune straddling the cut point is dropped whole.
		if want := strings.Repeat("x", 99) + "..."; n.Details != want {
			t.Fatalf("expected cut before the straddling rune, got %q", n.Details)
		}
	}
}

func TestBuildEmptyCatalogRaisesSystemNotice(t *testing.T) {
	feed, err := Build(context.Background(), &fakeAPI{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := feed.List(enums.NotificationReadFilterAll)
	if len(entries) != 1 {
		t.Fatalf("expected only the system notice, got %d entries", len(entries))
	}
	if entries[0].Type != enums.NotificationTypeSystem || entries[0].Priority != enums.NotificationPriorityHigh {
		t.Fatalf("unexpected notice: %+v", entries[0])
	}
}

func TestBuildNonEmptyCatalogRaisesStockAlert(t *testing.T) {
	api := &fakeAPI{
		productsFn: func(ctx context.Context) ([]models.Product, error) {
			return []models.Product{{ID: "p1"}, {ID: "p2"}}, nil
		},
	}

	feed, err := Build(context.Background(), api)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := feed.List(enums.NotificationReadFilterAll)
	if len(entries) != 1 || entries[0].Type != enums.NotificationTypeAlert {
		t.Fatalf("expected the stock alert, got %+v", entries)
	}
}

func TestBuildSurvivesPartialFailure(t *testing.T) {
	api := &fakeAPI{
		commentsFn: func(ctx context.Context) ([]models.Comment, error) {
			return nil, pkgerrors.New(pkgerrors.CodeDependency, "comments unreachable")
		},
		productsFn: func(ctx context.Context) ([]models.Product, error) {
			return []models.Product{{ID: "p1"}}, nil
		},
	}

	feed, err := Build(context.Background(), api)
	if err == nil {
		t.Fatal("expected the comment failure to surface")
	}
	if feed == nil {
		t.Fatal("partial feed must still be returned")
	}
	if entries := feed.List(enums.NotificationReadFilterAll); len(entries) != 1 {
		t.Fatalf("expected the catalog entry to survive, got %d", len(entries))
	}
}

func TestReadStateTransitions(t *testing.T) {
	api := &fakeAPI{
		commentsFn: func(ctx context.Context) ([]models.Comment, error) {
			return []models.Comment{
				commentAt("c1", "Dana", "one", time.Hour, false),
				commentAt("c2", "Omar", "two", 2*time.Hour, false),
			}, nil
		},
		productsFn: func(ctx context.Context) ([]models.Product, error) {
			return []models.Product{{ID: "p1"}}, nil
		},
	}

	feed, err := Build(context.Background(), api)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if feed.UnreadCount() != 3 {
		t.Fatalf("expected 3 unread, got %d", feed.UnreadCount())
	}

	first := feed.List(enums.NotificationReadFilterAll)[0]
	feed.MarkRead(first.ID)
	if feed.UnreadCount() != 2 {
		t.Fatalf("expected 2 unread after MarkRead, got %d", feed.UnreadCount())
	}
	if read := feed.List(enums.NotificationReadFilterRead); len(read) != 1 || read[0].ID != first.ID {
		t.Fatalf("read filter mismatch: %+v", read)
	}

	feed.MarkRead("nope") // unknown id is a no-op
	if feed.UnreadCount() != 2 {
		t.Fatalf("unknown id must not change state, got %d unread", feed.UnreadCount())
	}

	feed.MarkAllRead()
	if feed.UnreadCount() != 0 {
		t.Fatalf("expected 0 unread after MarkAllRead, got %d", feed.UnreadCount())
	}
	if unread := feed.List(enums.NotificationReadFilterUnread); len(unread) != 0 {
		t.Fatalf("unread filter should be empty, got %+v", unread)
	}
}

func TestDeleteRemovesEntry(t *testing.T) {
	api := &fakeAPI{
		productsFn: func(ctx context.Context) ([]models.Product, error) {
			return []models.Product{{ID: "p1"}}, nil
		},
	}

	feed, err := Build(context.Background(), api)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := feed.List(enums.NotificationReadFilterAll)
	feed.Delete(entries[0].ID)
	if got := feed.List(enums.NotificationReadFilterAll); len(got) != 0 {
		t.Fatalf("expected empty feed after delete, got %+v", got)
	}

	feed.Delete("nope") // deleting again is a no-op
}
