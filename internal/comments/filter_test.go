package comments

import (
	"testing"

	"github.com/yqlstore/storefront/pkg/enums"
	"github.com/yqlstore/storefront/pkg/models"
)

func sampleComments() []models.Comment {
	return []models.Comment{
		{ID: "c1", ProductID: "p1", AuthorName: "Dana", Body: "Great washer, quiet spin cycle"},
		{ID: "c2", ProductID: "p1", AuthorName: "YQL Store", Body: "Thanks! Restocked this week.", IsAdmin: true},
		{ID: "c3", ProductID: "p2", AuthorName: "Marco", Body: "Fridge arrived dented"},
	}
}

func TestApplySearchMatchesBodyOrAuthorCaseInsensitively(t *testing.T) {
	got := Apply(sampleComments(), Filter{Search: "WASHER"})
	if len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("expected body match, got %+v", got)
	}

	got = Apply(sampleComments(), Filter{Search: "marco"})
	if len(got) != 1 || got[0].ID != "c3" {
		t.Fatalf("expected author match, got %+v", got)
	}
}

func TestApplyAuthorFilter(t *testing.T) {
	got := Apply(sampleComments(), Filter{Author: enums.CommentAuthorFilterAdmin})
	if len(got) != 1 || got[0].ID != "c2" {
		t.Fatalf("expected only admin comment, got %+v", got)
	}

	got = Apply(sampleComments(), Filter{Author: enums.CommentAuthorFilterUser})
	if len(got) != 2 {
		t.Fatalf("expected two user comments, got %+v", got)
	}
}

func TestApplyProductFilter(t *testing.T) {
	got := Apply(sampleComments(), Filter{ProductID: "p2"})
	if len(got) != 1 || got[0].ID != "c3" {
		t.Fatalf("expected p2 comment, got %+v", got)
	}

	if got := Apply(sampleComments(), Filter{ProductID: ProductFilterAll}); len(got) != 3 {
		t.Fatalf("\"all\" must not restrict, got %d", len(got))
	}
}

func TestApplyFiltersAreConjunctive(t *testing.T) {
	got := Apply(sampleComments(), Filter{
		Search:    "restocked",
		Author:    enums.CommentAuthorFilterAdmin,
		ProductID: "p1",
	})
	if len(got) != 1 || got[0].ID != "c2" {
		t.Fatalf("expected single conjunctive match, got %+v", got)
	}

	got = Apply(sampleComments(), Filter{
		Search:    "restocked",
		Author:    enums.CommentAuthorFilterUser,
		ProductID: "p1",
	})
	if len(got) != 0 {
		t.Fatalf("conjunction must fail when one criterion fails, got %+v", got)
	}
}

func TestApplyEmptyFilterPreservesOrder(t *testing.T) {
	got := Apply(sampleComments(), Filter{})
	if len(got) != 3 {
		t.Fatalf("expected all comments, got %d", len(got))
	}
	for i, id := range []string{"c1", "c2", "c3"} {
		if got[i].ID != id {
			t.Fatalf("order changed: %+v", got)
		}
	}
}
