package pagination

import "testing"

func TestNormalizePerPage(t *testing.T) {
	if got := NormalizePerPage(0); got != DefaultPerPage {
		t.Fatalf("expected default for zero, got %d", got)
	}
	if got := NormalizePerPage(-3); got != DefaultPerPage {
		t.Fatalf("expected default for negative, got %d", got)
	}
	if got := NormalizePerPage(500); got != MaxPerPage {
		t.Fatalf("expected cap, got %d", got)
	}
	if got := NormalizePerPage(25); got != 25 {
		t.Fatalf("expected passthrough, got %d", got)
	}
}

func TestPaginateWindows(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	first := Paginate(items, 1, 10)
	if len(first.Items) != 10 || first.Items[0] != 0 {
		t.Fatalf("unexpected first page: %+v", first)
	}
	if first.TotalItems != 25 || first.TotalPages != 3 {
		t.Fatalf("unexpected bounds: %+v", first)
	}
	if first.HasPrev() || !first.HasNext() {
		t.Fatalf("unexpected nav flags on first page: %+v", first)
	}

	last := Paginate(items, 3, 10)
	if len(last.Items) != 5 || last.Items[0] != 20 {
		t.Fatalf("unexpected last page: %+v", last)
	}
	if !last.HasPrev() || last.HasNext() {
		t.Fatalf("unexpected nav flags on last page: %+v", last)
	}
}

func TestPaginatePastTheEnd(t *testing.T) {
	page := Paginate([]string{"a", "b"}, 9, 10)
	if len(page.Items) != 0 {
		t.Fatalf("expected empty page, got %+v", page.Items)
	}
	if page.TotalPages != 1 || page.TotalItems != 2 {
		t.Fatalf("bounds must survive, got %+v", page)
	}
}

func TestPaginateEmptySlice(t *testing.T) {
	page := Paginate([]string(nil), 1, 10)
	if len(page.Items) != 0 || page.TotalPages != 1 {
		t.Fatalf("unexpected empty-input page: %+v", page)
	}
}

func TestPaginateClampsPageNumber(t *testing.T) {
	page := Paginate([]int{1, 2, 3}, 0, 2)
	if page.PageNumber != 1 || len(page.Items) != 2 {
		t.Fatalf("expected clamp to first page, got %+v", page)
	}
}
