package comments

import "github.com/yqlstore/storefront/pkg/models"

// Thread pairs a top-level comment with its replies. The UI renders exactly
// one level of nesting, so replies-of-replies are flattened under the
// top-level ancestor here at the boundary instead of recursing into the view.
type Thread struct {
	TopLevel models.Comment
	Replies  []models.Comment
}

// BuildThreads shapes the backend's comment list into one-level threads.
// The backend may return replies embedded in Replies, linked through
// ParentCommentID, or both; ordering within a level follows the backend's
// order. A reply whose parent is missing or belongs to another product is
// promoted to top level rather than dropped.
func BuildThreads(comments []models.Comment) []Thread {
	flat := make([]models.Comment, 0, len(comments))
	flatten(comments, nil, &flat)

	byID := make(map[string]models.Comment, len(flat))
	for _, c := range flat {
		byID[c.ID] = c
	}

	threads := make([]Thread, 0, len(flat))
	threadIdx := map[string]int{}
	promote := func(c models.Comment) {
		threadIdx[c.ID] = len(threads)
		threads = append(threads, Thread{TopLevel: c})
	}

	for _, c := range flat {
		if !c.IsReply() {
			promote(c)
			continue
		}

		ancestorID, ok := topLevelAncestor(c, byID)
		if !ok {
			promote(c)
			continue
		}
		if parent := byID[ancestorID]; parent.ProductID != c.ProductID {
			promote(c)
			continue
		}

		idx, seen := threadIdx[ancestorID]
		if !seen {
			// Parent appears later in the backend's order; create its
			// thread slot now so the reply is not lost.
			promote(byID[ancestorID])
			idx = threadIdx[ancestorID]
		}
		threads[idx].Replies = append(threads[idx].Replies, c)
	}

	// Drop placeholder threads for top-level comments the loop will still
	// visit: promote() may have created them early, and the visit would
	// otherwise duplicate the entry. Promotion order already matches the
	// backend order, so a second visit is simply skipped.
	return dedupe(threads)
}

// flatten walks nested Replies depth-first, stamping the parent link on the
// way down and clearing the nested slices.
func flatten(comments []models.Comment, parentID *string, out *[]models.Comment) {
	for _, c := range comments {
		replies := c.Replies
		c.Replies = nil
		if c.ParentCommentID == nil && parentID != nil {
			id := *parentID
			c.ParentCommentID = &id
		}
		*out = append(*out, c)
		if len(replies) > 0 {
			flatten(replies, &c.ID, out)
		}
	}
}

// topLevelAncestor follows the parent chain to the root. A broken chain or a
// cycle reports failure so the caller can promote the comment instead.
func topLevelAncestor(c models.Comment, byID map[string]models.Comment) (string, bool) {
	visited := map[string]struct{}{c.ID: {}}
	current := c
	for current.IsReply() {
		parent, ok := byID[*current.ParentCommentID]
		if !ok {
			return "", false
		}
		if _, cycle := visited[parent.ID]; cycle {
			return "", false
		}
		visited[parent.ID] = struct{}{}
		current = parent
	}
	return current.ID, true
}

func dedupe(threads []Thread) []Thread {
	seen := map[string]int{}
	out := make([]Thread, 0, len(threads))
	for _, th := range threads {
		if idx, dup := seen[th.TopLevel.ID]; dup {
			out[idx].Replies = append(out[idx].Replies, th.Replies...)
			continue
		}
		seen[th.TopLevel.ID] = len(out)
		out = append(out, th)
	}
	return out
}
