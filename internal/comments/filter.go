package comments

import (
	"strings"

	"github.com/yqlstore/storefront/pkg/enums"
	"github.com/yqlstore/storefront/pkg/models"
)

// ProductFilterAll disables product scoping in the admin panel filter.
const ProductFilterAll = "all"

// Filter narrows the admin moderation panel's comment list. All three
// criteria are conjunctive.
type Filter struct {
	// Search matches case-insensitively against body or author name.
	Search string
	// Author selects admin-authored, user-authored, or all comments.
	Author enums.CommentAuthorFilter
	// ProductID restricts to one product; empty or "all" means every product.
	ProductID string
}

// Apply returns the comments matching every criterion, preserving order.
func Apply(comments []models.Comment, f Filter) []models.Comment {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	author := f.Author
	if author == "" {
		author = enums.CommentAuthorFilterAll
	}
	productID := f.ProductID
	if productID == ProductFilterAll {
		productID = ""
	}

	matched := make([]models.Comment, 0, len(comments))
	for _, c := range comments {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Body), search) &&
			!strings.Contains(strings.ToLower(c.AuthorName), search) {
			continue
		}
		if author == enums.CommentAuthorFilterAdmin && !c.IsAdmin {
			continue
		}
		if author == enums.CommentAuthorFilterUser && c.IsAdmin {
			continue
		}
		if productID != "" && c.ProductID != productID {
			continue
		}
		matched = append(matched, c)
	}
	return matched
}
