package comments

import (
	"github.com/yqlstore/storefront/pkg/models"
	"github.com/yqlstore/storefront/pkg/pagination"
)

// ModerationPage filters the full comment list and slices one page for the
// admin moderation panel.
func ModerationPage(comments []models.Comment, f Filter, pageNumber, perPage int) pagination.Page[models.Comment] {
	return pagination.Paginate(Apply(comments, f), pageNumber, perPage)
}
