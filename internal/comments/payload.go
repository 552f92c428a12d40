package comments

import (
	"strings"

	"github.com/yqlstore/storefront/pkg/auth"
	"github.com/yqlstore/storefront/pkg/models"
	"github.com/yqlstore/storefront/pkg/storeapi"
)

// BuildCreatePayload assembles the submission for a new comment or reply.
// Admin authors never get a user-supplied display name; the fixed store
// identity is stamped on instead.
func BuildCreatePayload(draft Draft, actor auth.Authority, storeDisplayName string) storeapi.CreateCommentRequest {
	name := strings.TrimSpace(draft.AuthorName)
	if actor.IsAdmin {
		name = storeDisplayName
		if strings.TrimSpace(actor.DisplayName) != "" {
			name = actor.DisplayName
		}
	}

	return storeapi.CreateCommentRequest{
		Content:         strings.TrimSpace(draft.Body),
		UserName:        name,
		UserID:          actor.ActorID,
		ParentCommentID: draft.ParentCommentID,
		IsAdmin:         actor.IsAdmin,
	}
}

// BuildUpdatePayload assembles an edit. Only the body changes; author
// identity, the admin-authored flag, creation time, and thread position are
// carried through from the original untouched. The edited flag is the
// backend's to set.
func BuildUpdatePayload(original models.Comment, newBody string) storeapi.UpdateCommentRequest {
	return storeapi.UpdateCommentRequest{
		Content:         strings.TrimSpace(newBody),
		UserID:          original.AuthorID,
		UserName:        original.AuthorName,
		IsAdmin:         original.IsAdmin,
		ParentCommentID: original.ParentCommentID,
		CreatedAt:       original.CreatedAt,
	}
}
