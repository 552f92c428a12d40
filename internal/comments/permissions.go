package comments

import "github.com/yqlstore/storefront/pkg/models"

// CanEdit reports whether the actor may edit the comment: the original
// author or anyone holding admin authority. Every surface that renders an
// edit affordance must call this; the boolean logic exists nowhere else.
func CanEdit(comment models.Comment, actorID string, actorIsAdmin bool) bool {
	return actorIsAdmin || comment.AuthorID == actorID
}

// CanDelete reports whether the actor may delete the comment. Same rule as
// CanEdit, kept separate so the two affordances can diverge independently.
func CanDelete(comment models.Comment, actorID string, actorIsAdmin bool) bool {
	return actorIsAdmin || comment.AuthorID == actorID
}
