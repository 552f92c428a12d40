package storeapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkgerrors "github.com/yqlstore/storefront/pkg/errors"
	"github.com/yqlstore/storefront/pkg/models"
)

// Actor identifies who is driving a moderation request. The backend is the
// final authority on whether the actor may touch the comment.
type Actor struct {
	UserID  string `json:"userId"`
	IsAdmin bool   `json:"isAdmin"`
}

// CreateCommentRequest is the submission payload for a new comment or reply.
type CreateCommentRequest struct {
	Content         string  `json:"content"`
	UserName        string  `json:"userName"`
	UserID          string  `json:"userId"`
	ParentCommentID *string `json:"parentCommentId,omitempty"`
	IsAdmin         bool    `json:"isAdmin"`
}

// UpdateCommentRequest carries an edit. Everything except Content mirrors the
// original comment unchanged; the backend sets the edited flag itself.
type UpdateCommentRequest struct {
	Content         string    `json:"content"`
	UserID          string    `json:"userId"`
	UserName        string    `json:"userName,omitempty"`
	IsAdmin         bool      `json:"isAdmin"`
	ParentCommentID *string   `json:"parentCommentId,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}

type updateCommentBody struct {
	UpdateCommentRequest
	ActorID      string `json:"actorId"`
	ActorIsAdmin bool   `json:"actorIsAdmin"`
}

// ListComments fetches the comment thread for one product. Order is decided
// by the backend and preserved here.
func (c *Client) ListComments(ctx context.Context, productID string) ([]models.Comment, error) {
	trimmed := strings.TrimSpace(productID)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	var comments []models.Comment
	if err := c.do(ctx, "list_comments", http.MethodGet, "/api/comments/"+url.PathEscape(trimmed), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// ListAllComments fetches every comment across products for the admin panel.
func (c *Client) ListAllComments(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.do(ctx, "list_all_comments", http.MethodGet, "/api/comments/admin/all", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment submits a new comment and returns the persisted record with
// its server-assigned id and timestamp.
func (c *Client) CreateComment(ctx context.Context, productID string, req CreateCommentRequest) (*models.Comment, error) {
	trimmed := strings.TrimSpace(productID)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	var created models.Comment
	if err := c.do(ctx, "create_comment", http.MethodPost, "/api/comments/"+url.PathEscape(trimmed), req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateComment sends an edit along with the actor's identity for
// authorization. The returned record carries edited=true.
func (c *Client) UpdateComment(ctx context.Context, commentID string, req UpdateCommentRequest, actor Actor) (*models.Comment, error) {
	trimmed := strings.TrimSpace(commentID)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "comment id is required")
	}

	body := updateCommentBody{
		UpdateCommentRequest: req,
		ActorID:              actor.UserID,
		ActorIsAdmin:         actor.IsAdmin,
	}

	var updated models.Comment
	if err := c.do(ctx, "update_comment", http.MethodPut, "/api/comments/"+url.PathEscape(trimmed), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteComment removes a comment on behalf of the actor.
func (c *Client) DeleteComment(ctx context.Context, commentID string, actor Actor) error {
	trimmed := strings.TrimSpace(commentID)
	if trimmed == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "comment id is required")
	}
	return c.do(ctx, "delete_comment", http.MethodDelete, "/api/comments/"+url.PathEscape(trimmed), actor, nil)
}
