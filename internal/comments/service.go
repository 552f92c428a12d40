package comments

import (
	"context"
	"strings"
	"sync"

	"github.com/yqlstore/storefront/pkg/auth"
	pkgerrors "github.com/yqlstore/storefront/pkg/errors"
	"github.com/yqlstore/storefront/pkg/models"
	"github.com/yqlstore/storefront/pkg/storeapi"
)

// API is the slice of the backend client the comment service consumes.
type API interface {
	ListComments(ctx context.Context, productID string) ([]models.Comment, error)
	ListAllComments(ctx context.Context) ([]models.Comment, error)
	CreateComment(ctx context.Context, productID string, req storeapi.CreateCommentRequest) (*models.Comment, error)
	UpdateComment(ctx context.Context, commentID string, req storeapi.UpdateCommentRequest, actor storeapi.Actor) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID string, actor storeapi.Actor) error
}

// Service drives the comment lifecycle: Draft -> Submitted -> Persisted ->
// Edited* -> Deleted. Drafts are validated locally before any network work,
// and a per-draft guard rejects a second submit while one is in flight.
type Service interface {
	ListForProduct(ctx context.Context, productID string) ([]Thread, error)
	ListAll(ctx context.Context) ([]models.Comment, error)
	Submit(ctx context.Context, productID string, draft Draft, actor auth.Authority) (*models.Comment, error)
	Update(ctx context.Context, original models.Comment, newBody string, actor auth.Authority) (*models.Comment, error)
	Delete(ctx context.Context, comment models.Comment, actor auth.Authority) error
}

type service struct {
	api       API
	storeName string

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewService wires the comment model against the backend client.
func NewService(api API, storeDisplayName string) (Service, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "backend client required")
	}
	if strings.TrimSpace(storeDisplayName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "store display name required")
	}
	return &service{
		api:       api,
		storeName: storeDisplayName,
		inFlight:  map[string]struct{}{},
	}, nil
}

func (s *service) ListForProduct(ctx context.Context, productID string) ([]Thread, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	comments, err := s.api.ListComments(ctx, productID)
	if err != nil {
		return nil, err
	}
	return BuildThreads(comments), nil
}

func (s *service) ListAll(ctx context.Context) ([]models.Comment, error) {
	return s.api.ListAllComments(ctx)
}

func (s *service) Submit(ctx context.Context, productID string, draft Draft, actor auth.Authority) (*models.Comment, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	if fieldErrs := ValidateDraft(draft, !actor.IsAdmin); !fieldErrs.Valid() {
		return nil, fieldErrs.AsError()
	}

	if err := s.acquire(draft.ID); err != nil {
		return nil, err
	}
	defer s.release(draft.ID)

	payload := BuildCreatePayload(draft, actor, s.storeName)
	created, err := s.api.CreateComment(ctx, productID, payload)
	if err != nil {
		return nil, err
	}
	// A caller that abandoned the submit must not apply the late result.
	if ctx.Err() != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, ctx.Err(), "submission abandoned")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, original models.Comment, newBody string, actor auth.Authority) (*models.Comment, error) {
	if !CanEdit(original, actor.ActorID, actor.IsAdmin) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "not permitted to edit this comment")
	}

	draft := Draft{AuthorName: original.AuthorName, Body: newBody}
	if fieldErrs := ValidateDraft(draft, false); !fieldErrs.Valid() {
		return nil, fieldErrs.AsError()
	}

	payload := BuildUpdatePayload(original, newBody)
	return s.api.UpdateComment(ctx, original.ID, payload, storeapi.Actor{
		UserID:  actor.ActorID,
		IsAdmin: actor.IsAdmin,
	})
}

func (s *service) Delete(ctx context.Context, comment models.Comment, actor auth.Authority) error {
	if !CanDelete(comment, actor.ActorID, actor.IsAdmin) {
		return pkgerrors.New(pkgerrors.CodeForbidden, "not permitted to delete this comment")
	}
	return s.api.DeleteComment(ctx, comment.ID, storeapi.Actor{
		UserID:  actor.ActorID,
		IsAdmin: actor.IsAdmin,
	})
}

// acquire marks the draft as in flight; a second submit for the same draft
// is rejected until the first resolves.
func (s *service) acquire(draftID string) error {
	if strings.TrimSpace(draftID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "draft id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[draftID]; busy {
		return pkgerrors.New(pkgerrors.CodeConflict, "submission already in flight for this draft")
	}
	s.inFlight[draftID] = struct{}{}
	return nil
}

func (s *service) release(draftID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, draftID)
}
