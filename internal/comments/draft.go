package comments

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	pkgerrors "github.com/yqlstore/storefront/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// Draft is client-side, unpersisted comment content pending validation and
// submission. Its ID keys the in-flight submission guard; it never reaches
// the backend.
type Draft struct {
	ID              string
	AuthorName      string
	Body            string
	ParentCommentID *string
}

// NewDraft creates a draft with a fresh guard id.
func NewDraft(authorName, body string, parentCommentID *string) Draft {
	return Draft{
		ID:              uuid.NewString(),
		AuthorName:      authorName,
		Body:            body,
		ParentCommentID: parentCommentID,
	}
}

// FieldErrors maps field names to human-readable validation messages. An
// empty map means the draft is valid.
type FieldErrors map[string]string

// Valid reports whether no field failed validation.
func (f FieldErrors) Valid() bool {
	return len(f) == 0
}

// AsError converts the field errors into the shared error taxonomy, or nil
// when valid.
func (f FieldErrors) AsError() error {
	if f.Valid() {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "comment draft is invalid").WithDetails(map[string]string(f))
}

type userDraftPayload struct {
	AuthorName string `json:"userName" validate:"required,max=50"`
	Body       string `json:"content" validate:"required,max=1000"`
}

type adminDraftPayload struct {
	Body string `json:"content" validate:"required,max=1000"`
}

// ValidateDraft checks the draft fields without any I/O. The author name is
// only required when requireAuthorName is set: admin authors get the fixed
// store identity, and edits keep the original name. Lengths are measured on
// the trimmed value.
func ValidateDraft(draft Draft, requireAuthorName bool) FieldErrors {
	body := strings.TrimSpace(draft.Body)

	var err error
	if requireAuthorName {
		err = validate.Struct(userDraftPayload{
			AuthorName: strings.TrimSpace(draft.AuthorName),
			Body:       body,
		})
	} else {
		err = validate.Struct(adminDraftPayload{Body: body})
	}
	if err == nil {
		return FieldErrors{}
	}

	fields := FieldErrors{}
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range errs {
			fields[fieldErr.Field()] = validationMessage(fieldErr)
		}
		return fields
	}
	fields["content"] = "is invalid"
	return fields
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("cannot exceed %s characters", fe.Param())
	}
	return "is invalid"
}
