package cv

import (
	"context"
	"errors"
	"strings"

	errorslib "github.com/goliatone/go-errors"
)

// ErrorKind defines generation error kinds.
type ErrorKind string

const (
	KindValidation           ErrorKind = "validation"
	KindTemplateNotFound     ErrorKind = "template_not_found"
	KindTemplateIncompatible ErrorKind = "template_incompatible"
	KindTimeout              ErrorKind = "timeout"
	KindEngine               ErrorKind = "engine"
	KindInternal             ErrorKind = "internal"
)

// GenerationError wraps errors with a kind and optional field-level details.
type GenerationError struct {
	Kind    ErrorKind
	Msg     string
	Details []string
	Err     error
}

func (e *GenerationError) Error() string {
	msg := e.Msg
	if len(e.Details) > 0 {
		msg += " (" + strings.Join(e.Details, "; ") + ")"
	}
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewError creates a new generation error.
func NewError(kind ErrorKind, msg string, err error) *GenerationError {
	return &GenerationError{Kind: kind, Msg: msg, Err: err}
}

// NewDetailError creates a generation error carrying field-level messages.
func NewDetailError(kind ErrorKind, msg string, details []string) *GenerationError {
	return &GenerationError{Kind: kind, Msg: msg, Details: details}
}

// AsGoError maps an error into a go-errors error.
func AsGoError(err error) *errorslib.Error {
	if err == nil {
		return nil
	}

	var ge *errorslib.Error
	if errors.As(err, &ge) {
		return ge
	}

	kind := KindFromError(err)
	msg := err.Error()

	var genErr *GenerationError
	if errors.As(err, &genErr) && genErr.Msg != "" {
		msg = genErr.Msg
	}

	switch kind {
	case KindValidation:
		return errorslib.New(msg, errorslib.CategoryValidation).WithTextCode("validation")
	case KindTemplateNotFound:
		return errorslib.New(msg, errorslib.CategoryNotFound).WithTextCode("template_not_found")
	case KindTemplateIncompatible:
		return errorslib.New(msg, errorslib.CategoryConflict).WithTextCode("template_incompatible")
	case KindTimeout:
		return errorslib.New(msg, errorslib.CategoryOperation).WithTextCode("timeout")
	case KindEngine:
		return errorslib.New(msg, errorslib.CategoryExternal).WithTextCode("engine")
	default:
		return errorslib.New(msg, errorslib.CategoryInternal).WithTextCode("internal")
	}
}

// KindFromError maps an error to its generation error kind.
func KindFromError(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}

	return KindInternal
}

// ErrorDetails returns field-level messages carried by a generation error.
func ErrorDetails(err error) []string {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Details
	}
	return nil
}
