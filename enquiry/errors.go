package enquiry

import (
	"context"
	"errors"

	errorslib "github.com/goliatone/go-errors"
)

// ErrorKind defines enquiry error kinds.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindTimeout    ErrorKind = "timeout"
	KindCanceled   ErrorKind = "canceled"
	KindInternal   ErrorKind = "internal"
)

// EnquiryError wraps errors with a kind. Validation errors carry the first
// offending field so transports can report it by name.
type EnquiryError struct {
	Kind  ErrorKind
	Msg   string
	Field string
	Err   error
}

func (e *EnquiryError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *EnquiryError) Unwrap() error {
	return e.Err
}

// NewError creates a new enquiry error.
func NewError(kind ErrorKind, msg string, err error) *EnquiryError {
	return &EnquiryError{Kind: kind, Msg: msg, Err: err}
}

// NewMissingFieldError reports a required field that was absent or blank.
func NewMissingFieldError(field string) *EnquiryError {
	return &EnquiryError{Kind: KindValidation, Msg: "Missing field: " + field, Field: field}
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

	kind := KindInternal
	msg := err.Error()

	var enqErr *EnquiryError
	if errors.As(err, &enqErr) {
		kind = enqErr.Kind
		if enqErr.Msg != "" {
			msg = enqErr.Msg
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		kind = KindTimeout
	}
	if errors.Is(err, context.Canceled) {
		kind = KindCanceled
	}

	switch kind {
	case KindValidation:
		return errorslib.New(msg, errorslib.CategoryValidation).WithTextCode("validation")
	case KindTimeout:
		return errorslib.New(msg, errorslib.CategoryOperation).WithTextCode("timeout")
	case KindCanceled:
		return errorslib.New(msg, errorslib.CategoryOperation).WithTextCode("canceled")
	default:
		return errorslib.New(msg, errorslib.CategoryInternal).WithTextCode("internal")
	}
}

// KindFromError maps an error to its enquiry error kind.
func KindFromError(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var enqErr *EnquiryError
	if errors.As(err, &enqErr) {
		return enqErr.Kind
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	if errors.Is(err, context.Canceled) {
		return KindCanceled
	}

	return KindInternal
}
