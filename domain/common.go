package domain

import (
	"errors"
	"fmt"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageNotAuthorized        = "401: Not Authorized"
	MessageInternalError        = "internal server error"

	ErrNotAuthorized = &AppError{Kind: KindNotAuthorized, Message: "not authorized"}
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindMissingField
	KindInvalidFormat
	KindDomainValidation
	KindNotFound
	KindConflict
	KindNotAuthorized
	KindUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingField:
		return "missing_field"
	case KindInvalidFormat:
		return "invalid_format"
	case KindDomainValidation:
		return "domain_validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindNotAuthorized:
		return "not_authorized"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// AppError carries the error class a handler needs to pick a status code.
// Sentinel AppErrors are compared by identity with errors.Is.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewMissingField(field string) *AppError {
	return &AppError{Kind: KindMissingField, Message: fmt.Sprintf("Missing field: %s", field)}
}

func NewInvalidFormat(field string, err error) *AppError {
	return &AppError{
		Kind:    KindInvalidFormat,
		Message: fmt.Sprintf("Invalid date format for %s. Please use YYYY-MM-DD", field),
		Err:     err,
	}
}

func NewConflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewInternal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: MessageInternalError, Err: err}
}

// KindOf classifies err. Anything that is neither an AppError nor a
// ValidationError is an internal failure.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return KindDomainValidation
	}
	return KindInternal
}
