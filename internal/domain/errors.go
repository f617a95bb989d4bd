package domain

import "errors"

// ErrorKind classifies a domain error so callers can branch on the failure
// (e.g. render "out of stock" vs. a generic error).
type ErrorKind string

const (
	KindInvalidArgument   ErrorKind = "INVALID_ARGUMENT"
	KindNotFound          ErrorKind = "NOT_FOUND"
	KindInsufficientStock ErrorKind = "INSUFFICIENT_STOCK"
	KindPermissionDenied  ErrorKind = "PERMISSION_DENIED"
	KindStorage           ErrorKind = "STORAGE_FAILURE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(kind ErrorKind, message string) *DomainError {
	return &DomainError{Kind: kind, Message: message}
}

// Custom errors
var (
	ErrProductNotFound   = NewDomainError(KindNotFound, "product not found")
	ErrInsufficientStock = NewDomainError(KindInsufficientStock, "insufficient stock")
	ErrPermissionDenied  = NewDomainError(KindPermissionDenied, "admin privilege required")
	ErrAdminNotFound     = NewDomainError(KindNotFound, "admin user not found")
)

// ErrInvalidArgument builds an invalid-argument error with a caller-facing message.
func ErrInvalidArgument(message string) *DomainError {
	return NewDomainError(KindInvalidArgument, message)
}

// KindOf extracts the ErrorKind from an error chain. Errors that are not
// DomainErrors are treated as storage failures.
func KindOf(err error) ErrorKind {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindStorage
}
