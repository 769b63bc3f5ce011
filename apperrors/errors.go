// Package apperrors defines the error taxonomy surfaced by the API.
// Handlers and the ledger return *Error values; the central Fiber error
// handler maps them onto HTTP statuses and the {"error": ...} envelope.
package apperrors

import (
	"fmt"
	"net/http"
)

// Kind identifies the failure class of an Error.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindAuth              Kind = "auth"
	KindNotFound          Kind = "not_found"
	KindInsufficientStock Kind = "insufficient_stock"
	KindStore             Kind = "store"
)

// Error carries a failure class, a user-facing message and the wrapped
// cause. The cause is logged server-side but never serialized.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status this error maps to.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindInsufficientStock:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Validation reports bad or missing request input.
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Auth reports rejected credentials or a missing/invalid session.
func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

// NotFound reports a missing referenced row.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// InsufficientStock reports a sale that would drive a product's stock
// negative.
func InsufficientStock(productID uint, available, requested int) *Error {
	return &Error{
		Kind: KindInsufficientStock,
		Message: fmt.Sprintf("insufficient stock for product %d: have %d, requested %d",
			productID, available, requested),
	}
}

// Store wraps an underlying database failure. The cause stays
// server-side; callers see only the message.
func Store(message string, err error) *Error {
	return &Error{Kind: KindStore, Message: message, Err: err}
}
