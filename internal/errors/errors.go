// Package errors provides the application error type shared by the store,
// the services and the HTTP adapter. Every service-layer failure is an
// *AppError so callers can branch on a stable code and kind without parsing
// messages, and so store internals never reach a client.
package errors

import (
	stderrors "errors"
	"net/http"
)

// Kind classifies an AppError into one of the three failure families.
type Kind string

const (
	// KindValidation marks missing or invalid caller input.
	KindValidation Kind = "validation"
	// KindNotFound marks a reference to a record id that does not exist.
	KindNotFound Kind = "not_found"
	// KindStore marks a failure of the underlying storage engine.
	KindStore Kind = "store"
)

// AppError represents a structured application error with an error code,
// human-readable message, kind, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Kind       Kind   `json:"-"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an *AppError with the same code, so a wrapped
// or re-messaged copy still matches its sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Kind:       sentinel.Kind,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		Kind:       sentinel.Kind,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// KindOf returns the kind of err, or KindStore for anything that is not an
// *AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}

// Validation errors.
var (
	ErrInvalidInput         = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", Kind: KindValidation, StatusCode: http.StatusBadRequest}
	ErrZeroAllocation       = &AppError{Code: "ZERO_ALLOCATION", Message: "Budget total has no allocated amount", Kind: KindValidation, StatusCode: http.StatusUnprocessableEntity}
	ErrDuplicateBudgetTotal = &AppError{Code: "DUPLICATE_BUDGET_TOTAL", Message: "A budget total already exists for this type and month", Kind: KindValidation, StatusCode: http.StatusConflict}
)

// Not found errors.
var (
	ErrNotFound            = &AppError{Code: "NOT_FOUND", Message: "Resource not found", Kind: KindNotFound, StatusCode: http.StatusNotFound}
	ErrBudgetTypeNotFound  = &AppError{Code: "BUDGET_TYPE_NOT_FOUND", Message: "Budget type not found", Kind: KindNotFound, StatusCode: http.StatusNotFound}
	ErrBudgetTotalNotFound = &AppError{Code: "BUDGET_TOTAL_NOT_FOUND", Message: "Budget total not found", Kind: KindNotFound, StatusCode: http.StatusNotFound}
	ErrExpenseNotFound     = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", Kind: KindNotFound, StatusCode: http.StatusNotFound}
)

// Store errors.
var (
	ErrStore          = &AppError{Code: "STORE_ERROR", Message: "A storage error occurred", Kind: KindStore, StatusCode: http.StatusInternalServerError}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", Kind: KindStore, StatusCode: http.StatusInternalServerError}
)
