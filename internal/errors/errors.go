package errors

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeNotDue         = "NOT_DUE"
	ErrCodeDuplicateTitle = "DUPLICATE_TITLE"
	ErrCodeStorage        = "STORAGE_ERROR"
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeInternal       = "INTERNAL_ERROR"
	ErrCodeBadRequest     = "BAD_REQUEST"
)

// AppError carries a machine readable code, a user facing message and the
// HTTP status a transport should answer with.
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "NOT_DUE")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
	}
}

// NewNotDueError reports a review attempted before the scheduled day.
func NewNotDueError(title string, nextReview string) *AppError {
	return &AppError{
		Code:    ErrCodeNotDue,
		Message: fmt.Sprintf("%s is not due yet, next review: %s", title, nextReview),
		Status:  409,
	}
}

func NewDuplicateTitleError(title string) *AppError {
	return &AppError{
		Code:    ErrCodeDuplicateTitle,
		Message: fmt.Sprintf("problem already exists: %s", title),
		Status:  409,
	}
}

// NewStorageError wraps a failure to read or write the snapshot or config
// file. Storage is never repaired automatically.
func NewStorageError(op string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeStorage,
		Message: fmt.Sprintf("storage failure during %s", op),
		Status:  500,
		Err:     err,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  400,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  400,
	}
}

// HasCode reports whether err is, or wraps, an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// As converts any error into an AppError, treating unknown errors as internal.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError(err)
}
