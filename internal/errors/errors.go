package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeInternal          = "INTERNAL_ERROR"
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeUngroundedContent = "UNGROUNDED_CONTENT"
	ErrCodeInsufficientYield = "INSUFFICIENT_YIELD"
	ErrCodeProviderFailure   = "PROVIDER_FAILURE"
	ErrCodeInvalidRating     = "INVALID_RATING"
	ErrCodeTimeout           = "TIMEOUT"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "INSUFFICIENT_YIELD")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// HasCode reports whether err is (or wraps) an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
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

// NewUngroundedContentError is returned when no generated item survived validation.
func NewUngroundedContentError(kind string) *AppError {
	return &AppError{
		Code:    ErrCodeUngroundedContent,
		Message: fmt.Sprintf("no transcript-grounded %s could be generated", kind),
		Status:  422,
	}
}

// NewInsufficientYieldError is returned when some items were valid but fewer than requested.
// The partial result is withheld.
func NewInsufficientYieldError(kind string, got, want int) *AppError {
	return &AppError{
		Code:    ErrCodeInsufficientYield,
		Message: fmt.Sprintf("unable to generate enough transcript-grounded %s: got %d of %d", kind, got, want),
		Status:  422,
	}
}

// NewProviderFailureError wraps a failure of the content generation provider.
func NewProviderFailureError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeProviderFailure,
		Message: "content generation provider failed",
		Status:  502,
		Err:     err,
	}
}

// NewInvalidRatingError creates a new INVALID_RATING error
func NewInvalidRatingError(rating int) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidRating,
		Message: fmt.Sprintf("rating must be one of 1, 2, 3, 4: got %d", rating),
		Status:  400,
	}
}
