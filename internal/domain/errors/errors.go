package errors

import (
	"net/http"

	"homepros/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Identity-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Sign in to manage a listing",
		"",
	)

	ErrNotListingOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_LISTING_OWNER",
		"You do not own this listing",
		"",
	)

	// Listing-related errors
	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"Listing not found",
		"",
	)

	ErrListingAlreadyClaimed = NewBaseError(
		http.StatusConflict,
		"LISTING_ALREADY_CLAIMED",
		"This listing has already been claimed",
		"",
	)

	// Search-related errors
	ErrSearchFilterRequired = NewBaseError(
		http.StatusBadRequest,
		"SEARCH_FILTER_REQUIRED",
		"A service or city filter is required",
		"",
	)

	ErrOutsideServiceArea = NewBaseError(
		http.StatusNotFound,
		"NOT_SERVICEABLE",
		"Zip code is outside our service area",
		"",
	)

	// Subscription-tier errors
	ErrProRequired = NewBaseError(
		http.StatusForbidden,
		"PRO_REQUIRED",
		"A Pro subscription is required for this feature",
		"",
	)

	ErrPrimaryServiceLocked = NewBaseError(
		http.StatusConflict,
		"CANNOT_REMOVE_PRIMARY",
		"The primary service cannot be removed",
		"",
	)

	ErrServiceNotFound = NewBaseError(
		http.StatusNotFound,
		"SERVICE_NOT_FOUND",
		"Service category not found on this listing",
		"",
	)

	ErrPhotoNotFound = NewBaseError(
		http.StatusNotFound,
		"PHOTO_NOT_FOUND",
		"Photo not found",
		"",
	)

	// Billing-related errors
	ErrBillingUnavailable = NewBaseError(
		http.StatusBadGateway,
		"BILLING_UNAVAILABLE",
		"The billing provider is currently unavailable",
		"",
	)

	// Media-related errors
	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"Failed to store the uploaded file",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
