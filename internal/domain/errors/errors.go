package errors

import (
	"fmt"
	"net/http"

	"reclaim/internal/errors"
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

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches on error code so copies made by WithDetails still compare equal.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

var (
	// Pickup
	ErrPickupNotFound = NewBaseError(
		http.StatusNotFound,
		"PICKUP_NOT_FOUND",
		"pickup not found",
		"",
	)

	ErrPickupAlreadyVerified = NewBaseError(
		http.StatusConflict,
		"PICKUP_ALREADY_VERIFIED",
		"pickup has already been verified",
		"",
	)

	ErrPickupOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"PICKUP_OWNERSHIP_VIOLATION",
		"pickup belongs to another collector",
		"",
	)

	ErrPickupNotVerified = NewBaseError(
		http.StatusConflict,
		"PICKUP_NOT_VERIFIED",
		"pickup must be verified before tokens are awarded",
		"",
	)

	ErrInvalidPickupQRCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PICKUP_QR_CODE",
		"pickup QR code is invalid",
		"",
	)

	// Ledger
	ErrInsufficientBalance = NewBaseError(
		http.StatusUnprocessableEntity,
		"INSUFFICIENT_BALANCE",
		"token balance cannot go negative",
		"",
	)

	ErrTransactionNotFound = NewBaseError(
		http.StatusNotFound,
		"TOKEN_TRANSACTION_NOT_FOUND",
		"token transaction not found",
		"",
	)

	ErrDuplicateAward = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_AWARD",
		"tokens were already awarded for this pickup",
		"",
	)

	ErrTokenAwardFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_AWARD_FAILED",
		"failed to award tokens",
		"",
	)

	ErrExportUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"EXPORT_UNAVAILABLE",
		"ledger export storage is not configured",
		"",
	)

	// Device
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"device not found",
		"",
	)

	// Auth
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"missing or invalid access token",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// ValidationError names the offending waypoint of an optimization request.
type ValidationError struct {
	Index  int
	Reason string
}

func NewValidationError(index int, reason string) *ValidationError {
	return &ValidationError{Index: index, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("waypoint %d: %s", e.Index, e.Reason)
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) ErrorCode() string {
	return "INVALID_WAYPOINT"
}

func (e *ValidationError) Message() string {
	return e.Error()
}

func (e *ValidationError) Details() string {
	return e.Reason
}

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

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
