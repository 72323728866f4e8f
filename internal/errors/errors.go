// Package errors provides custom error types for the dompet API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Configuration version errors.
var (
	ErrConfigVersionNotFound = &AppError{Code: "CONFIG_VERSION_NOT_FOUND", Message: "Configuration version not found", StatusCode: http.StatusNotFound}
	ErrConfigVersionInUse    = &AppError{Code: "CONFIG_VERSION_IN_USE", Message: "Configuration version is used by existing cycles", StatusCode: http.StatusConflict}
	ErrNoConfigVersion       = &AppError{Code: "NO_CONFIG_VERSION", Message: "No configuration version exists yet", StatusCode: http.StatusConflict}
)

// Cycle errors.
var (
	ErrCycleNotFound = &AppError{Code: "CYCLE_NOT_FOUND", Message: "Cycle not found", StatusCode: http.StatusNotFound}
	ErrCycleExists   = &AppError{Code: "CYCLE_EXISTS", Message: "A cycle for this year and month already exists", StatusCode: http.StatusConflict}
)

// Daily log errors.
var (
	ErrDailyLogNotFound = &AppError{Code: "DAILY_LOG_NOT_FOUND", Message: "Daily log not found", StatusCode: http.StatusNotFound}
	ErrNoFieldsToUpdate = &AppError{Code: "NO_FIELDS_TO_UPDATE", Message: "No fields to update", StatusCode: http.StatusBadRequest}
)

// Other expense errors.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
)

// Stored data errors.
var (
	// ErrCorruptDate marks a persisted date that cannot be parsed. It is
	// an invariant violation, never silently defaulted.
	ErrCorruptDate = &AppError{Code: "CORRUPT_DATE", Message: "A stored date could not be parsed", StatusCode: http.StatusInternalServerError}
)
