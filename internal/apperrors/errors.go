package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrEmptyFile indicates an uploaded statement has no header or no data rows.
var ErrEmptyFile = errors.New("statement has no data rows")

// ErrFileTooLarge indicates an uploaded statement exceeds the configured byte limit.
var ErrFileTooLarge = errors.New("statement file too large")

// ErrTooManyRows indicates an uploaded statement exceeds the configured row limit.
var ErrTooManyRows = errors.New("statement has too many rows")

// ErrMissingColumn indicates a column mapping names a column the statement does not have.
// This is a schema-level failure and aborts the whole import.
var ErrMissingColumn = errors.New("mapped column not present in statement headers")

// ErrClassifierOutput indicates the external classifier answered with something
// that does not parse as the expected schema.
var ErrClassifierOutput = errors.New("classifier output does not match expected schema")

// ErrClassifierUnavailable indicates the external classifier could not be reached or timed out.
var ErrClassifierUnavailable = errors.New("classifier unavailable")

// AppError carries an HTTP-ish status code alongside a message and a wrapped cause.
type AppError struct {
	Code    int
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

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates an AppError that matches ErrValidation with errors.Is.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewNotFoundError creates an AppError that matches ErrNotFound with errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}
