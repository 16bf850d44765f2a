package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound         = new(ErrCodeNotFound, "resource not found")
	ErrAlreadyExists    = new(ErrCodeAlreadyExists, "resource already exists")
	ErrValidation       = new(ErrCodeValidation, "validation error")
	ErrInvalidAmount    = new(ErrCodeInvalidAmount, "invalid amount")
	ErrInvalidOperation = new(ErrCodeInvalidOperation, "invalid operation")
	ErrPermissionDenied = new(ErrCodePermissionDenied, "permission denied")
	ErrHTTPClient       = new(ErrCodeHTTPClient, "http client error")
	ErrSystem           = new(ErrCodeSystemError, "system error")
	ErrTooManyRequests  = new(ErrCodeTooManyRequests, "too many requests")

	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrHTTPClient:       http.StatusBadGateway,
		ErrNotFound:         http.StatusNotFound,
		ErrAlreadyExists:    http.StatusConflict,
		ErrValidation:       http.StatusBadRequest,
		ErrInvalidAmount:    http.StatusBadRequest,
		ErrInvalidOperation: http.StatusBadRequest,
		ErrPermissionDenied: http.StatusForbidden,
		ErrSystem:           http.StatusInternalServerError,
		ErrTooManyRequests:  http.StatusTooManyRequests,
	}

	// statusOrder keeps HTTPStatusFromErr deterministic when an error carries several marks
	statusOrder = []error{
		ErrInvalidAmount,
		ErrValidation,
		ErrInvalidOperation,
		ErrNotFound,
		ErrAlreadyExists,
		ErrPermissionDenied,
		ErrTooManyRequests,
		ErrHTTPClient,
		ErrSystem,
	}
)

const (
	ErrCodeHTTPClient       = "http_client_error"
	ErrCodeSystemError      = "system_error"
	ErrCodeNotFound         = "not_found"
	ErrCodeAlreadyExists    = "already_exists"
	ErrCodeValidation       = "validation_error"
	ErrCodeInvalidAmount    = "invalid_amount"
	ErrCodeInvalidOperation = "invalid_operation"
	ErrCodePermissionDenied = "permission_denied"
	ErrCodeTooManyRequests  = "too_many_requests"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Op      string // Logical operation name
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidAmount checks if an error rejects a monetary amount
func IsInvalidAmount(err error) bool {
	return errors.Is(err, ErrInvalidAmount)
}

// IsInvalidOperation checks if an error is an invalid operation error
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

// IsPermissionDenied checks if an error is a permission denied error
func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

// IsHTTPClient checks if an error is an http client error
func IsHTTPClient(err error) bool {
	return errors.Is(err, ErrHTTPClient)
}

// CodeFromErr returns the machine readable code of the first sentinel the error is marked with
func CodeFromErr(err error) string {
	for _, e := range statusOrder {
		if errors.Is(err, e) {
			return e.(*InternalError).Code
		}
	}
	return ErrCodeSystemError
}

func HTTPStatusFromErr(err error) int {
	for _, e := range statusOrder {
		if errors.Is(err, e) {
			return statusCodeMap[e]
		}
	}
	return http.StatusInternalServerError
}
