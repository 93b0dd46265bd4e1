// Package errors provides centralized error definitions and error handling utilities
// for the planner client. It defines the failure taxonomy for talking to the
// planning service, error constructors with context wrapping, and error
// classification helpers.
//
// # Error Types
//
// Transport errors come from the API client:
//   - NetworkError: the request never produced a response (connection refused,
//     DNS failure, timeout)
//   - HTTPStatusError: the service answered with a non-2xx status
//
// ValidationError is raised client-side before any request is sent.
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewNetworkError("GET", "/projects", cause)
//	err := errors.NewHTTPStatusError("DELETE", "/projects/abc", 500)
//	err := errors.NewValidationError("objectives is required").WithField("objectives")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrServerUnreachable) { ... }
//
//	var statusErr *errors.HTTPStatusError
//	if errors.As(err, &statusErr) { ... }
//
// Displaying errors:
//
//	msg := errors.UserMessage(err, baseURL)
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

var (
	// ErrServerUnreachable indicates the planning service could not be reached.
	ErrServerUnreachable = New("server unreachable")
	// ErrNotFound indicates the service has no record for the requested id.
	ErrNotFound = New("not found")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrOperationInFlight indicates the same operation is already running.
	ErrOperationInFlight = New("operation already in progress")
	// ErrNotConfirmed indicates a destructive action was not confirmed.
	ErrNotConfirmed = New("action not confirmed")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// PlannerError is the base interface for all planner errors.
type PlannerError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the error is transient and re-triggering
	// the action by hand may succeed.
	IsRetryable() bool

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	retryable  bool
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsRetryable returns whether the error is retryable.
func (e *baseError) IsRetryable() bool {
	return e.retryable
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Transport Errors
// -----------------------------------------------------------------------------

// NetworkError represents a request that never received a response.
//
// Example:
//
//	err := errors.NewNetworkError("GET", "/projects", dialErr)
//	fmt.Println(err) // "network error [GET /projects]: failed to fetch: dial tcp ..."
type NetworkError struct {
	baseError
	Method string
	Path   string
}

// NewNetworkError creates a new NetworkError.
func NewNetworkError(method, path string, cause error) *NetworkError {
	return &NetworkError{
		baseError: baseError{
			message:    "failed to fetch",
			cause:      cause,
			severity:   SeverityError,
			retryable:  true,
			userFacing: true,
		},
		Method: method,
		Path:   path,
	}
}

// Error returns the formatted error message.
func (e *NetworkError) Error() string {
	prefix := "network error"
	if e.Method != "" || e.Path != "" {
		prefix = fmt.Sprintf("network error [%s %s]", e.Method, e.Path)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *NetworkError) Is(target error) bool {
	if target == ErrServerUnreachable {
		return true
	}
	if _, ok := target.(*NetworkError); ok {
		return true
	}
	return false
}

// HTTPStatusError represents a non-2xx response from the planning service.
//
// Example:
//
//	err := errors.NewHTTPStatusError("GET", "/projects/abc", 404).WithBody("missing")
//	fmt.Println(err) // "HTTP error [GET /projects/abc]: status 404: missing"
type HTTPStatusError struct {
	baseError
	Method     string
	Path       string
	StatusCode int
	Body       string
}

// NewHTTPStatusError creates a new HTTPStatusError.
func NewHTTPStatusError(method, path string, status int) *HTTPStatusError {
	return &HTTPStatusError{
		baseError: baseError{
			message:    fmt.Sprintf("status %d", status),
			severity:   SeverityError,
			retryable:  status >= 500 || status == http.StatusTooManyRequests,
			userFacing: true,
		},
		Method:     method,
		Path:       path,
		StatusCode: status,
	}
}

// WithBody attaches a (trimmed) response body for diagnostics.
func (e *HTTPStatusError) WithBody(body string) *HTTPStatusError {
	e.Body = strings.TrimSpace(body)
	return e
}

// Error returns the formatted error message.
func (e *HTTPStatusError) Error() string {
	prefix := "HTTP error"
	if e.Method != "" || e.Path != "" {
		prefix = fmt.Sprintf("HTTP error [%s %s]", e.Method, e.Path)
	}
	if e.Body != "" {
		return fmt.Sprintf("%s: %s: %s", prefix, e.message, e.Body)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *HTTPStatusError) Is(target error) bool {
	if target == ErrNotFound {
		return e.StatusCode == http.StatusNotFound
	}
	if _, ok := target.(*HTTPStatusError); ok {
		return true
	}
	return false
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// ValidationError represents invalid input detected before a request is sent.
//
// Example:
//
//	err := errors.NewValidationError("is required").WithField("industry")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if target == ErrInvalidInput {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable returns true if the error represents a transient condition.
// Nothing in the client retries automatically; this only decides whether the
// UI suggests trying again.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var plannerErr PlannerError
	if As(err, &plannerErr) {
		return plannerErr.IsRetryable()
	}
	return false
}

// IsUserFacing returns true if the error message is safe to display to end users.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var plannerErr PlannerError
	if As(err, &plannerErr) {
		return plannerErr.IsUserFacing()
	}
	return Is(err, ErrOperationInFlight) || Is(err, ErrNotConfirmed)
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement PlannerError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var plannerErr PlannerError
	if As(err, &plannerErr) {
		return plannerErr.Severity()
	}
	return SeverityError
}

// UserMessage returns the text shown in the error banner. Network failures get
// a hint naming the server address so "server not running" is distinguishable
// from a failing request.
func UserMessage(err error, baseURL string) string {
	if err == nil {
		return ""
	}

	var validation *ValidationError
	if As(err, &validation) {
		if validation.Field != "" {
			return fmt.Sprintf("%s %s", validation.Field, validation.message)
		}
		return validation.message
	}

	var status *HTTPStatusError
	if As(err, &status) {
		return fmt.Sprintf("HTTP error! status: %d", status.StatusCode)
	}

	var network *NetworkError
	if As(err, &network) {
		msg := "Failed to fetch"
		if baseURL != "" {
			msg += fmt.Sprintf(". Make sure the backend server is running on %s", baseURL)
		}
		return msg
	}

	if IsUserFacing(err) {
		return err.Error()
	}
	return "An unexpected error occurred"
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
