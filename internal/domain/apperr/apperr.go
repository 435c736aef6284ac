// Package apperr defines the closed error taxonomy every pipeline stage
// fails into. Errors are plain kind-tagged values, not a type hierarchy;
// one serializer handles all kinds.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Kind enumerates the recognized failure categories.
type Kind int

const (
	Validation Kind = iota
	InvalidParameter
	ResourceNotFound
	Database
	ResourceAlreadyExists
	Unauthorized
	Forbidden
	RateLimit
	ServiceUnavailable
)

// String returns the wire name of the kind, e.g. "ValidationError".
func (k Kind) String() string {
	switch k {
	case Validation:
		return "ValidationError"
	case InvalidParameter:
		return "InvalidParameterError"
	case ResourceNotFound:
		return "ResourceNotFoundError"
	case Database:
		return "DatabaseError"
	case ResourceAlreadyExists:
		return "ResourceAlreadyExistsError"
	case Unauthorized:
		return "UnauthorizedError"
	case Forbidden:
		return "ForbiddenError"
	case RateLimit:
		return "RateLimitError"
	case ServiceUnavailable:
		return "ServiceUnavailableError"
	default:
		return "AppError"
	}
}

// Status returns the HTTP status a kind maps to.
func (k Kind) Status() int {
	switch k {
	case Validation, InvalidParameter:
		return http.StatusBadRequest
	case ResourceNotFound:
		return http.StatusNotFound
	case ResourceAlreadyExists:
		return http.StatusConflict
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case RateLimit:
		return http.StatusTooManyRequests
	case ServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the stable machine code for a kind.
func (k Kind) Code() string {
	switch k {
	case Validation:
		return "VALIDATION_ERROR"
	case InvalidParameter:
		return "INVALID_PARAMETER"
	case ResourceNotFound:
		return "RESOURCE_NOT_FOUND"
	case ResourceAlreadyExists:
		return "RESOURCE_ALREADY_EXISTS"
	case Unauthorized:
		return "UNAUTHORIZED"
	case Forbidden:
		return "FORBIDDEN"
	case RateLimit:
		return "RATE_LIMIT_EXCEEDED"
	case ServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		return "DATABASE_ERROR"
	}
}

// Error carries one failure through the pipeline unchanged. Field and
// Parameter attribute validation failures; Err keeps the wrapped cause
// for server-side logs only and never reaches a response body.
type Error struct {
	Kind      Kind
	Message   string
	Code      string
	Field     string
	Parameter string
	Timestamp time.Time
	Err       error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status for the error.
func (e *Error) StatusCode() int { return e.Kind.Status() }

// New builds an error of the given kind with its default code.
func New(kind Kind, message string) *Error {
	return &Error{
		Kind:      kind,
		Message:   message,
		Code:      kind.Code(),
		Timestamp: time.Now().UTC(),
	}
}

// NewValidation builds a 400 validation error attributed to a field.
func NewValidation(message, field string) *Error {
	e := New(Validation, message)
	e.Field = field
	return e
}

// NewInvalidParameter builds a 400 error attributed to a request parameter.
func NewInvalidParameter(parameter, message string) *Error {
	if message == "" {
		message = "Invalid parameter: " + parameter
	}
	e := New(InvalidParameter, message)
	e.Parameter = parameter
	return e
}

// NewNotFound builds a 404 error naming the resource and identifier.
func NewNotFound(resource string, identifier any) *Error {
	msg := resource + " not found"
	if identifier != nil {
		msg = fmt.Sprintf("%s with identifier '%v' not found", resource, identifier)
	}
	return New(ResourceNotFound, msg)
}

// NewDatabase builds a 500 error. The wrapped cause stays server-side.
func NewDatabase(message string, cause error) *Error {
	if message == "" {
		message = "Database operation failed"
	}
	e := New(Database, message)
	e.Err = cause
	return e
}

// NewRateLimit builds a 429 error.
func NewRateLimit() *Error {
	return New(RateLimit, "Rate limit exceeded")
}

// NewServiceUnavailable builds a 503 error.
func NewServiceUnavailable(message string) *Error {
	if message == "" {
		message = "Service temporarily unavailable"
	}
	return New(ServiceUnavailable, message)
}

// As extracts a taxonomy error when err wraps one.
func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// IsKind reports whether err is a taxonomy error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}

// FromUnknown normalizes any failure into a taxonomy error. Recognized
// errors pass through unchanged; anything else becomes a Database error,
// keeping the source message for logs and falling back to a generic one.
func FromUnknown(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := As(err); ok {
		return e
	}
	e := NewDatabase(err.Error(), err)
	if e.Message == "" {
		e.Message = "An unknown error occurred"
	}
	return e
}

// Response is the serialized form of any taxonomy error.
type Response struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	Code       string `json:"code"`
	StatusCode int    `json:"statusCode"`
	Field      string `json:"field,omitempty"`
	Parameter  string `json:"parameter,omitempty"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path,omitempty"`
}

// ToResponse serializes any error (taxonomy or not) deterministically.
func ToResponse(err error, path string) Response {
	e := FromUnknown(err)
	return Response{
		Error:      e.Kind.String(),
		Message:    e.Message,
		Code:       e.Code,
		StatusCode: e.Kind.Status(),
		Field:      e.Field,
		Parameter:  e.Parameter,
		Timestamp:  e.Timestamp.Format(time.RFC3339),
		Path:       path,
	}
}
