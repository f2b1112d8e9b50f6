package errors

import (
	"errors"
	"net/http"
)

// Kind classifies an error by how it is surfaced to API clients.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthenticated
	KindUnauthorized
	KindForbidden
	KindConflict
	KindNotFound
)

// Error is a domain error with a stable machine-readable code.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates a domain error.
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Validation creates a validation error carrying the given message.
func Validation(message string) *Error {
	return New(KindValidation, "VALIDATION_ERROR", message)
}

var (
	// ErrNotFound is returned for records that are missing or owned by someone else.
	ErrNotFound = New(KindNotFound, "NOT_FOUND", "resource not found")
	// ErrUserAlreadyExists is returned when registering an email that is taken.
	ErrUserAlreadyExists = New(KindConflict, "USER_ALREADY_EXISTS", "user with this email already exists")
	// ErrEmailInUse is returned when a profile update moves to another user's email.
	ErrEmailInUse = New(KindConflict, "EMAIL_IN_USE", "email already in use by another account")
	// ErrInvalidCredentials is returned for both unknown emails and wrong passwords.
	ErrInvalidCredentials = New(KindUnauthorized, "INVALID_CREDENTIALS", "invalid credentials")
	// ErrIncorrectPassword is returned when the current password does not verify.
	ErrIncorrectPassword = New(KindUnauthorized, "INCORRECT_PASSWORD", "incorrect current password")
	// ErrCurrentPasswordRequired is returned when a new password is sent alone.
	ErrCurrentPasswordRequired = New(KindValidation, "CURRENT_PASSWORD_REQUIRED", "current password is required to change password")
	// ErrPasswordTooLong is returned for passwords bcrypt cannot hash.
	ErrPasswordTooLong = New(KindValidation, "VALIDATION_ERROR", "password must be at most 72 bytes")
	// ErrNoFieldsProvided is returned for an update request with nothing to change.
	ErrNoFieldsProvided = New(KindValidation, "NO_FIELDS_PROVIDED", "no fields provided for update")
	// ErrTokenMissing is returned when a protected route receives no Authorization header.
	ErrTokenMissing = New(KindUnauthenticated, "UNAUTHENTICATED", "no token provided")
	// ErrTokenMalformed is returned when the Authorization header is not "Bearer <token>".
	ErrTokenMalformed = New(KindUnauthenticated, "MALFORMED_TOKEN", "token format is incorrect, expected Bearer <token>")
	// ErrTokenInvalid is returned when the bearer token fails verification.
	ErrTokenInvalid = New(KindForbidden, "INVALID_TOKEN", "invalid token")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// StatusCode returns the HTTP status for a kind.
func (k Kind) StatusCode() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated, KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
// Anything that is not a domain error becomes a generic 500 so store
// and library failures never reach the client.
func MapErrorToHTTP(err error) *HTTPError {
	var domainErr *Error
	if errors.As(err, &domainErr) && domainErr.Kind != KindInternal {
		return NewHTTPError(domainErr.Kind.StatusCode(), domainErr.Message, domainErr.Code)
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}
