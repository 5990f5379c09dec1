package pkgerror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound indicates that the requested resource could not be found.
	ErrNotFound = errors.New("resource not found")
)

// Kind classifies errors into the buckets the API reports to clients.
type Kind int

const (
	KindServer       Kind = iota // Unexpected server-side failure.
	KindApp                      // Generic operational error with an explicit status code.
	KindNotFound                 // Missing resource.
	KindValidation               // Input validation failure.
	KindUnauthorized             // Missing or invalid credential.
	KindBadRequest               // Malformed request not covered by validation.
)

func (k Kind) String() string {
	switch k {
	case KindApp:
		return "ERROR_KIND_APP"
	case KindNotFound:
		return "ERROR_KIND_NOT_FOUND"
	case KindValidation:
		return "ERROR_KIND_VALIDATION"
	case KindUnauthorized:
		return "ERROR_KIND_UNAUTHORIZED"
	case KindBadRequest:
		return "ERROR_KIND_BAD_REQUEST"
	case KindServer:
		return "ERROR_KIND_SERVER"
	default:
		return "ERROR_KIND_UNKNOWN"
	}
}

// Status is the classification tag sent to clients next to the message.
type Status string

const (
	StatusFail  Status = "fail"  // 4xx, client-caused.
	StatusError Status = "error" // everything else.
)

// Classify derives the classification tag from an HTTP status code.
func Classify(statusCode int) Status {
	if statusCode >= 400 && statusCode < 500 {
		return StatusFail
	}
	return StatusError
}

// Error is a structured error used across the application.
//
// It can wrap an underlying error while also carrying a user-facing message,
// a kind, and the HTTP status code reported at the edge.
type Error struct {
	err  error
	msg  string
	kind Kind
	code int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil && e.kind == KindServer {
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	if e.err != nil {
		return e.err.Error()
	}

	return "Unknown error"
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Kind: %s, Status: %d (%s), Message: %s, Underlying Error: %v",
		e.kind.String(),
		e.code,
		e.Status(),
		e.msg,
		e.err,
	)
}

// Msg returns the user-facing error message.
func (e *Error) Msg() string {
	return e.msg
}

// Kind returns the error kind.
func (e *Error) Kind() Kind {
	return e.kind
}

// StatusCode returns the HTTP status code carried by the error.
func (e *Error) StatusCode() int {
	if e.code == 0 {
		return http.StatusInternalServerError
	}
	return e.code
}

// Status returns "fail" for 4xx codes and "error" otherwise.
func (e *Error) Status() Status {
	return Classify(e.StatusCode())
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

func new(err error, msg string, kind Kind, code int) error {
	return &Error{err: err, msg: msg, kind: kind, code: code}
}

// New creates a generic operational error with an arbitrary status code.
func New(msg string, statusCode int) error {
	return new(nil, msg, KindApp, statusCode)
}

// NewNotFound creates a "{resource} not found" error. It wraps ErrNotFound.
func NewNotFound(resource string) error {
	if resource == "" {
		resource = "Resource"
	}
	return new(ErrNotFound, resource+" not found", KindNotFound, http.StatusNotFound)
}

// NewValidation creates an input validation error.
func NewValidation(msg string) error {
	if msg == "" {
		msg = "Invalid input data provided"
	}
	return new(nil, msg, KindValidation, http.StatusBadRequest)
}

// NewUnauthorized creates an authentication error.
func NewUnauthorized(msg string) error {
	if msg == "" {
		msg = "Authentication required or invalid API key"
	}
	return new(nil, msg, KindUnauthorized, http.StatusUnauthorized)
}

// NewBadRequest creates a generic bad request error.
func NewBadRequest(msg string) error {
	if msg == "" {
		msg = "Bad request"
	}
	return new(nil, msg, KindBadRequest, http.StatusBadRequest)
}

// NewServer creates a server error wrapping err. Clients only see a generic message.
func NewServer(err error) error {
	return new(err, "Internal server error", KindServer, http.StatusInternalServerError)
}
