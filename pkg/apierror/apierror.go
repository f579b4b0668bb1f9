package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Sentinel errors for classifying backend failures.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")
)

// CodeUnknown is used when a non-2xx response carries no parseable error envelope.
const CodeUnknown = "UNKNOWN"

// Error is the structured error returned by the backend for any non-2xx
// response. Code and Message come from the error envelope verbatim; Status is
// the HTTP status the response carried. Callers branch on Code or show
// Message to the user as-is.
type Error struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Status  int            `json:"-"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

// Unwrap maps the HTTP status onto a sentinel so callers can use errors.Is
// without caring about the exact backend code.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrInvalidInput
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusConflict:
		return ErrConflict
	default:
		return ErrInternal
	}
}

// envelope mirrors the backend's error body: {"error":{"code","message","details"}}.
type envelope struct {
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details,omitempty"`
	} `json:"error"`
}

// FromResponse reads the body of a non-2xx response and translates it into an
// *Error. A malformed or non-JSON body degrades to code UNKNOWN carrying the
// HTTP status rather than a secondary parse failure. The body is fully
// consumed and closed.
func FromResponse(resp *http.Response) *Error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB limit
	if err != nil {
		return unknown(resp.StatusCode)
	}

	var env envelope
	if json.Unmarshal(body, &env) != nil || env.Error == nil || env.Error.Code == "" {
		return unknown(resp.StatusCode)
	}

	return &Error{
		Code:    env.Error.Code,
		Message: env.Error.Message,
		Status:  resp.StatusCode,
		Details: env.Error.Details,
	}
}

func unknown(status int) *Error {
	return &Error{
		Code:    CodeUnknown,
		Message: fmt.Sprintf("request failed with status %d", status),
		Status:  status,
	}
}

// As extracts an *Error from an error chain, if present.
func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err represents a 401 from the backend.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsNotFound reports whether err represents a 404 from the backend.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
