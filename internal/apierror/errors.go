// Package apierror defines errors that are safe to show to API clients.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an API error.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuth
	KindConflict
	KindNotFound
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// APIError is an error with a client-facing message and HTTP status.
type APIError struct {
	Kind       Kind
	HTTPStatus int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is reports whether target is an APIError of the same kind.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks by kind.
var (
	ErrValidation = &APIError{Kind: KindValidation}
	ErrAuth       = &APIError{Kind: KindAuth}
	ErrConflict   = &APIError{Kind: KindConflict}
	ErrNotFound   = &APIError{Kind: KindNotFound}
	ErrUpstream   = &APIError{Kind: KindUpstream}
)

func NewErrValidation(format string, args ...any) *APIError {
	return &APIError{Kind: KindValidation, HTTPStatus: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NewErrAllFieldsRequired() *APIError {
	return NewErrValidation("All fields are required")
}

func NewErrEmailIsTaken() *APIError {
	return &APIError{Kind: KindConflict, HTTPStatus: http.StatusBadRequest, Message: "User already exists"}
}

// NewErrInvalidCredentials is shared by unknown-email and wrong-password
// login failures so the two cannot be told apart.
func NewErrInvalidCredentials() *APIError {
	return &APIError{Kind: KindAuth, HTTPStatus: http.StatusUnauthorized, Message: "Invalid email or password"}
}

func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{Kind: KindAuth, HTTPStatus: http.StatusUnauthorized, Message: "Authorization token is missing"}
}

func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{Kind: KindAuth, HTTPStatus: http.StatusUnauthorized, Message: "Authorization token is invalid"}
}

func NewErrExpiredAuthorizationToken() *APIError {
	return &APIError{Kind: KindAuth, HTTPStatus: http.StatusUnauthorized, Message: "Authorization token expired"}
}

func NewErrUserNotFound() *APIError {
	return &APIError{Kind: KindNotFound, HTTPStatus: http.StatusNotFound, Message: "User not found"}
}

func NewErrStoryNotFound() *APIError {
	return &APIError{Kind: KindNotFound, HTTPStatus: http.StatusNotFound, Message: "Travel story not found"}
}

// NewErrUpstream wraps a store or gateway failure. The message of the
// underlying error is passed through to the client.
func NewErrUpstream(err error) *APIError {
	return &APIError{Kind: KindUpstream, HTTPStatus: http.StatusInternalServerError, Message: err.Error()}
}

// From extracts an APIError from err. Any other error becomes an upstream error.
func From(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewErrUpstream(err)
}
