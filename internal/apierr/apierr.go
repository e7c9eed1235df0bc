// Package apierr defines the typed error taxonomy shared by all
// handlers and provider adapters. Every failure that reaches a client
// is one of these kinds, rendered as JSON at the handler boundary.
package apierr

import (
	"fmt"
	"net/http"
)

// Kind categorizes an error for HTTP status mapping.
type Kind string

const (
	KindValidation    Kind = "validation"    // bad or missing client input
	KindConfiguration Kind = "configuration" // required credential absent
	KindProvider      Kind = "provider"      // upstream non-success or transport failure
	KindTimeout       Kind = "timeout"       // upstream exceeded its deadline
	KindInternal      Kind = "internal"      // unexpected, unclassified
)

// Error is a classified relay error. Status, when non-zero, overrides
// the kind's default HTTP status: transcription and chat report
// provider failures as 500 while the other proxied endpoints use 502.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Err     error
	Details map[string]any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus returns the status code this error renders with.
func (e *Error) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConfiguration:
		return http.StatusInternalServerError
	case KindProvider:
		return http.StatusBadGateway
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// WithStatus overrides the default status for this error's kind.
func (e *Error) WithStatus(code int) *Error {
	e.Status = code
	return e
}

// WithDetail attaches an extra field to the rendered error body.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Validation reports bad or missing client input.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Configuration reports a missing provider credential.
func Configuration(msg string) *Error {
	return &Error{Kind: KindConfiguration, Message: msg}
}

// Provider reports an upstream or transport failure.
func Provider(msg string, err error) *Error {
	return &Error{Kind: KindProvider, Message: msg, Err: err}
}

// Timeout reports an upstream call that exceeded its deadline.
func Timeout(msg string) *Error {
	return &Error{Kind: KindTimeout, Message: msg}
}

// Internal wraps an unclassified error.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}
