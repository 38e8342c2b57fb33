package lastfm

import (
	"errors"
	"fmt"
)

// APIError represents an error envelope returned by the Last.fm API.
//
// Categories come from the static error registry, so broad handling is a
// data query rather than a type switch:
//
//	if errors.Is(err, lastfm.ErrTemporary) {
//	    // try again later
//	}
type APIError struct {
	Code        int      // Last.fm error code
	Message     string   // Error message from Last.fm
	Description string   // Registry description of Code
	Categories  Category // Registry tags of Code
}

// Error returns the code, the registry description and the server message,
// in that order.
func (e *APIError) Error() string {
	return fmt.Sprintf("lastfm: error %d (%s): %s", e.Code, e.Description, e.Message)
}

// Is makes errors.Is match another *APIError with the same code, or one of
// the category sentinels (ErrAuth, ErrTemporary, ...).
func (e *APIError) Is(target error) bool {
	switch t := target.(type) {
	case *APIError:
		return e.Code == t.Code
	case *categoryError:
		return e.Categories.Has(t.category)
	}
	return false
}

// Has reports whether the error carries category c.
func (e *APIError) Has(c Category) bool {
	return e.Categories.Has(c)
}

// Temporary returns true if the error is tagged temporary and the request
// may succeed later. This package never retries on its own.
func (e *APIError) Temporary() bool {
	return e.Has(CategoryTemporary)
}

type categoryError struct {
	category Category
}

func (e *categoryError) Error() string {
	return "lastfm: " + e.category.String() + " error"
}

// Category sentinels for use with errors.Is.
var (
	ErrAuth        error = &categoryError{CategoryAuth}
	ErrClientFault error = &categoryError{CategoryClient}
	ErrServerFault error = &categoryError{CategoryServer}
	ErrTemporary   error = &categoryError{CategoryTemporary}
	ErrStation     error = &categoryError{CategoryStation}
)

// ConfigurationError is returned when the client is missing a credential it
// needs. It is raised before anything is sent over the wire.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("lastfm: invalid configuration: %s %s", e.Field, e.Reason)
}

// Is matches ErrInvalidConfig for every configuration error.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Predefined errors for common cases.
var (
	// ErrInvalidConfig matches any *ConfigurationError.
	ErrInvalidConfig = errors.New("lastfm: invalid configuration")

	// ErrNoSessionKey is returned when an operation requires authentication
	// but no session key has been set.
	ErrNoSessionKey = &ConfigurationError{Field: "SessionKey", Reason: "is required for authenticated calls"}

	// ErrNilFuture is returned by Gather when one of its futures is nil,
	// usually because the call that produced it failed.
	ErrNilFuture = errors.New("lastfm: nil future")
)

// TransportError reports a failed HTTP exchange: connection errors,
// timeouts, cancellation, or a non-2xx status without a Last.fm error body.
type TransportError struct {
	Method     string // API method, e.g. "user.getInfo"
	StatusCode int    // zero when no response was received
	Status     string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("lastfm: %s: unexpected status %s", e.Method, e.Status)
	}
	return fmt.Sprintf("lastfm: %s: http request failed: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	Method string
	Body   string // leading part of the offending body
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("lastfm: %s: failed to decode response: %v", e.Method, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
