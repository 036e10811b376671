package model

import (
	"fmt"
	"strings"
)

// ErrorKind classifies system client failures.
type ErrorKind int

const (
	KindConnectivity ErrorKind = iota + 1
	KindBadResponse
	KindMalformed
	KindNotFound
	KindAmbiguous
	KindMapping
	KindNoData
	KindURL
	KindUnsupported
	KindUnimplemented
)

var kindNames = map[ErrorKind]string{
	KindConnectivity:  "connectivity",
	KindBadResponse:   "bad response",
	KindMalformed:     "malformed response",
	KindNotFound:      "not found",
	KindAmbiguous:     "ambiguous response",
	KindMapping:       "mapping",
	KindNoData:        "no data",
	KindURL:           "bad url",
	KindUnsupported:   "unsupported",
	KindUnimplemented: "unimplemented",
}

func (k ErrorKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Error is the single error type returned by system clients.
// errors.Is matches it against the Err* sentinels by kind.
type Error struct {
	Kind    ErrorKind
	Message string
	// ID is the requested entity for KindNotFound.
	ID string
	// Code, JSON and JSONError describe KindBadResponse.
	Code      int
	JSON      map[string]any
	JSONError bool
	Err       error
}

// Sentinels for errors.Is.
var (
	ErrConnectivity  = &Error{Kind: KindConnectivity}
	ErrBadResponse   = &Error{Kind: KindBadResponse}
	ErrMalformed     = &Error{Kind: KindMalformed}
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrAmbiguous     = &Error{Kind: KindAmbiguous}
	ErrMapping       = &Error{Kind: KindMapping}
	ErrNoData        = &Error{Kind: KindNoData}
	ErrURL           = &Error{Kind: KindURL}
	ErrUnsupported   = &Error{Kind: KindUnsupported}
	ErrUnimplemented = &Error{Kind: KindUnimplemented}
)

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	switch {
	case e.Kind == KindBadResponse:
		fmt.Fprintf(&b, ": status %d", e.Code)
		if e.JSONError {
			b.WriteString(" (non-JSON body)")
		}
	case e.Kind == KindNotFound && e.ID != "":
		fmt.Fprintf(&b, ": %s", e.ID)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// NewConnectivityError wraps a transport failure.
func NewConnectivityError(err error) *Error {
	return &Error{Kind: KindConnectivity, Err: err}
}

// NewBadResponseError reports a status code outside the accepted set.
func NewBadResponseError(code int, body map[string]any, jsonError bool) *Error {
	return &Error{Kind: KindBadResponse, Code: code, JSON: body, JSONError: jsonError}
}

// NewMalformedError reports a body that does not have the expected shape.
func NewMalformedError(message string, err error) *Error {
	return &Error{Kind: KindMalformed, Message: message, Err: err}
}

// NewNotFoundError reports that no entity matched id.
func NewNotFoundError(id string) *Error {
	return &Error{Kind: KindNotFound, ID: id}
}

// NewAmbiguousError reports several entities where one was expected.
func NewAmbiguousError() *Error {
	return &Error{Kind: KindAmbiguous, Message: "expected one only"}
}

// NewMappingError reports a record that could not be transformed.
func NewMappingError(message string) *Error {
	return &Error{Kind: KindMapping, Message: message}
}

// NewNoDataError reports an empty response where one was required.
func NewNoDataError(message string) *Error {
	return &Error{Kind: KindNoData, Message: message}
}

// NewURLError reports a request that could not be built.
func NewURLError(err error) *Error {
	return &Error{Kind: KindURL, Err: err}
}

// NewUnsupportedError reports an operation the backend does not offer.
func NewUnsupportedError(operation string) *Error {
	return &Error{Kind: KindUnsupported, Message: operation}
}

// NewUnimplementedError reports a value the backend cannot provide.
func NewUnimplementedError(operation string) *Error {
	return &Error{Kind: KindUnimplemented, Message: operation}
}
