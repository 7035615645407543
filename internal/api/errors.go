package api

import (
	"errors"
	"fmt"
)

// Kind classifies a request failure so call sites can handle each case
// explicitly instead of matching on message strings.
type Kind int

const (
	// KindNetwork means the request never produced a response.
	KindNetwork Kind = iota + 1
	// KindServer means the server answered with a non-2xx status other
	// than 401.
	KindServer
	// KindUnauthorized means the server answered 401. The stored token
	// has already been cleared when this error is returned.
	KindUnauthorized
	// KindValidation means the input was rejected locally, before any
	// network call.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	case KindUnauthorized:
		return "unauthorized"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is the failure type every API operation returns.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status, when a response was received
	Message string // human-readable message extracted from the response body
	Err     error  // underlying cause, if any
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("%s error: status %d", e.Kind, e.Status)
	default:
		return e.Kind.String() + " error"
	}
}

func (e *Error) Unwrap() error { return e.Err }

// ValidationError wraps a local validation failure into an *Error.
func ValidationError(err error) *Error {
	return &Error{Kind: KindValidation, Message: err.Error(), Err: err}
}

func isKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// IsNetwork reports whether err is a transport failure with no response.
func IsNetwork(err error) bool { return isKind(err, KindNetwork) }

// IsServer reports whether err is a non-401 error response.
func IsServer(err error) bool { return isKind(err, KindServer) }

// IsUnauthorized reports whether err is an authentication failure (401).
func IsUnauthorized(err error) bool { return isKind(err, KindUnauthorized) }

// IsValidation reports whether err is a local validation rejection.
func IsValidation(err error) bool { return isKind(err, KindValidation) }
