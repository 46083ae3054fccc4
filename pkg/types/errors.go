package types

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
)

// ErrorKind classifies daemon errors into the categories the Panel
// understands. Every error that crosses a transport boundary carries one.
type ErrorKind int

const (
	// KindRuntime is a container runtime failure
	KindRuntime ErrorKind = iota
	// KindIO is a filesystem failure
	KindIO
	// KindPathTraversal means a client path escaped the server root
	KindPathTraversal
	// KindNotFound means an unknown UUID or a missing container with no spec
	KindNotFound
	// KindPayloadTooLarge means a file read exceeded the size cap
	KindPayloadTooLarge
	// KindConfig is bad input: unknown action, missing install fields
	KindConfig
	// KindAuth is a missing or invalid bearer token
	KindAuth
)

// Error is the daemon-wide error type surfaced to the Panel over both
// transports. Message is what the Panel sees; Err (optional) preserves the
// underlying cause for logs and errors.Is/As chains.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to its HTTP response status.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindPathTraversal:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// GRPCCode maps the error kind to its gRPC status code.
func (e *Error) GRPCCode() codes.Code {
	switch e.Kind {
	case KindPathTraversal, KindConfig:
		return codes.InvalidArgument
	case KindNotFound:
		return codes.NotFound
	case KindPayloadTooLarge:
		return codes.OutOfRange
	case KindAuth:
		return codes.Unauthenticated
	default:
		return codes.Internal
	}
}

// Runtimef wraps a container runtime failure.
func Runtimef(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindRuntime, Message: fmt.Sprintf(format, args...), Err: err}
}

// IOError wraps a filesystem failure.
func IOError(err error) *Error {
	return &Error{Kind: KindIO, Message: fmt.Sprintf("IO error: %v", err), Err: err}
}

// PathTraversal reports a client path that escaped the server root.
func PathTraversal() *Error {
	return &Error{Kind: KindPathTraversal, Message: "Path traversal detected"}
}

// NotFoundf reports an unknown server or container.
func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// FileTooLarge reports a file read over the size cap.
func FileTooLarge() *Error {
	return &Error{Kind: KindPayloadTooLarge, Message: "File too large"}
}

// Configf reports invalid client input.
func Configf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConfig, Message: fmt.Sprintf(format, args...)}
}

// AuthFailed reports a missing or invalid credential.
func AuthFailed() *Error {
	return &Error{Kind: KindAuth, Message: "Authentication failed"}
}

// IsKind reports whether any error in err's chain is an *Error of the
// given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// AsError normalizes an arbitrary error for a transport boundary: *Error
// values pass through, anything else is classified as a runtime failure.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindRuntime, Message: err.Error(), Err: err}
}
