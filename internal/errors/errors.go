package errors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies a gateway failure. The set is closed; internal logic
// works with kinds only and never references transport status codes.
type Kind int

const (
	// KindUnauthenticated covers missing, malformed, invalid, or expired
	// credentials.
	KindUnauthenticated Kind = iota

	// KindNoMembership is a verified identity without an active
	// organization membership.
	KindNoMembership

	// KindInvalidArgument is malformed client input.
	KindInvalidArgument

	// KindUpstream is a failed required external call.
	KindUpstream

	// KindInternal is an unexpected fault in this layer.
	KindInternal
)

// status maps an error kind to its HTTP status. The mapping lives only
// here, at the transport boundary.
func (k Kind) status() int {
	switch k {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindNoMembership:
		return http.StatusForbidden
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error is a kind-tagged error with a caller-safe message. Messages never
// include stack traces or internal identifiers.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// New creates a kind-tagged error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Unauthenticated creates a 401-class error.
func Unauthenticated(message string) *Error {
	if message == "" {
		message = "Authentication required"
	}
	return New(KindUnauthenticated, message)
}

// NoMembership creates a 403-class error.
func NoMembership(message string) *Error {
	if message == "" {
		message = "No active organization membership"
	}
	return New(KindNoMembership, message)
}

// InvalidArgument creates a 400-class error.
func InvalidArgument(message string) *Error {
	if message == "" {
		message = "Invalid request"
	}
	return New(KindInvalidArgument, message)
}

// Upstream creates a 502-class error carrying the upstream's message.
func Upstream(message string) *Error {
	if message == "" {
		message = "Upstream request failed"
	}
	return New(KindUpstream, message)
}

// Internal creates a 500-class error.
func Internal(message string) *Error {
	if message == "" {
		message = "Internal server error"
	}
	return New(KindInternal, message)
}

// Respond writes the JSON error envelope for err. Errors that are not
// kind-tagged are reported as internal faults without leaking detail.
func Respond(c *gin.Context, err error) {
	var tagged *Error
	if errors.As(err, &tagged) {
		c.JSON(tagged.Kind.status(), gin.H{"error": tagged.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// AbortWith writes the error envelope and stops the handler chain. For
// use in middleware.
func AbortWith(c *gin.Context, err error) {
	Respond(c, err)
	c.Abort()
}
