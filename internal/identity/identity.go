package identity

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrMalformedHeader means the Authorization header is absent or not
	// of the exact form "Bearer <token>".
	ErrMalformedHeader = errors.New("malformed authorization header")

	// ErrInvalidToken means the identity provider rejected the credential.
	ErrInvalidToken = errors.New("invalid or expired credential")
)

// Identity is a verified reference to an authenticated end user,
// independent of any tenant.
type Identity struct {
	UserID string
	Email  string
}

// Provider verifies a bearer token against the identity provider and
// returns identity facts only. Implementations make no authorization
// decisions and never retry: a rejected credential stays rejected.
type Provider interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

const bearerPrefix = "Bearer "

// ParseBearer extracts the token from an Authorization header value. The
// scheme must match exactly and the token must be non-empty.
func ParseBearer(headerValue string) (string, error) {
	if !strings.HasPrefix(headerValue, bearerPrefix) {
		return "", ErrMalformedHeader
	}
	token := headerValue[len(bearerPrefix):]
	if token == "" {
		return "", ErrMalformedHeader
	}
	return token, nil
}
