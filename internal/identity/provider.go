// Package identity integrates with the external identity provider.
//
// The provider owns credentials, password hashing, and token issuance.
// This package consumes exactly two capabilities: verifying a bearer
// token to a stable user id, and creating a user at signup.
package identity

import (
	"context"
	"errors"
)

// Provider errors.
var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrRejected     = errors.New("identity provider rejected the request")
)

// CreateUserInput carries the signup payload forwarded to the provider.
// The password passes through untouched; the core never stores or
// hashes credentials.
type CreateUserInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// Provider is the narrow contract the core needs from the identity
// provider. It is treated as an opaque oracle.
type Provider interface {
	// VerifyToken resolves a bearer credential to a stable user id.
	VerifyToken(ctx context.Context, token string) (string, error)

	// CreateUser provisions a new user and returns its id.
	CreateUser(ctx context.Context, input CreateUserInput) (string, error)
}
