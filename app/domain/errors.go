package domain

import "errors"

// Error kinds surfaced by the gateways. Handlers branch on these with
// errors.Is; raw provider or store detail stays server-side.
var (
	// Identity provider kinds
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrEmailAlreadyInUse = errors.New("email already in use")
	ErrIdentityProvider  = errors.New("identity provider failure")

	// Profile store kinds
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
	ErrProfileStore    = errors.New("profile store failure")

	// Access guard
	ErrUnauthorized = errors.New("unauthorized")
)

// GatewayError attaches operation context and raw backend detail to an
// error kind. Detail is for logs only and must never reach a client.
type GatewayError struct {
	Kind   error
	Op     string
	Detail string
}

func (e *GatewayError) Error() string {
	if e.Detail != "" {
		return e.Op + ": " + e.Kind.Error() + ": " + e.Detail
	}
	return e.Op + ": " + e.Kind.Error()
}

func (e *GatewayError) Unwrap() error {
	return e.Kind
}

// NewGatewayError wraps a backend failure in its domain kind.
func NewGatewayError(kind error, op, detail string) *GatewayError {
	return &GatewayError{Kind: kind, Op: op, Detail: detail}
}
