package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go

import (
	"context"

	"account-service/app/domain"
)

// IdentityGateway wraps the external identity provider. Failures surface
// as domain error kinds; provider-specific codes never cross this seam.
type IdentityGateway interface {
	// SignIn verifies an email/password pair with the provider. Fails with
	// domain.ErrUserNotFound, domain.ErrWrongPassword or domain.ErrIdentityProvider.
	SignIn(ctx context.Context, email, password string) (*domain.Identity, error)

	// CreateAccount registers a new identity with the provider. Fails with
	// domain.ErrEmailAlreadyInUse or domain.ErrIdentityProvider.
	CreateAccount(ctx context.Context, email, password string) (*domain.Identity, error)

	// IssueToken returns the opaque bearer credential for an identity the
	// provider just authenticated.
	IssueToken(ctx context.Context, identity *domain.Identity) (string, error)

	// Authenticate resolves a bearer credential back to its identity. Used
	// by the access guard in front of the profile endpoints.
	Authenticate(ctx context.Context, token string) (*domain.Identity, error)
}

// KratosClient is the driver-level surface of the Ory Kratos API consumed
// by the identity gateway.
type KratosClient interface {
	SubmitPasswordLogin(ctx context.Context, email, password string) (*domain.Identity, error)
	SubmitPasswordRegistration(ctx context.Context, email, password string) (*domain.Identity, error)
	GetSession(ctx context.Context, token string) (*domain.Identity, error)
}
