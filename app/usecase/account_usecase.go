package usecase

import (
	"context"
	"fmt"

	"account-service/app/domain"
	"account-service/app/port"
)

// AccountUseCase implements the login and signup orchestration. Every
// backend call depends on the previous one's result, so the sequence is
// strictly linear; nothing within one request runs concurrently.
type AccountUseCase struct {
	identity port.IdentityGateway
	profiles port.ProfileGateway
}

// NewAccountUseCase creates a new AccountUseCase instance
func NewAccountUseCase(identity port.IdentityGateway, profiles port.ProfileGateway) *AccountUseCase {
	return &AccountUseCase{
		identity: identity,
		profiles: profiles,
	}
}

// Login verifies the credentials with the identity provider and returns
// the issued bearer token.
func (uc *AccountUseCase) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	identity, err := uc.identity.SignIn(ctx, creds.Email, creds.Password)
	if err != nil {
		return "", err
	}

	token, err := uc.identity.IssueToken(ctx, identity)
	if err != nil {
		return "", err
	}

	return token, nil
}

// Signup registers a new account. The email is both the existence-check key
// and the persistence key: it is the only collected identifier that is
// guaranteed unique.
//
// The existence check and the account creation are two separate backend
// calls with no lock between them, so concurrent signups with the same
// email can both pass the check; the provider's own uniqueness constraint
// is the backstop.
func (uc *AccountUseCase) Signup(ctx context.Context, req domain.SignupRequest) (string, error) {
	exists, err := uc.profiles.Exists(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.NewGatewayError(domain.ErrProfileExists, "signup", "")
	}

	identity, err := uc.identity.CreateAccount(ctx, req.Email, req.Password)
	if err != nil {
		return "", err
	}

	token, err := uc.identity.IssueToken(ctx, identity)
	if err != nil {
		return "", err
	}

	record := domain.NewUserRecord(req.Email, identity.ID)
	if err := uc.profiles.Create(ctx, req.Email, record); err != nil {
		// The provider account exists but the profile record does not.
		// There is no rollback; the inconsistency is surfaced as a store
		// failure and logged with full detail at the gateway.
		return "", fmt.Errorf("account created but profile write failed for %s: %w", req.Email, err)
	}

	return token, nil
}
