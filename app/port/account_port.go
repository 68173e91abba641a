package port

//go:generate mockgen -source=account_port.go -destination=../mocks/mock_account_port.go

import (
	"context"

	"account-service/app/domain"
)

// AccountUsecase orchestrates the login and signup sequences. Each call
// performs its backend steps strictly in order; no step is retried.
type AccountUsecase interface {
	Login(ctx context.Context, creds domain.Credentials) (string, error)
	Signup(ctx context.Context, req domain.SignupRequest) (string, error)
}

// ProfileUsecase serves the authenticated profile endpoints, keyed by the
// identity the access guard resolved.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, key string) (domain.ProfileDocument, error)
	UpdateProfile(ctx context.Context, key string, patch domain.ProfileUpdate) error
}
