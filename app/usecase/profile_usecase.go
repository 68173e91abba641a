package usecase

import (
	"context"

	"account-service/app/domain"
	"account-service/app/port"
)

// ProfileUseCase implements profile retrieval and update for an identity
// the access guard already authenticated.
type ProfileUseCase struct {
	profiles port.ProfileGateway
}

// NewProfileUseCase creates a new ProfileUseCase instance
func NewProfileUseCase(profiles port.ProfileGateway) *ProfileUseCase {
	return &ProfileUseCase{profiles: profiles}
}

// GetProfile fetches the stored profile document for key. A missing key is
// domain.ErrProfileNotFound, distinct from other store failures.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, key string) (domain.ProfileDocument, error) {
	return uc.profiles.Get(ctx, key)
}

// UpdateProfile merges the patch into the stored document verbatim. No
// field whitelist is applied; schema enforcement is delegated to the store.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, key string, patch domain.ProfileUpdate) error {
	return uc.profiles.Update(ctx, key, patch)
}
