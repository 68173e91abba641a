package port

//go:generate mockgen -source=profile_port.go -destination=../mocks/mock_profile_port.go

import (
	"context"

	"account-service/app/domain"
)

// ProfileGateway wraps the external document store, keyed by the user's
// email. Update is an unconditional merge-write: it does not pre-check the
// key and fails with domain.ErrProfileStore when the write fails, including
// when the key does not exist.
type ProfileGateway interface {
	Exists(ctx context.Context, key string) (bool, error)
	Get(ctx context.Context, key string) (domain.ProfileDocument, error)
	Create(ctx context.Context, key string, record *domain.UserRecord) error
	Update(ctx context.Context, key string, patch domain.ProfileUpdate) error
}

// ProfileRepository is the driver-level store access behind ProfileGateway.
type ProfileRepository interface {
	Exists(ctx context.Context, key string) (bool, error)
	Get(ctx context.Context, key string) (domain.ProfileDocument, error)
	Create(ctx context.Context, key string, record *domain.UserRecord) error
	Update(ctx context.Context, key string, patch domain.ProfileUpdate) error
}
