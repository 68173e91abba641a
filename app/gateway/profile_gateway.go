package gateway

import (
	"context"
	"log/slog"

	"account-service/app/domain"
	"account-service/app/port"
)

// ProfileGateway implements port.ProfileGateway on top of the postgres
// profile repository, logging store traffic at the seam.
type ProfileGateway struct {
	repo   port.ProfileRepository
	logger *slog.Logger
}

// NewProfileGateway creates a new ProfileGateway instance
func NewProfileGateway(repo port.ProfileRepository, logger *slog.Logger) *ProfileGateway {
	return &ProfileGateway{
		repo:   repo,
		logger: logger.With("component", "profile_gateway"),
	}
}

// Exists probes the store for a profile under key.
func (g *ProfileGateway) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := g.repo.Exists(ctx, key)
	if err != nil {
		g.logger.Error("existence probe failed", "key", key, "error", err)
		return false, err
	}

	return exists, nil
}

// Get fetches the profile document stored under key.
func (g *ProfileGateway) Get(ctx context.Context, key string) (domain.ProfileDocument, error) {
	doc, err := g.repo.Get(ctx, key)
	if err != nil {
		g.logger.Error("profile read failed", "key", key, "error", err)
		return nil, err
	}

	return doc, nil
}

// Create writes the initial profile record under key.
func (g *ProfileGateway) Create(ctx context.Context, key string, record *domain.UserRecord) error {
	if err := g.repo.Create(ctx, key, record); err != nil {
		g.logger.Error("profile create failed", "key", key, "user_id", record.UserID, "error", err)
		return err
	}

	g.logger.Info("profile created", "key", key, "user_id", record.UserID)
	return nil
}

// Update merges the patch into the document stored under key.
func (g *ProfileGateway) Update(ctx context.Context, key string, patch domain.ProfileUpdate) error {
	if err := g.repo.Update(ctx, key, patch); err != nil {
		g.logger.Error("profile update failed", "key", key, "fields", len(patch), "error", err)
		return err
	}

	g.logger.Info("profile updated", "key", key, "fields", len(patch))
	return nil
}
