package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"account-service/app/domain"
	"account-service/app/port"
)

// ProfileRepository implements port.ProfileRepository on a user_profiles
// table holding one JSONB document per key. The merge semantics of Update
// come from the JSONB || operator: caller-supplied fields overwrite, all
// other fields are left unchanged.
type ProfileRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db DatabaseIface, logger *slog.Logger) port.ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger.With("component", "profile_repository"),
	}
}

// Exists reports whether a profile document is stored under key.
func (r *ProfileRepository) Exists(ctx context.Context, key string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM user_profiles WHERE key = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, key).Scan(&exists); err != nil {
		r.logger.Error("existence probe failed", "key", key, "error", err)
		return false, domain.NewGatewayError(domain.ErrProfileStore, "exists", err.Error())
	}

	return exists, nil
}

// Get fetches the document stored under key.
func (r *ProfileRepository) Get(ctx context.Context, key string) (domain.ProfileDocument, error) {
	query := `SELECT document FROM user_profiles WHERE key = $1`

	var raw []byte
	err := r.db.QueryRow(ctx, query, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewGatewayError(domain.ErrProfileNotFound, "get", key)
		}
		r.logger.Error("profile read failed", "key", key, "error", err)
		return nil, domain.NewGatewayError(domain.ErrProfileStore, "get", err.Error())
	}

	var doc domain.ProfileDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		r.logger.Error("stored document is not valid JSON", "key", key, "error", err)
		return nil, domain.NewGatewayError(domain.ErrProfileStore, "get", err.Error())
	}

	return doc, nil
}

// Create writes the initial record under key. The primary key constraint
// is the real uniqueness guarantee; the usecase's existence probe is only
// a courtesy check and the two are not atomic.
func (r *ProfileRepository) Create(ctx context.Context, key string, record *domain.UserRecord) error {
	query := `
		INSERT INTO user_profiles (key, document, created_at, updated_at)
		VALUES ($1, $2, now(), now())`

	document, err := json.Marshal(record.Document())
	if err != nil {
		return domain.NewGatewayError(domain.ErrProfileStore, "create", err.Error())
	}

	if _, err := r.db.Exec(ctx, query, key, document); err != nil {
		r.logger.Error("profile insert failed", "key", key, "error", err)
		return domain.NewGatewayError(domain.ErrProfileStore, "create", err.Error())
	}

	return nil
}

// Update merges the patch into the stored document. No pre-check: updating
// a missing key affects zero rows and is reported as a store failure.
func (r *ProfileRepository) Update(ctx context.Context, key string, patch domain.ProfileUpdate) error {
	query := `
		UPDATE user_profiles
		SET document = document || $2::jsonb, updated_at = now()
		WHERE key = $1`

	encoded, err := json.Marshal(patch)
	if err != nil {
		return domain.NewGatewayError(domain.ErrProfileStore, "update", err.Error())
	}

	tag, err := r.db.Exec(ctx, query, key, encoded)
	if err != nil {
		r.logger.Error("profile update failed", "key", key, "error", err)
		return domain.NewGatewayError(domain.ErrProfileStore, "update", err.Error())
	}

	if tag.RowsAffected() == 0 {
		return domain.NewGatewayError(domain.ErrProfileStore, "update", fmt.Sprintf("no profile under key %s", key))
	}

	return nil
}
