package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"account-service/app/domain"
	"account-service/app/utils/logger"
)

// Helper function to create a test profile repository with mocked database
func createTestProfileRepository(t *testing.T) (*ProfileRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewProfileRepository(mockDB, testLogger).(*ProfileRepository)

	return repo, mockDB
}

func TestProfileRepository_Exists(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		setupDB    func(pgxmock.PgxPoolIface)
		wantExists bool
		wantErr    bool
	}{
		{
			name: "key present",
			key:  "user@example.com",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT EXISTS").
					WithArgs("user@example.com").
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			},
			wantExists: true,
		},
		{
			name: "key absent",
			key:  "new@example.com",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT EXISTS").
					WithArgs("new@example.com").
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
			wantExists: false,
		},
		{
			name: "query failure is a store error",
			key:  "user@example.com",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT EXISTS").
					WithArgs("user@example.com").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestProfileRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			exists, err := repo.Exists(context.Background(), tt.key)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrProfileStore))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantExists, exists)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestProfileRepository_Get(t *testing.T) {
	document := []byte(`{"email":"user@example.com","createdAt":"2026-01-15T09:30:00Z","userId":"8b2d7a0e-3e65-4a3d-9f1c-1f6b0a6f1a11","bio":"hello"}`)

	tests := []struct {
		name     string
		key      string
		setupDB  func(pgxmock.PgxPoolIface)
		wantKind error
		validate func(*testing.T, domain.ProfileDocument)
	}{
		{
			name: "returns the full stored document including merged fields",
			key:  "user@example.com",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT document FROM user_profiles").
					WithArgs("user@example.com").
					WillReturnRows(pgxmock.NewRows([]string{"document"}).AddRow(document))
			},
			validate: func(t *testing.T, doc domain.ProfileDocument) {
				assert.Equal(t, "user@example.com", doc["email"])
				assert.Equal(t, "hello", doc["bio"])
				assert.Len(t, doc, 4)
			},
		},
		{
			name: "missing key is profile not found",
			key:  "ghost@example.com",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT document FROM user_profiles").
					WithArgs("ghost@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			wantKind: domain.ErrProfileNotFound,
		},
		{
			name: "other failures are store errors",
			key:  "user@example.com",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT document FROM user_profiles").
					WithArgs("user@example.com").
					WillReturnError(errors.New("connection reset"))
			},
			wantKind: domain.ErrProfileStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestProfileRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			doc, err := repo.Get(context.Background(), tt.key)

			if tt.wantKind != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				tt.validate(t, doc)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestProfileRepository_Create(t *testing.T) {
	userID := uuid.New()
	record := domain.NewUserRecord("user@example.com", userID)
	encoded, err := json.Marshal(record.Document())
	require.NoError(t, err)

	t.Run("inserts the record document under the key", func(t *testing.T) {
		repo, mockDB := createTestProfileRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("INSERT INTO user_profiles").
			WithArgs("user@example.com", encoded).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Create(context.Background(), "user@example.com", record)

		require.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("insert failure is a store error", func(t *testing.T) {
		repo, mockDB := createTestProfileRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("INSERT INTO user_profiles").
			WithArgs("user@example.com", encoded).
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		err := repo.Create(context.Background(), "user@example.com", record)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrProfileStore))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestProfileRepository_Update(t *testing.T) {
	patch := domain.ProfileUpdate{"bio": "updated", "location": "Lisbon"}
	encoded, err := json.Marshal(patch)
	require.NoError(t, err)

	t.Run("merges the patch into the stored document", func(t *testing.T) {
		repo, mockDB := createTestProfileRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE user_profiles").
			WithArgs("user@example.com", encoded).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Update(context.Background(), "user@example.com", patch)

		require.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("missing key affects no rows and is a store error", func(t *testing.T) {
		repo, mockDB := createTestProfileRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE user_profiles").
			WithArgs("ghost@example.com", encoded).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.Update(context.Background(), "ghost@example.com", patch)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrProfileStore))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("write failure is a store error", func(t *testing.T) {
		repo, mockDB := createTestProfileRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE user_profiles").
			WithArgs("user@example.com", encoded).
			WillReturnError(errors.New("connection reset"))

		err := repo.Update(context.Background(), "user@example.com", patch)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrProfileStore))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
