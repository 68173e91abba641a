package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"account-service/app/domain"
	mock_port "account-service/app/mocks"
	"account-service/app/usecase"
)

func TestAccountUseCase_Login(t *testing.T) {
	identityID := uuid.New()

	tests := []struct {
		name      string
		creds     domain.Credentials
		setup     func(identity *mock_port.MockIdentityGateway)
		wantToken string
		wantErr   error
	}{
		{
			name:  "successful login returns provider token",
			creds: domain.Credentials{Email: "user@example.com", Password: "secret"},
			setup: func(identity *mock_port.MockIdentityGateway) {
				resolved := &domain.Identity{ID: identityID, Email: "user@example.com", Token: "session-token"}
				identity.EXPECT().
					SignIn(gomock.Any(), "user@example.com", "secret").
					Return(resolved, nil)
				identity.EXPECT().
					IssueToken(gomock.Any(), resolved).
					Return("session-token", nil)
			},
			wantToken: "session-token",
		},
		{
			name:  "unknown email surfaces user not found",
			creds: domain.Credentials{Email: "nobody@example.com", Password: "secret"},
			setup: func(identity *mock_port.MockIdentityGateway) {
				identity.EXPECT().
					SignIn(gomock.Any(), "nobody@example.com", "secret").
					Return(nil, domain.NewGatewayError(domain.ErrUserNotFound, "sign_in", "code 4000035"))
			},
			wantErr: domain.ErrUserNotFound,
		},
		{
			name:  "wrong password surfaces unchanged",
			creds: domain.Credentials{Email: "user@example.com", Password: "bad"},
			setup: func(identity *mock_port.MockIdentityGateway) {
				identity.EXPECT().
					SignIn(gomock.Any(), "user@example.com", "bad").
					Return(nil, domain.NewGatewayError(domain.ErrWrongPassword, "sign_in", "code 4000006"))
			},
			wantErr: domain.ErrWrongPassword,
		},
		{
			name:  "token issuance failure aborts the login",
			creds: domain.Credentials{Email: "user@example.com", Password: "secret"},
			setup: func(identity *mock_port.MockIdentityGateway) {
				resolved := &domain.Identity{ID: identityID, Email: "user@example.com"}
				identity.EXPECT().
					SignIn(gomock.Any(), "user@example.com", "secret").
					Return(resolved, nil)
				identity.EXPECT().
					IssueToken(gomock.Any(), resolved).
					Return("", domain.NewGatewayError(domain.ErrIdentityProvider, "issue_token", ""))
			},
			wantErr: domain.ErrIdentityProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			identity := mock_port.NewMockIdentityGateway(ctrl)
			profiles := mock_port.NewMockProfileGateway(ctrl)
			tt.setup(identity)

			uc := usecase.NewAccountUseCase(identity, profiles)
			token, err := uc.Login(context.Background(), tt.creds)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAccountUseCase_Signup(t *testing.T) {
	identityID := uuid.New()
	req := domain.SignupRequest{
		Email:           "new@example.com",
		Password:        "secret",
		ConfirmPassword: "secret",
	}

	t.Run("existing profile blocks signup before account creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		identity := mock_port.NewMockIdentityGateway(ctrl)
		profiles := mock_port.NewMockProfileGateway(ctrl)

		profiles.EXPECT().
			Exists(gomock.Any(), "new@example.com").
			Return(true, nil)
		// No CreateAccount, IssueToken or Create expectations: the
		// controller fails the test if any of them is called.

		uc := usecase.NewAccountUseCase(identity, profiles)
		token, err := uc.Signup(context.Background(), req)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrProfileExists)
		assert.Empty(t, token)
	})

	t.Run("existence check failure aborts signup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		identity := mock_port.NewMockIdentityGateway(ctrl)
		profiles := mock_port.NewMockProfileGateway(ctrl)

		profiles.EXPECT().
			Exists(gomock.Any(), "new@example.com").
			Return(false, domain.NewGatewayError(domain.ErrProfileStore, "exists", "connection refused"))

		uc := usecase.NewAccountUseCase(identity, profiles)
		_, err := uc.Signup(context.Background(), req)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrProfileStore)
	})

	t.Run("provider conflict surfaces unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		identity := mock_port.NewMockIdentityGateway(ctrl)
		profiles := mock_port.NewMockProfileGateway(ctrl)

		profiles.EXPECT().
			Exists(gomock.Any(), "new@example.com").
			Return(false, nil)
		identity.EXPECT().
			CreateAccount(gomock.Any(), "new@example.com", "secret").
			Return(nil, domain.NewGatewayError(domain.ErrEmailAlreadyInUse, "create_account", "code 4000028"))

		uc := usecase.NewAccountUseCase(identity, profiles)
		_, err := uc.Signup(context.Background(), req)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyInUse)
	})

	t.Run("successful signup writes exactly one profile record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		identity := mock_port.NewMockIdentityGateway(ctrl)
		profiles := mock_port.NewMockProfileGateway(ctrl)

		created := &domain.Identity{ID: identityID, Email: "new@example.com", Token: "fresh-token"}

		profiles.EXPECT().
			Exists(gomock.Any(), "new@example.com").
			Return(false, nil)
		identity.EXPECT().
			CreateAccount(gomock.Any(), "new@example.com", "secret").
			Return(created, nil)
		identity.EXPECT().
			IssueToken(gomock.Any(), created).
			Return("fresh-token", nil)
		profiles.EXPECT().
			Create(gomock.Any(), "new@example.com", gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, record *domain.UserRecord) error {
				assert.Equal(t, "new@example.com", record.Email)
				assert.Equal(t, identityID.String(), record.UserID)
				assert.NotEmpty(t, record.CreatedAt)
				return nil
			}).
			Times(1)

		uc := usecase.NewAccountUseCase(identity, profiles)
		token, err := uc.Signup(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "fresh-token", token)
	})

	t.Run("profile write failure after token issuance is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		identity := mock_port.NewMockIdentityGateway(ctrl)
		profiles := mock_port.NewMockProfileGateway(ctrl)

		created := &domain.Identity{ID: identityID, Email: "new@example.com", Token: "fresh-token"}

		profiles.EXPECT().
			Exists(gomock.Any(), "new@example.com").
			Return(false, nil)
		identity.EXPECT().
			CreateAccount(gomock.Any(), "new@example.com", "secret").
			Return(created, nil)
		identity.EXPECT().
			IssueToken(gomock.Any(), created).
			Return("fresh-token", nil)
		profiles.EXPECT().
			Create(gomock.Any(), "new@example.com", gomock.Any()).
			Return(domain.NewGatewayError(domain.ErrProfileStore, "create", "insert failed"))

		uc := usecase.NewAccountUseCase(identity, profiles)
		token, err := uc.Signup(context.Background(), req)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrProfileStore)
		assert.Contains(t, err.Error(), "profile write failed")
		assert.Empty(t, token)
	})
}
