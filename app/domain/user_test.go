package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserRecord(t *testing.T) {
	userID := uuid.New()

	record := NewUserRecord("user@example.com", userID)

	require.NotNil(t, record)
	assert.Equal(t, "user@example.com", record.Email)
	assert.Equal(t, userID.String(), record.UserID)

	createdAt, err := time.Parse(time.RFC3339, record.CreatedAt)
	require.NoError(t, err, "createdAt must be RFC3339")
	assert.WithinDuration(t, time.Now().UTC(), createdAt, time.Minute)
}

func TestUserRecord_Document(t *testing.T) {
	userID := uuid.New()
	record := NewUserRecord("user@example.com", userID)

	doc := record.Document()

	assert.Equal(t, "user@example.com", doc["email"])
	assert.Equal(t, record.CreatedAt, doc["createdAt"])
	assert.Equal(t, userID.String(), doc["userId"])
	assert.Len(t, doc, 3)
}

func TestSignupRequest_Credentials(t *testing.T) {
	req := SignupRequest{
		Email:           "user@example.com",
		Password:        "secret",
		ConfirmPassword: "secret",
	}

	creds := req.Credentials()

	assert.Equal(t, "user@example.com", creds.Email)
	assert.Equal(t, "secret", creds.Password)
}

func TestGatewayError(t *testing.T) {
	tests := []struct {
		name       string
		err        *GatewayError
		wantKind   error
		wantString string
	}{
		{
			name:       "kind with detail",
			err:        NewGatewayError(ErrWrongPassword, "sign_in", "kratos message 4000006"),
			wantKind:   ErrWrongPassword,
			wantString: "sign_in: wrong password: kratos message 4000006",
		},
		{
			name:       "kind without detail",
			err:        NewGatewayError(ErrProfileNotFound, "get_profile", ""),
			wantKind:   ErrProfileNotFound,
			wantString: "get_profile: profile not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantString, tt.err.Error())
			assert.True(t, errors.Is(tt.err, tt.wantKind))
		})
	}
}
