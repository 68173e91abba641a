package domain

import (
	"time"

	"github.com/google/uuid"
)

// Credentials carries a login attempt. It exists only for the duration of
// one request and is never persisted.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest carries a registration attempt. The email doubles as the
// profile key, so it must be syntactically valid here even though login
// only checks presence.
type SignupRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// Credentials returns the credential pair the identity provider consumes.
func (r *SignupRequest) Credentials() Credentials {
	return Credentials{Email: r.Email, Password: r.Password}
}

// UserRecord is the profile document written exactly once at signup,
// keyed by the user's email.
type UserRecord struct {
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	UserID    string `json:"userId"`
}

// NewUserRecord builds the initial profile record for a freshly created
// identity. CreatedAt is RFC3339 so it round-trips through the JSONB store.
func NewUserRecord(email string, userID uuid.UUID) *UserRecord {
	return &UserRecord{
		Email:     email,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		UserID:    userID.String(),
	}
}

// Document converts the record into the store's document shape.
func (r *UserRecord) Document() ProfileDocument {
	return ProfileDocument{
		"email":     r.Email,
		"createdAt": r.CreatedAt,
		"userId":    r.UserID,
	}
}

// ProfileDocument is a stored profile as the document store returns it.
// Profile updates merge arbitrary caller-supplied fields, so reads cannot
// assume the UserRecord shape.
type ProfileDocument map[string]interface{}

// ProfileUpdate is a field-to-value patch applied verbatim to a stored
// profile. No schema is enforced at this layer.
type ProfileUpdate map[string]interface{}

// Identity is an authenticated principal as resolved by the identity
// provider. Token is the opaque bearer credential issued alongside it;
// this service forwards it and never parses it.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Token string    `json:"-"`
}
