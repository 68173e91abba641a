package gateway

import (
	"context"
	"log/slog"

	"account-service/app/domain"
	"account-service/app/port"
)

// IdentityGateway implements port.IdentityGateway on top of the Kratos
// driver. It is the anti-corruption layer between the domain and the
// external identity provider: everything below it speaks provider codes,
// everything above it speaks domain error kinds.
type IdentityGateway struct {
	client port.KratosClient
	logger *slog.Logger
}

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(client port.KratosClient, logger *slog.Logger) *IdentityGateway {
	return &IdentityGateway{
		client: client,
		logger: logger.With("component", "identity_gateway"),
	}
}

// SignIn verifies the credential pair with the provider. Single attempt;
// errors surface immediately.
func (g *IdentityGateway) SignIn(ctx context.Context, email, password string) (*domain.Identity, error) {
	identity, err := g.client.SubmitPasswordLogin(ctx, email, password)
	if err != nil {
		g.logger.Error("sign-in failed", "email", email, "error", err)
		return nil, err
	}

	g.logger.Info("sign-in succeeded", "email", email, "identity_id", identity.ID)
	return identity, nil
}

// CreateAccount registers a new identity with the provider.
func (g *IdentityGateway) CreateAccount(ctx context.Context, email, password string) (*domain.Identity, error) {
	identity, err := g.client.SubmitPasswordRegistration(ctx, email, password)
	if err != nil {
		g.logger.Error("account creation failed", "email", email, "error", err)
		return nil, err
	}

	g.logger.Info("account created", "email", email, "identity_id", identity.ID)
	return identity, nil
}

// IssueToken returns the bearer credential the provider issued alongside
// the authenticated identity.
func (g *IdentityGateway) IssueToken(ctx context.Context, identity *domain.Identity) (string, error) {
	if identity == nil || identity.Token == "" {
		g.logger.Error("provider returned no token", "identity", identityIDForLog(identity))
		return "", domain.NewGatewayError(domain.ErrIdentityProvider, "issue_token", "provider session carried no token")
	}

	return identity.Token, nil
}

// Authenticate resolves a bearer credential to its identity.
func (g *IdentityGateway) Authenticate(ctx context.Context, token string) (*domain.Identity, error) {
	identity, err := g.client.GetSession(ctx, token)
	if err != nil {
		g.logger.Warn("token resolution failed", "error", err)
		return nil, err
	}

	return identity, nil
}

func identityIDForLog(identity *domain.Identity) string {
	if identity == nil {
		return "nil"
	}
	return identity.ID.String()
}
