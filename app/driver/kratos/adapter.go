package kratos

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"

	"account-service/app/domain"
	"account-service/app/port"
)

// Adapter implements port.KratosClient using Kratos native (API-client)
// self-service flows: each credential operation is a flow creation followed
// by a flow submission, both against the public API.
type Adapter struct {
	client *Client
	logger *slog.Logger
}

// NewAdapter creates a new Adapter instance
func NewAdapter(client *Client, logger *slog.Logger) port.KratosClient {
	return &Adapter{
		client: client,
		logger: logger.With("component", "kratos_adapter"),
	}
}

// SubmitPasswordLogin runs a native login flow for the email/password pair
// and returns the authenticated identity with its session token.
func (a *Adapter) SubmitPasswordLogin(ctx context.Context, email, password string) (*domain.Identity, error) {
	flow, httpResp, err := a.client.PublicAPI().FrontendAPI.
		CreateNativeLoginFlow(ctx).
		Execute()
	if err != nil {
		a.logger.Error("login flow creation failed", "error", err)
		return nil, a.translateError(err, httpResp, "sign_in")
	}

	body := kratosclient.UpdateLoginFlowWithPasswordMethod{
		Method:     "password",
		Identifier: email,
		Password:   password,
	}

	result, httpResp, err := a.client.PublicAPI().FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(kratosclient.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&body)).
		Execute()
	if err != nil {
		a.logger.Error("login flow submission failed", "flow_id", flow.Id, "error", err)
		return nil, a.translateError(err, httpResp, "sign_in")
	}

	identity := result.Session.GetIdentity()
	token := result.GetSessionToken()

	return a.toDomainIdentity(identity.Id, identity.Traits, token, "sign_in")
}

// SubmitPasswordRegistration runs a native registration flow and returns
// the freshly created identity with its session token.
func (a *Adapter) SubmitPasswordRegistration(ctx context.Context, email, password string) (*domain.Identity, error) {
	flow, httpResp, err := a.client.PublicAPI().FrontendAPI.
		CreateNativeRegistrationFlow(ctx).
		Execute()
	if err != nil {
		a.logger.Error("registration flow creation failed", "error", err)
		return nil, a.translateError(err, httpResp, "create_account")
	}

	body := kratosclient.UpdateRegistrationFlowWithPasswordMethod{
		Method:   "password",
		Password: password,
		Traits: map[string]interface{}{
			"email": email,
		},
	}

	result, httpResp, err := a.client.PublicAPI().FrontendAPI.
		UpdateRegistrationFlow(ctx).
		Flow(flow.Id).
		UpdateRegistrationFlowBody(kratosclient.UpdateRegistrationFlowWithPasswordMethodAsUpdateRegistrationFlowBody(&body)).
		Execute()
	if err != nil {
		a.logger.Error("registration flow submission failed", "flow_id", flow.Id, "error", err)
		return nil, a.translateError(err, httpResp, "create_account")
	}

	return a.toDomainIdentity(result.Identity.Id, result.Identity.Traits, result.GetSessionToken(), "create_account")
}

// GetSession resolves a session token to its identity.
func (a *Adapter) GetSession(ctx context.Context, token string) (*domain.Identity, error) {
	session, httpResp, err := a.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		XSessionToken(token).
		Execute()
	if err != nil {
		a.logger.Warn("session lookup failed", "error", err)
		return nil, a.translateError(err, httpResp, "get_session")
	}

	identity := session.GetIdentity()
	return a.toDomainIdentity(identity.Id, identity.Traits, token, "get_session")
}

// toDomainIdentity maps a Kratos identity onto the domain type. Kratos
// identity ids are UUIDs; anything else is a provider fault.
func (a *Adapter) toDomainIdentity(id string, traits interface{}, token, op string) (*domain.Identity, error) {
	identityID, err := uuid.Parse(id)
	if err != nil {
		a.logger.Error("provider returned malformed identity id", "identity_id", id, "operation", op)
		return nil, domain.NewGatewayError(domain.ErrIdentityProvider, op, "malformed identity id")
	}

	return &domain.Identity{
		ID:    identityID,
		Email: emailFromTraits(traits),
		Token: token,
	}, nil
}

// emailFromTraits extracts the email trait from the identity schema.
func emailFromTraits(traits interface{}) string {
	m, ok := traits.(map[string]interface{})
	if !ok {
		return ""
	}

	email, _ := m["email"].(string)
	return email
}
