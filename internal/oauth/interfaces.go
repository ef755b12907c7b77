package oauth

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// Provider is an outbound gateway to a single third-party identity provider.
// Implementations translate the provider's wire protocol into the neutral
// [models.OauthProfile] shape used by the rest of the service.
type Provider interface {
	// Name returns the provider name as stored in the oauth_provider table.
	Name() string

	// AuthorizationURL builds the browser redirect URL that starts the
	// authorization code flow. state is echoed back on the callback.
	AuthorizationURL(state string) string

	// ExchangeCode trades an authorization code for the provider's access
	// token.
	ExchangeCode(ctx context.Context, code string) (string, error)

	// FetchProfile retrieves the remote profile for a provider access token.
	FetchProfile(ctx context.Context, accessToken string) (models.OauthProfile, error)
}

// ProviderRegistry resolves a provider gateway by name. [Providers] is the
// production implementation.
type ProviderRegistry interface {
	Lookup(name string) (Provider, bool)
}
