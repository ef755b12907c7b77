package models

import "github.com/google/uuid"

// OauthProvider is a supported third-party identity provider.
// Providers are static reference data seeded by migrations.
type OauthProvider struct {
	// ID is the unique identifier of the provider.
	ID uuid.UUID `json:"id"`

	// Name is the unique provider name (e.g. "yandex").
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the OauthProvider model.
func (p OauthProvider) TableName() string {
	return "oauth_provider"
}

// UserOauthProvider is a remote OAuth account's profile record bound to at
// most one local user. The remote email is globally unique: once an email is
// linked to user A it must never be silently rebound to user B — the service
// layer treats such an attempt as a conflict, not a merge.
type UserOauthProvider struct {
	// ID is the unique identifier of the linked identity.
	ID uuid.UUID `json:"id"`

	// UserID references the local user the remote identity is bound to.
	// uuid.Nil means the identity is not yet linked.
	UserID uuid.UUID `json:"user_id"`

	// ProviderID references the OAuth provider this identity belongs to.
	ProviderID uuid.UUID `json:"provider_id"`

	// Email is the unique remote account identifier returned by the provider.
	Email string `json:"email"`

	// FirstName is the optional given name from the remote profile.
	FirstName string `json:"first_name,omitempty"`

	// LastName is the optional family name from the remote profile.
	LastName string `json:"last_name,omitempty"`
}

// TableName returns the name of the database table
// associated with the UserOauthProvider model.
func (i UserOauthProvider) TableName() string {
	return "user_oauth_provider"
}

// OauthProfile is the subset of a remote profile the gateway extracts from a
// provider's userinfo response. Login doubles as the email key used for
// identity linking.
type OauthProfile struct {
	Login     string `json:"login"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
