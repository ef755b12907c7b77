package models

import "github.com/golang-jwt/jwt/v5"

// Token kinds carried in the "kind" claim. A signed token is only as good as
// its kind: verification alone never tells an access token from a refresh
// token, so every caller must check Kind after a successful parse.
const (
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)

// RoleClaim is the role representation embedded in access token payloads
// and returned to clients alongside user info.
type RoleClaim struct {
	Name string `json:"name"`
}

// TokenClaims is the claim set carried by every token this service signs.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (sub, exp, iat)
// as defined by RFC 7519. Subject holds the user's login.
//
// Roles, FirstName and LastName are populated for access tokens only and are
// a snapshot taken at issuance time: role changes do not propagate into
// already-issued tokens until the next issuance.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Kind discriminates access tokens from refresh tokens.
	Kind string `json:"kind"`

	// Roles is the list of role names resolved at issuance time.
	// Empty for refresh tokens.
	Roles []RoleClaim `json:"roles,omitempty"`

	// FirstName is the user's given name at issuance time.
	// Empty for refresh tokens.
	FirstName string `json:"first_name,omitempty"`

	// LastName is the user's family name at issuance time.
	// Empty for refresh tokens.
	LastName string `json:"last_name,omitempty"`
}
