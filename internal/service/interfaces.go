package service

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// TokenService owns the token lifecycle: issuing signed pairs, verifying
// presented tokens, and tracking refresh token liveness in the registry.
type TokenService interface {
	// IssuePair signs a fresh access/refresh pair for the user. The access
	// token carries the user's roles as resolved at this moment; the refresh
	// token is registered as live for its full lifetime.
	IssuePair(ctx context.Context, user models.User) (models.TokenPair, []models.Role, error)

	// IssueAccess signs a fresh access token only. Roles are resolved live.
	IssueAccess(ctx context.Context, user models.User) (string, error)

	// VerifyAccess checks signature, expiry and kind of an access token.
	VerifyAccess(ctx context.Context, tokenString string) (models.TokenClaims, error)

	// VerifyRefresh checks signature, expiry and kind of a refresh token, and
	// confirms it is still registered as live.
	VerifyRefresh(ctx context.Context, tokenString string) (models.TokenClaims, error)

	// Revoke removes a refresh token from the live registry. Revoking an
	// unknown token is not an error.
	Revoke(ctx context.Context, tokenString string) error
}

// AuthService owns account registration and the sign-in flows.
type AuthService interface {
	// SignUp registers a password account and grants it the default role.
	SignUp(ctx context.Context, req models.SignupRequest) (models.UserWithRoles, error)

	// SignIn authenticates via the password path or the OAuth path depending
	// on which fields of req are populated, and issues a token pair.
	// A login history record is appended after successful issuance.
	SignIn(ctx context.Context, req models.SigninRequest) (models.SigninResponse, error)

	// Refresh issues a fresh access token against a live refresh token.
	// The refresh token itself is returned unchanged.
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)

	// VerifyAccess validates an access token and returns the current account
	// state with roles resolved live from the database.
	VerifyAccess(ctx context.Context, accessToken string) (models.User, []models.Role, error)

	// SignOut revokes a refresh token. Signing out twice is a no-op.
	SignOut(ctx context.Context, refreshToken string) error

	// LoginHistory returns the target user's sign-in records, most recent
	// first. Non-superusers may only read their own history.
	LoginHistory(ctx context.Context, actor models.User, targetLogin string, limit, offset uint64) ([]models.History, error)
}

// RoleService owns runtime role assignment. All operations require a
// superuser actor.
type RoleService interface {
	Assign(ctx context.Context, actor models.User, req models.RoleChangeRequest) error
	Revoke(ctx context.Context, actor models.User, req models.RoleChangeRequest) error
}
