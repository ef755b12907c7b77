package models

import (
	"time"

	"github.com/google/uuid"
)

// UserWithRoles is the client-facing user representation returned by
// sign-in and token verification.
type UserWithRoles struct {
	ID        uuid.UUID   `json:"user_id"`
	Login     string      `json:"login"`
	FirstName string      `json:"first_name,omitempty"`
	LastName  string      `json:"last_name,omitempty"`
	Roles     []RoleClaim `json:"roles"`
}

// TokenPair carries an access/refresh token pair. Refresh is returned
// unchanged by the refresh endpoint: this service does not rotate refresh
// tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// SigninResponse is the body of a successful sign-in.
type SigninResponse struct {
	TokenPair
	User UserWithRoles `json:"user"`
}

// HistoryResponse is a single login history entry as returned to clients.
type HistoryResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	LoginTime time.Time `json:"login_time"`
}

// MessageResponse is a generic human-readable confirmation body.
type MessageResponse struct {
	Msg string `json:"msg"`
}
