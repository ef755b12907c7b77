package store

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/google/uuid"
)

// UserRepository persists user accounts and their login history.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	AppendHistory(ctx context.Context, entry models.History) (models.History, error)
	ListHistory(ctx context.Context, userID uuid.UUID, limit, offset uint64) ([]models.History, error)
}

// RoleRepository resolves roles and manages user-role assignments.
type RoleRepository interface {
	FindRoleByName(ctx context.Context, name string) (models.Role, error)
	ListUserRoles(ctx context.Context, userID uuid.UUID) ([]models.Role, error)
	AssignRole(ctx context.Context, userRole models.UserRole) (models.UserRole, error)
	RevokeRole(ctx context.Context, userID, roleID uuid.UUID) error
}

// OauthRepository persists OAuth providers and linked remote identities.
type OauthRepository interface {
	FindProviderByName(ctx context.Context, name string) (models.OauthProvider, error)
	FindIdentityByEmail(ctx context.Context, email string) (models.UserOauthProvider, error)
	CreateIdentity(ctx context.Context, identity models.UserOauthProvider) (models.UserOauthProvider, error)
	UpdateIdentity(ctx context.Context, identity models.UserOauthProvider) (models.UserOauthProvider, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
