package store

import "github.com/MKhiriev/go-auth-keeper/internal/logger"

// Repositories bundles all persistence interfaces behind a single value that
// can be passed to the service layer.
type Repositories struct {
	UserRepository  UserRepository
	RoleRepository  RoleRepository
	OauthRepository OauthRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:  NewUserRepository(db, logger),
		RoleRepository:  NewRoleRepository(db, logger),
		OauthRepository: NewOauthRepository(db, logger),
	}
}
