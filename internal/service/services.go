package service

import (
	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/oauth"
	"github.com/MKhiriev/go-auth-keeper/internal/registry"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
)

type Services struct {
	TokenService TokenService
	AuthService  AuthService
	RoleService  RoleService
}

func NewServices(repos *store.Repositories, reg registry.TokenRegistry, providers oauth.ProviderRegistry, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	tokenService := NewTokenService(repos.RoleRepository, reg, cfg.App, logger)

	return &Services{
		TokenService: tokenService,
		AuthService:  NewAuthService(repos, tokenService, providers, cfg.App, logger),
		RoleService:  NewRoleService(repos.UserRepository, repos.RoleRepository, logger),
	}
}
