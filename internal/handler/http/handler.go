package http

import (
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/oauth"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
)

type Handler struct {
	services  *service.Services
	providers oauth.ProviderRegistry
	limiter   *oauth.ClientLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, providers oauth.ProviderRegistry, limiter *oauth.ClientLimiter, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		providers: providers,
		limiter:   limiter,
		logger:    logger,
	}
}
