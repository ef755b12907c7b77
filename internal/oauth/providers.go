package oauth

import (
	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

// Providers is the registry of configured provider gateways, keyed by name.
type Providers struct {
	providers map[string]Provider
}

// NewProviders constructs all provider gateways enabled by the configuration.
// A provider with an empty client ID is considered disabled and is not
// registered.
func NewProviders(cfg config.Oauth, log *logger.Logger) *Providers {
	providers := make(map[string]Provider)

	if cfg.Yandex.ClientID != "" {
		yandex := NewYandexProvider(cfg.Yandex, cfg.MaxRetries, log)
		providers[yandex.Name()] = yandex
	}

	return &Providers{providers: providers}
}

// Lookup returns the gateway registered under name.
func (p *Providers) Lookup(name string) (Provider, bool) {
	provider, ok := p.providers[name]
	return provider, ok
}
