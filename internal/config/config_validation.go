// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and fills in defaults
// for optional fields left unset by every source.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Registry.Address == "" {
		return ErrInvalidRegistryConfigs
	}

	if cfg.App.AccessTokenTTL == 0 {
		cfg.App.AccessTokenTTL = DefaultAccessTokenTTL
	}
	if cfg.App.RefreshTokenTTL == 0 {
		cfg.App.RefreshTokenTTL = DefaultRefreshTokenTTL
	}
	if cfg.App.DefaultRole == "" {
		cfg.App.DefaultRole = DefaultRoleName
	}
	if cfg.Oauth.MaxRetries == 0 {
		cfg.Oauth.MaxRetries = DefaultOauthMaxRetries
	}
	if cfg.Oauth.RatePerMinute == 0 {
		cfg.Oauth.RatePerMinute = DefaultOauthRatePerMin
	}

	return nil
}
