// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package oauth

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/cenkalti/backoff/v5"
)

// Public Yandex OAuth endpoints, used when the configuration does not
// override them (tests point them at local servers).
const (
	yandexProviderName    = "yandex"
	defaultYandexAuthURL  = "https://oauth.yandex.com/authorize"
	defaultYandexTokenURL = "https://oauth.yandex.com/token"
	defaultYandexInfoURL  = "https://login.yandex.ru/info"
)

// yandexTokenResponse is the code-for-token exchange response. Yandex signals
// application-level failures with a 200/400 body carrying an error field.
type yandexTokenResponse struct {
	AccessToken      string `json:"access_token"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// yandexProvider implements [Provider] for Yandex OAuth.
//
// Transport failures are retried with exponential backoff up to maxRetries
// attempts. Application-level rejections (invalid code, expired token) are
// never retried.
type yandexProvider struct {
	client     *utils.HTTPClient
	cfg        config.YandexOauth
	maxRetries int
	logger     *logger.Logger
}

// NewYandexProvider constructs a Yandex gateway from the application
// configuration. Endpoint URLs left empty fall back to the public Yandex
// endpoints.
func NewYandexProvider(cfg config.YandexOauth, maxRetries int, log *logger.Logger) Provider {
	if cfg.AuthURL == "" {
		cfg.AuthURL = defaultYandexAuthURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = defaultYandexTokenURL
	}
	if cfg.ProfileURL == "" {
		cfg.ProfileURL = defaultYandexInfoURL
	}

	return &yandexProvider{
		client:     utils.NewHTTPClient(),
		cfg:        cfg,
		maxRetries: maxRetries,
		logger:     log,
	}
}

// Name implements [Provider].
func (y *yandexProvider) Name() string {
	return yandexProviderName
}

// AuthorizationURL implements [Provider].
func (y *yandexProvider) AuthorizationURL(state string) string {
	query := url.Values{}
	query.Set("response_type", "code")
	query.Set("client_id", y.cfg.ClientID)
	if y.cfg.RedirectURI != "" {
		query.Set("redirect_uri", y.cfg.RedirectURI)
	}
	if state != "" {
		query.Set("state", state)
	}

	return y.cfg.AuthURL + "?" + query.Encode()
}

// ExchangeCode implements [Provider]. It POSTs the authorization code to the
// token endpoint as a form body and returns the provider access token.
func (y *yandexProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	log := logger.FromContext(ctx)

	operation := func() (string, error) {
		var tokenResp yandexTokenResponse

		form := map[string]string{
			"grant_type":    "authorization_code",
			"code":          code,
			"client_id":     y.cfg.ClientID,
			"client_secret": y.cfg.ClientSecret,
		}
		// must match the redirect_uri sent on the authorize step
		if y.cfg.RedirectURI != "" {
			form["redirect_uri"] = y.cfg.RedirectURI
		}

		resp, err := y.client.R().
			SetContext(ctx).
			SetFormData(form).
			SetResult(&tokenResp).
			SetError(&tokenResp).
			Post(y.cfg.TokenURL)
		if err != nil {
			log.Err(err).Str("func", "*yandexProvider.ExchangeCode").Msg("error: token endpoint unreachable")
			return "", err
		}

		// the provider answered: any failure here is final
		if tokenResp.Error != "" {
			return "", backoff.Permanent(fmt.Errorf("%w: %s", ErrUpstreamRejected, tokenResp.ErrorDescription))
		}
		if resp.IsError() || tokenResp.AccessToken == "" {
			return "", backoff.Permanent(fmt.Errorf("%w: status %d", ErrUpstreamRejected, resp.StatusCode()))
		}

		return tokenResp.AccessToken, nil
	}

	token, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(uint(y.maxRetries)),
	)
	if err != nil {
		if errors.Is(err, ErrUpstreamRejected) {
			return "", err
		}
		return "", fmt.Errorf("%w: %s", ErrUpstreamUnavailable, err)
	}

	return token, nil
}

// FetchProfile implements [Provider]. It GETs the userinfo endpoint with the
// provider's "OAuth" authorization scheme.
func (y *yandexProvider) FetchProfile(ctx context.Context, accessToken string) (models.OauthProfile, error) {
	log := logger.FromContext(ctx)

	operation := func() (models.OauthProfile, error) {
		var profile models.OauthProfile

		resp, err := y.client.R().
			SetContext(ctx).
			SetHeader("Authorization", "OAuth "+accessToken).
			SetResult(&profile).
			Get(y.cfg.ProfileURL)
		if err != nil {
			log.Err(err).Str("func", "*yandexProvider.FetchProfile").Msg("error: userinfo endpoint unreachable")
			return models.OauthProfile{}, err
		}

		if resp.IsError() {
			return models.OauthProfile{}, backoff.Permanent(fmt.Errorf("%w: status %d", ErrUpstreamRejected, resp.StatusCode()))
		}
		if profile.Login == "" {
			return models.OauthProfile{}, backoff.Permanent(fmt.Errorf("%w: empty profile login", ErrUpstreamRejected))
		}

		return profile, nil
	}

	profile, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(uint(y.maxRetries)),
	)
	if err != nil {
		if errors.Is(err, ErrUpstreamRejected) {
			return models.OauthProfile{}, err
		}
		return models.OauthProfile{}, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, err)
	}

	return profile, nil
}
