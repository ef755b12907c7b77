package http

import (
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/oauth"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// oauthRedirect starts the authorization code flow: it sends the browser to
// the provider's consent page.
func (h *Handler) oauthRedirect(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	providerName := chi.URLParam(r, "provider")
	provider, ok := h.providers.Lookup(providerName)
	if !ok {
		log.Err(oauth.ErrProviderNotSupported).Str("provider", providerName).Send()
		http.Error(w, oauth.ErrProviderNotSupported.Error(), http.StatusNotFound)
		return
	}

	if !h.limiter.Allow(clientAddr(r)) {
		log.Err(oauth.ErrRateLimited).Str("provider", providerName).Send()
		http.Error(w, oauth.ErrRateLimited.Error(), http.StatusTooManyRequests)
		return
	}

	state := uuid.NewString()
	http.Redirect(w, r, provider.AuthorizationURL(state), http.StatusTemporaryRedirect)
}

// oauthCallback finishes the authorization code flow: it trades the code for
// a provider access token and signs the remote identity in.
func (h *Handler) oauthCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	providerName := chi.URLParam(r, "provider")
	provider, ok := h.providers.Lookup(providerName)
	if !ok {
		log.Err(oauth.ErrProviderNotSupported).Str("provider", providerName).Send()
		http.Error(w, oauth.ErrProviderNotSupported.Error(), http.StatusNotFound)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		log.Error().Str("provider", providerName).Msg("callback without authorization code")
		http.Error(w, "missing authorization code", http.StatusBadRequest)
		return
	}

	if !h.limiter.Allow(clientAddr(r)) {
		log.Err(oauth.ErrRateLimited).Str("provider", providerName).Send()
		http.Error(w, oauth.ErrRateLimited.Error(), http.StatusTooManyRequests)
		return
	}

	accessToken, err := provider.ExchangeCode(ctx, code)
	if err != nil {
		log.Err(err).Str("provider", providerName).Msg("authorization code exchange failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	response, err := h.services.AuthService.SignIn(ctx, models.SigninRequest{
		OauthProvider:    providerName,
		OauthAccessToken: accessToken,
	})
	if err != nil {
		log.Err(err).Str("provider", providerName).Msg("oauth sign-in failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	log.Debug().Str("login", response.User.Login).Str("provider", providerName).Msg("user signed in via oauth")

	utils.WriteJSON(w, response, http.StatusOK)
}

// clientAddr extracts the client host from RemoteAddr, dropping the port so
// that consecutive requests from one client share a rate budget.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
