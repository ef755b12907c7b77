package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/oauth"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// ---- Shared helpers ----

// testOauthConfig returns an Oauth config with no providers enabled.
func testOauthConfig() config.Oauth {
	return config.Oauth{
		MaxRetries:    1,
		RatePerMinute: 1000,
	}
}

// requestWithUser stores an authenticated user in the request context, the
// same way the auth middleware does in production.
func requestWithUser(r *http.Request, user models.User) *http.Request {
	ctx := context.WithValue(r.Context(), utils.CurrentUserCtxKey, user)
	return r.WithContext(ctx)
}

// injectNopLogger кладёт nop-логгер в контекст запроса.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	providers := oauth.NewProviders(testOauthConfig(), logger.Nop())
	limiter := oauth.NewClientLimiter(1000)

	h := NewHandler(svcs, providers, limiter, logger.Nop())

	assert.Same(t, svcs, h.services)
	assert.Same(t, limiter, h.limiter)
	assert.NotNil(t, h.providers)
	assert.NotNil(t, h.logger)
}
