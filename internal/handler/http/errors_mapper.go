package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/oauth"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrIdentityConflict:        http.StatusConflict,
	service.ErrForbidden:               http.StatusForbidden,

	store.ErrLoginAlreadyExists:    http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrNoRoleWasFound:        http.StatusNotFound,
	store.ErrRoleAlreadyAssigned:   http.StatusConflict,
	store.ErrRoleNotAssigned:       http.StatusNotFound,
	store.ErrNoProviderWasFound:    http.StatusBadRequest,
	store.ErrIdentityAlreadyLinked: http.StatusConflict,

	oauth.ErrProviderNotSupported: http.StatusNotFound,
	oauth.ErrUpstreamRejected:     http.StatusBadRequest,
	oauth.ErrUpstreamUnavailable:  http.StatusBadGateway,
	oauth.ErrRateLimited:          http.StatusTooManyRequests,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
