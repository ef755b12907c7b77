package oauth

import "errors"

// Sentinel errors returned by the outbound OAuth gateway. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrProviderNotSupported is returned when a sign-in request names a
	// provider that has no configured gateway.
	ErrProviderNotSupported = errors.New("oauth provider is not supported")

	// ErrUpstreamRejected is returned when the provider answered but refused
	// the request (invalid code, expired token, revoked grant). Retrying the
	// same request cannot succeed.
	ErrUpstreamRejected = errors.New("oauth provider rejected the request")

	// ErrUpstreamUnavailable is returned when the provider could not be
	// reached after all retry attempts were exhausted.
	ErrUpstreamUnavailable = errors.New("oauth provider is unavailable")

	// ErrRateLimited is returned when a client address has exhausted its
	// outbound request budget for the current window.
	ErrRateLimited = errors.New("too many oauth requests")
)
