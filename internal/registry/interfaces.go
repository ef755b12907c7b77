package registry

import (
	"context"
	"time"
)

// TokenRegistry tracks which refresh tokens are currently live. A token is
// live from the moment it is registered until it is revoked or its TTL
// elapses. The registry stores opaque signed token strings and never inspects
// their contents.
type TokenRegistry interface {
	// Register marks a token as live for the given duration.
	Register(ctx context.Context, token string, ttl time.Duration) error

	// IsLive reports whether a token is currently registered. An unknown or
	// expired token yields (false, nil), not an error.
	IsLive(ctx context.Context, token string) (bool, error)

	// Revoke removes a token from the registry. Revoking a token that is not
	// registered is a no-op.
	Revoke(ctx context.Context, token string) error

	// Close releases the underlying connection resources.
	Close() error
}
