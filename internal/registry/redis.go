// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

// liveMarker is the value stored under every registered token key. Only key
// presence matters; the value exists for debuggability when inspecting the
// registry by hand.
const liveMarker = "valid"

// redisRegistry is the Redis-backed implementation of [TokenRegistry].
// Each live token is a key whose expiry mirrors the token's own lifetime, so
// the registry self-cleans without a background sweeper.
type redisRegistry struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisRegistry connects to Redis using the provided settings and returns
// a [TokenRegistry]. The connection is verified with a PING before use.
func NewRedisRegistry(ctx context.Context, cfg config.Registry, log *logger.Logger) (TokenRegistry, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisRegistry").Msg("error connecting token registry (ping)")
		return nil, fmt.Errorf("error connecting token registry: %w", err)
	}
	log.Info().Str("func", "NewRedisRegistry").Msg("connected to token registry successfully")

	return &redisRegistry{
		client: client,
		logger: log,
	}, nil
}

// Register implements [TokenRegistry].
func (r *redisRegistry) Register(ctx context.Context, token string, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	if err := r.client.Set(ctx, token, liveMarker, ttl).Err(); err != nil {
		log.Err(err).Str("func", "*redisRegistry.Register").Msg("error registering token")
		return fmt.Errorf("error registering token: %w", err)
	}

	return nil
}

// IsLive implements [TokenRegistry].
func (r *redisRegistry) IsLive(ctx context.Context, token string) (bool, error) {
	log := logger.FromContext(ctx)

	if err := r.client.Get(ctx, token).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		log.Err(err).Str("func", "*redisRegistry.IsLive").Msg("error checking token")
		return false, fmt.Errorf("error checking token: %w", err)
	}

	return true, nil
}

// Revoke implements [TokenRegistry].
func (r *redisRegistry) Revoke(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if err := r.client.Del(ctx, token).Err(); err != nil {
		log.Err(err).Str("func", "*redisRegistry.Revoke").Msg("error revoking token")
		return fmt.Errorf("error revoking token: %w", err)
	}

	return nil
}

// Close implements [TokenRegistry].
func (r *redisRegistry) Close() error {
	return r.client.Close()
}
