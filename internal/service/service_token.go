// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/registry"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// tokenService is the concrete implementation of TokenService.
//
// Access tokens are self-contained: once issued they verify offline until
// expiry. Refresh tokens are double-gated: the signature must verify AND the
// exact token string must still be present in the registry. Revocation
// therefore takes effect immediately for refresh tokens and at most one
// access TTL later for access tokens.
type tokenService struct {
	roleRepository store.RoleRepository
	registry       registry.TokenRegistry

	// tokenSignKey is the HMAC secret used to sign and verify all tokens.
	tokenSignKey string

	accessTTL  time.Duration
	refreshTTL time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a TokenService wired to the role repository used
// for claim resolution and the registry tracking live refresh tokens.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewTokenService(roleRepository store.RoleRepository, reg registry.TokenRegistry, cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		roleRepository: roleRepository,
		registry:       reg,
		tokenSignKey:   cfg.TokenSignKey,
		accessTTL:      cfg.AccessTokenTTL,
		refreshTTL:     cfg.RefreshTokenTTL,
		logger:         logger,
	}
}

// IssuePair implements [TokenService]. The refresh token is registered before
// the pair is returned: a pair whose refresh half failed to register is never
// handed out.
func (t *tokenService) IssuePair(ctx context.Context, user models.User) (models.TokenPair, []models.Role, error) {
	log := logger.FromContext(ctx)

	roles, err := t.roleRepository.ListUserRoles(ctx, user.ID)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("role resolution failed")
		return models.TokenPair{}, nil, fmt.Errorf("role resolution failed: %w", err)
	}

	accessToken, err := t.signAccess(user, roles)
	if err != nil {
		return models.TokenPair{}, nil, err
	}

	refreshClaims := utils.NewTokenClaims(user.Login, models.TokenKindRefresh, t.refreshTTL)
	refreshToken, err := utils.SignClaims(refreshClaims, t.tokenSignKey)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("refresh token signing failed")
		return models.TokenPair{}, nil, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = t.registry.Register(ctx, refreshToken, t.refreshTTL); err != nil {
		log.Err(err).Str("login", user.Login).Msg("refresh token registration failed")
		return models.TokenPair{}, nil, fmt.Errorf("refresh token registration failed: %w", err)
	}

	return models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, roles, nil
}

// IssueAccess implements [TokenService]. Roles are resolved live so a token
// issued after a role change carries the new role set.
func (t *tokenService) IssueAccess(ctx context.Context, user models.User) (string, error) {
	log := logger.FromContext(ctx)

	roles, err := t.roleRepository.ListUserRoles(ctx, user.ID)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("role resolution failed")
		return "", fmt.Errorf("role resolution failed: %w", err)
	}

	return t.signAccess(user, roles)
}

// VerifyAccess implements [TokenService]. Any failure (bad signature, wrong
// algorithm, expired, wrong kind) is normalised to ErrTokenIsExpiredOrInvalid
// so that callers do not need to inspect low-level JWT errors.
func (t *tokenService) VerifyAccess(ctx context.Context, tokenString string) (models.TokenClaims, error) {
	claims, err := utils.ParseClaims(tokenString, t.tokenSignKey)
	if err != nil {
		return models.TokenClaims{}, ErrTokenIsExpiredOrInvalid
	}
	if claims.Kind != models.TokenKindAccess {
		return models.TokenClaims{}, ErrTokenIsExpiredOrInvalid
	}

	return claims, nil
}

// VerifyRefresh implements [TokenService]. A refresh token that parses but is
// absent from the registry (revoked or expired out) is rejected the same way
// as a malformed one.
func (t *tokenService) VerifyRefresh(ctx context.Context, tokenString string) (models.TokenClaims, error) {
	log := logger.FromContext(ctx)

	claims, err := utils.ParseClaims(tokenString, t.tokenSignKey)
	if err != nil {
		return models.TokenClaims{}, ErrTokenIsExpiredOrInvalid
	}
	if claims.Kind != models.TokenKindRefresh {
		return models.TokenClaims{}, ErrTokenIsExpiredOrInvalid
	}

	live, err := t.registry.IsLive(ctx, tokenString)
	if err != nil {
		log.Err(err).Msg("registry lookup failed")
		return models.TokenClaims{}, fmt.Errorf("registry lookup failed: %w", err)
	}
	if !live {
		return models.TokenClaims{}, ErrTokenIsExpiredOrInvalid
	}

	return claims, nil
}

// Revoke implements [TokenService].
func (t *tokenService) Revoke(ctx context.Context, tokenString string) error {
	return t.registry.Revoke(ctx, tokenString)
}

func (t *tokenService) signAccess(user models.User, roles []models.Role) (string, error) {
	claims := utils.NewTokenClaims(user.Login, models.TokenKindAccess, t.accessTTL)
	claims.FirstName = user.FirstName
	claims.LastName = user.LastName
	claims.Roles = rolesToClaims(roles)

	accessToken, err := utils.SignClaims(claims, t.tokenSignKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return accessToken, nil
}

func rolesToClaims(roles []models.Role) []models.RoleClaim {
	claims := make([]models.RoleClaim, 0, len(roles))
	for _, role := range roles {
		claims = append(claims, models.RoleClaim{Name: role.Name})
	}
	return claims
}
