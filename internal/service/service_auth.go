// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/oauth"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/google/uuid"
)

// authService is the concrete implementation of AuthService.
//
// It owns account registration, both sign-in paths (password and OAuth),
// token refresh and revocation, and the login history. Token mechanics are
// delegated to a TokenService; outbound provider calls to the configured
// [oauth.ProviderRegistry].
type authService struct {
	userRepository  store.UserRepository
	roleRepository  store.RoleRepository
	oauthRepository store.OauthRepository

	tokenService TokenService
	providers    oauth.ProviderRegistry

	// defaultRole is granted to every newly created account.
	defaultRole string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories,
// token service and provider registry.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(repos *store.Repositories, tokenService TokenService, providers oauth.ProviderRegistry, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  repos.UserRepository,
		roleRepository:  repos.RoleRepository,
		oauthRepository: repos.OauthRepository,
		tokenService:    tokenService,
		providers:       providers,
		defaultRole:     cfg.DefaultRole,
		logger:          logger,
	}
}

// SignUp implements [AuthService].
//
// The password is stored as a bcrypt hash. The default role is granted
// immediately so that the first sign-in already carries it.
//
// Returns the created account or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped store.ErrLoginAlreadyExists if the login is taken.
func (a *authService) SignUp(ctx context.Context, req models.SignupRequest) (models.UserWithRoles, error) {
	log := logger.FromContext(ctx)

	if req.Login == "" || req.Password == "" {
		log.Error().Str("login", req.Login).Msg("invalid signup data provided")
		return models.UserWithRoles{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("login", req.Login).Msg("password hashing failed")
		return models.UserWithRoles{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Login:     req.Login,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		log.Err(err).Str("login", req.Login).Msg("user creation ended with error")
		return models.UserWithRoles{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	roles, err := a.grantDefaultRole(ctx, user)
	if err != nil {
		return models.UserWithRoles{}, err
	}

	return userWithRoles(user, roles), nil
}

// SignIn implements [AuthService]. The request is dispatched to the OAuth
// path when OauthProvider is set, and to the password path otherwise.
//
// The history record is appended last: issuance failures leave no trace of a
// sign-in that never completed.
func (a *authService) SignIn(ctx context.Context, req models.SigninRequest) (models.SigninResponse, error) {
	log := logger.FromContext(ctx)

	var (
		user models.User
		err  error
	)

	if req.OauthProvider != "" {
		user, err = a.oauthUser(ctx, req)
	} else {
		user, err = a.passwordUser(ctx, req)
	}
	if err != nil {
		return models.SigninResponse{}, err
	}

	pair, roles, err := a.tokenService.IssuePair(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("token pair issuance failed")
		return models.SigninResponse{}, err
	}

	if _, err = a.userRepository.AppendHistory(ctx, models.History{UserID: user.ID}); err != nil {
		log.Err(err).Str("login", user.Login).Msg("history record failed")
		return models.SigninResponse{}, fmt.Errorf("history record failed: %w", err)
	}

	return models.SigninResponse{
		TokenPair: pair,
		User:      userWithRoles(user, roles),
	}, nil
}

// Refresh implements [AuthService]. The presented refresh token is returned
// unchanged alongside the fresh access token; this service does not rotate
// refresh tokens.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	claims, err := a.tokenService.VerifyRefresh(ctx, refreshToken)
	if err != nil {
		return models.TokenPair{}, err
	}

	user, err := a.userRepository.FindUserByLogin(ctx, models.User{Login: claims.Subject})
	if err != nil {
		log.Err(err).Str("login", claims.Subject).Msg("refresh subject lookup failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
		}
		return models.TokenPair{}, fmt.Errorf("refresh subject lookup failed: %w", err)
	}

	accessToken, err := a.tokenService.IssueAccess(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("access token issuance failed")
		return models.TokenPair{}, err
	}

	return models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// VerifyAccess implements [AuthService]. Roles are resolved live: a role
// granted after the token was issued is visible here even though the token's
// embedded claims do not carry it.
func (a *authService) VerifyAccess(ctx context.Context, accessToken string) (models.User, []models.Role, error) {
	log := logger.FromContext(ctx)

	claims, err := a.tokenService.VerifyAccess(ctx, accessToken)
	if err != nil {
		return models.User{}, nil, err
	}

	user, err := a.userRepository.FindUserByLogin(ctx, models.User{Login: claims.Subject})
	if err != nil {
		log.Err(err).Str("login", claims.Subject).Msg("access subject lookup failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, nil, ErrTokenIsExpiredOrInvalid
		}
		return models.User{}, nil, fmt.Errorf("access subject lookup failed: %w", err)
	}

	roles, err := a.roleRepository.ListUserRoles(ctx, user.ID)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("role resolution failed")
		return models.User{}, nil, fmt.Errorf("role resolution failed: %w", err)
	}

	return user, roles, nil
}

// SignOut implements [AuthService]. Revocation is idempotent: signing out
// with an already-revoked or never-issued token succeeds.
func (a *authService) SignOut(ctx context.Context, refreshToken string) error {
	return a.tokenService.Revoke(ctx, refreshToken)
}

// LoginHistory implements [AuthService]. An empty targetLogin means the
// actor's own history. Reading another user's history requires a superuser
// actor.
func (a *authService) LoginHistory(ctx context.Context, actor models.User, targetLogin string, limit, offset uint64) ([]models.History, error) {
	log := logger.FromContext(ctx)

	target := actor
	if targetLogin != "" && targetLogin != actor.Login {
		if !actor.IsSuperuser {
			return nil, ErrForbidden
		}

		var err error
		target, err = a.userRepository.FindUserByLogin(ctx, models.User{Login: targetLogin})
		if err != nil {
			log.Err(err).Str("login", targetLogin).Msg("history target lookup failed")
			return nil, fmt.Errorf("history target lookup failed: %w", err)
		}
	}

	entries, err := a.userRepository.ListHistory(ctx, target.ID, limit, offset)
	if err != nil {
		log.Err(err).Str("login", target.Login).Msg("history listing failed")
		return nil, fmt.Errorf("history listing failed: %w", err)
	}

	return entries, nil
}

// passwordUser resolves the account for the password sign-in path.
// Unknown logins and wrong passwords are reported identically.
func (a *authService) passwordUser(ctx context.Context, req models.SigninRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Login == "" || req.Password == "" {
		log.Error().Str("login", req.Login).Msg("invalid signin data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByLogin(ctx, models.User{Login: req.Login})
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Str("login", req.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		log.Error().Str("login", req.Login).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}

// oauthUser resolves the account for the OAuth sign-in path.
//
// The provider access token is verified by fetching the remote profile. The
// remote email then either resolves to an already linked identity, or a new
// link is created: to the account named by req.Login when present, otherwise
// to an account found or created under the remote email itself.
func (a *authService) oauthUser(ctx context.Context, req models.SigninRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.OauthAccessToken == "" {
		log.Error().Str("provider", req.OauthProvider).Msg("invalid oauth signin data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	gateway, ok := a.providers.Lookup(req.OauthProvider)
	if !ok {
		return models.User{}, oauth.ErrProviderNotSupported
	}

	provider, err := a.oauthRepository.FindProviderByName(ctx, req.OauthProvider)
	if err != nil {
		log.Err(err).Str("provider", req.OauthProvider).Msg("provider lookup failed")
		return models.User{}, fmt.Errorf("provider lookup failed: %w", err)
	}

	profile, err := gateway.FetchProfile(ctx, req.OauthAccessToken)
	if err != nil {
		log.Err(err).Str("provider", req.OauthProvider).Msg("remote profile fetch failed")
		return models.User{}, err
	}

	identity, err := a.oauthRepository.FindIdentityByEmail(ctx, profile.Login)
	switch {
	case err == nil:
		return a.linkedUser(ctx, identity, profile, req.Login)
	case errors.Is(err, store.ErrNoIdentityWasFound):
		return a.linkIdentity(ctx, provider, profile, req.Login)
	default:
		log.Err(err).Str("email", profile.Login).Msg("identity lookup failed")
		return models.User{}, fmt.Errorf("identity lookup failed: %w", err)
	}
}

// linkedUser handles a sign-in whose remote identity is already linked.
// Naming a different local account than the linked one is a conflict, never
// a silent re-link.
func (a *authService) linkedUser(ctx context.Context, identity models.UserOauthProvider, profile models.OauthProfile, requestedLogin string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, identity.UserID)
	if err != nil {
		log.Err(err).Str("email", identity.Email).Msg("linked user lookup failed")
		return models.User{}, fmt.Errorf("linked user lookup failed: %w", err)
	}

	if requestedLogin != "" && requestedLogin != user.Login {
		log.Error().Str("email", identity.Email).Str("login", requestedLogin).Msg("identity linked to another account")
		return models.User{}, ErrIdentityConflict
	}

	identity.FirstName = profile.FirstName
	identity.LastName = profile.LastName
	if _, err = a.oauthRepository.UpdateIdentity(ctx, identity); err != nil {
		log.Err(err).Str("email", identity.Email).Msg("identity refresh failed")
		return models.User{}, fmt.Errorf("identity refresh failed: %w", err)
	}

	// the provider's profile is the fresher source for display names
	if (profile.FirstName != "" && profile.FirstName != user.FirstName) ||
		(profile.LastName != "" && profile.LastName != user.LastName) {
		user.FirstName = profile.FirstName
		user.LastName = profile.LastName
		if user, err = a.userRepository.UpdateUser(ctx, user); err != nil {
			log.Err(err).Str("login", user.Login).Msg("user profile refresh failed")
			return models.User{}, fmt.Errorf("user profile refresh failed: %w", err)
		}
	}

	return user, nil
}

// linkIdentity creates a new identity link for a remote account seen for the
// first time. The local account is the one named by requestedLogin when
// present; otherwise an account is found or created under the remote email.
func (a *authService) linkIdentity(ctx context.Context, provider models.OauthProvider, profile models.OauthProfile, requestedLogin string) (models.User, error) {
	log := logger.FromContext(ctx)

	login := requestedLogin
	if login == "" {
		login = profile.Login
	}

	user, err := a.userRepository.FindUserByLogin(ctx, models.User{Login: login})
	switch {
	case err == nil:
		// existing account gets the identity attached
	case errors.Is(err, store.ErrNoUserWasFound):
		user, err = a.createOauthUser(ctx, login, profile)
		if err != nil {
			return models.User{}, err
		}
	default:
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	_, err = a.oauthRepository.CreateIdentity(ctx, models.UserOauthProvider{
		UserID:     user.ID,
		ProviderID: provider.ID,
		Email:      profile.Login,
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
	})
	if err != nil {
		log.Err(err).Str("email", profile.Login).Msg("identity creation failed")
		if errors.Is(err, store.ErrIdentityAlreadyLinked) {
			return models.User{}, ErrIdentityConflict
		}
		return models.User{}, fmt.Errorf("identity creation failed: %w", err)
	}

	return user, nil
}

// createOauthUser registers a local account for a first-time OAuth sign-in.
// The account gets a random placeholder password so the password path can
// never match it, plus the default role.
func (a *authService) createOauthUser(ctx context.Context, login string, profile models.OauthProfile) (models.User, error) {
	log := logger.FromContext(ctx)

	placeholder, err := utils.HashPassword(uuid.NewString())
	if err != nil {
		log.Err(err).Str("login", login).Msg("placeholder password hashing failed")
		return models.User{}, fmt.Errorf("placeholder password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Login:     login,
		Password:  placeholder,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
	})
	if err != nil {
		log.Err(err).Str("login", login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if _, err = a.grantDefaultRole(ctx, user); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// grantDefaultRole assigns the configured default role to a new account and
// returns the resulting role set.
func (a *authService) grantDefaultRole(ctx context.Context, user models.User) ([]models.Role, error) {
	log := logger.FromContext(ctx)

	role, err := a.roleRepository.FindRoleByName(ctx, a.defaultRole)
	if err != nil {
		log.Err(err).Str("role", a.defaultRole).Msg("default role lookup failed")
		return nil, fmt.Errorf("default role lookup failed: %w", err)
	}

	if _, err = a.roleRepository.AssignRole(ctx, models.UserRole{UserID: user.ID, RoleID: role.ID}); err != nil {
		log.Err(err).Str("login", user.Login).Str("role", role.Name).Msg("default role assignment failed")
		return nil, fmt.Errorf("default role assignment failed: %w", err)
	}

	return []models.Role{role}, nil
}

func userWithRoles(user models.User, roles []models.Role) models.UserWithRoles {
	return models.UserWithRoles{
		ID:        user.ID,
		Login:     user.Login,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Roles:     rolesToClaims(roles),
	}
}
