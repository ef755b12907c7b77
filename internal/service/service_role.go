package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// roleService is the concrete implementation of RoleService.
type roleService struct {
	userRepository store.UserRepository
	roleRepository store.RoleRepository

	logger *logger.Logger
}

// NewRoleService constructs a RoleService wired to the given repositories.
func NewRoleService(userRepository store.UserRepository, roleRepository store.RoleRepository, logger *logger.Logger) RoleService {
	return &roleService{
		userRepository: userRepository,
		roleRepository: roleRepository,
		logger:         logger,
	}
}

// Assign implements [RoleService].
//
// Returns:
//   - ErrForbidden if the actor is not a superuser.
//   - A wrapped store.ErrNoUserWasFound / store.ErrNoRoleWasFound if the
//     target does not exist.
//   - A wrapped store.ErrRoleAlreadyAssigned on duplicate assignment.
func (r *roleService) Assign(ctx context.Context, actor models.User, req models.RoleChangeRequest) error {
	log := logger.FromContext(ctx)

	user, role, err := r.resolve(ctx, actor, req)
	if err != nil {
		return err
	}

	// reject duplicates before touching the join table
	assigned, err := r.roleRepository.ListUserRoles(ctx, user.ID)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("role resolution failed")
		return fmt.Errorf("role resolution failed: %w", err)
	}
	for _, existing := range assigned {
		if existing.ID == role.ID {
			return fmt.Errorf("role assignment failed: %w", store.ErrRoleAlreadyAssigned)
		}
	}

	if _, err = r.roleRepository.AssignRole(ctx, models.UserRole{UserID: user.ID, RoleID: role.ID}); err != nil {
		log.Err(err).Str("login", user.Login).Str("role", role.Name).Msg("role assignment failed")
		return fmt.Errorf("role assignment failed: %w", err)
	}

	return nil
}

// Revoke implements [RoleService].
//
// Returns:
//   - ErrForbidden if the actor is not a superuser.
//   - A wrapped store.ErrRoleNotAssigned if the pair does not exist.
func (r *roleService) Revoke(ctx context.Context, actor models.User, req models.RoleChangeRequest) error {
	log := logger.FromContext(ctx)

	user, role, err := r.resolve(ctx, actor, req)
	if err != nil {
		return err
	}

	if err = r.roleRepository.RevokeRole(ctx, user.ID, role.ID); err != nil {
		log.Err(err).Str("login", user.Login).Str("role", role.Name).Msg("role revocation failed")
		return fmt.Errorf("role revocation failed: %w", err)
	}

	return nil
}

// resolve checks the actor's privileges and loads the target user and role.
func (r *roleService) resolve(ctx context.Context, actor models.User, req models.RoleChangeRequest) (models.User, models.Role, error) {
	log := logger.FromContext(ctx)

	if !actor.IsSuperuser {
		log.Error().Str("actor", actor.Login).Msg("role change denied")
		return models.User{}, models.Role{}, ErrForbidden
	}

	if req.UserLogin == "" || req.RoleName == "" {
		return models.User{}, models.Role{}, ErrInvalidDataProvided
	}

	user, err := r.userRepository.FindUserByLogin(ctx, models.User{Login: req.UserLogin})
	if err != nil {
		log.Err(err).Str("login", req.UserLogin).Msg("user search by login failed")
		return models.User{}, models.Role{}, fmt.Errorf("user search by login failed: %w", err)
	}

	role, err := r.roleRepository.FindRoleByName(ctx, req.RoleName)
	if err != nil {
		log.Err(err).Str("role", req.RoleName).Msg("role search by name failed")
		return models.User{}, models.Role{}, fmt.Errorf("role search by name failed: %w", err)
	}

	return user, role, nil
}
