// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// roleRepository is the PostgreSQL-backed implementation of [RoleRepository].
// Roles themselves are seeded reference data; only the user_role join table
// is mutated at runtime.
type roleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRoleRepository constructs a [RoleRepository] backed by the provided
// database connection and logger.
func NewRoleRepository(db *DB, logger *logger.Logger) RoleRepository {
	logger.Debug().Msg("creating role repository")
	return &roleRepository{
		db:     db,
		logger: logger,
	}
}

// FindRoleByName retrieves a role record by its unique name.
//
// Error handling:
//   - empty result set → [ErrNoRoleWasFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *roleRepository) FindRoleByName(ctx context.Context, name string) (models.Role, error) {
	log := logger.FromContext(ctx)

	var role models.Role
	row := r.db.QueryRowContext(ctx, findRoleByName, name)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*roleRepository.FindRoleByName").Msg("error: row is nil")
		switch postgresError(err) {
		case pgerrcode.NoDataFound:
			return models.Role{}, ErrNoRoleWasFound
		default:
			return models.Role{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&role.ID, &role.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Role{}, ErrNoRoleWasFound
		}
		log.Err(err).Str("func", "*roleRepository.FindRoleByName").Msg("error: scanning error")
		return models.Role{}, err
	}

	return role, nil
}

// ListUserRoles returns every role assigned to the given user, ordered by
// role name. A user with no assignments yields an empty slice, not an error.
func (r *roleRepository) ListUserRoles(ctx context.Context, userID uuid.UUID) ([]models.Role, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUserRoles, userID)
	if err != nil {
		log.Err(err).Str("func", "*roleRepository.ListUserRoles").Msg("error: query execution error")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	roles := make([]models.Role, 0)
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			log.Err(err).Str("func", "*roleRepository.ListUserRoles").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*roleRepository.ListUserRoles").Msg("error: rows iteration error")
		return nil, errors.Join(ErrExecutingQuery, err)
	}

	return roles, nil
}

// AssignRole inserts a row into the user_role join table.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrRoleAlreadyAssigned].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *roleRepository) AssignRole(ctx context.Context, userRole models.UserRole) (models.UserRole, error) {
	log := logger.FromContext(ctx)

	if userRole.ID == uuid.Nil {
		userRole.ID = utils.NewUUID()
	}

	row := r.db.QueryRowContext(ctx, assignRole, userRole.ID, userRole.UserID, userRole.RoleID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*roleRepository.AssignRole").Msg("error: row is nil")
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.UserRole{}, ErrRoleAlreadyAssigned
		default:
			return models.UserRole{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&userRole.ID, &userRole.UserID, &userRole.RoleID); err != nil {
		log.Err(err).Str("func", "*roleRepository.AssignRole").Msg("error: scanning error")
		return models.UserRole{}, err
	}

	return userRole, nil
}

// RevokeRole deletes the (user, role) pair from the user_role join table.
// Deleting a pair that does not exist returns [ErrRoleNotAssigned].
func (r *roleRepository) RevokeRole(ctx context.Context, userID, roleID uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, revokeRole, userID, roleID)
	if err != nil {
		log.Err(err).Str("func", "*roleRepository.RevokeRole").Msg("error: statement execution error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*roleRepository.RevokeRole").Msg("error: rows affected error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrRoleNotAssigned
	}

	return nil
}
