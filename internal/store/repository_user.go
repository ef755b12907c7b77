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

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup and login history against the
// "users" and "history" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (CreatedAt). The record ID is
// generated application-side before the INSERT.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrLoginAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.ID == uuid.Nil {
		user.ID = utils.NewUUID()
	}

	row := r.db.QueryRowContext(ctx, createUser, user.ID, user.Login, user.Password, user.FirstName, user.LastName, user.IsSuperuser)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrLoginAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	if err := row.Scan(&user.ID, &user.Login, &user.Password, &user.FirstName, &user.LastName, &user.IsSuperuser, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrLoginAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// UpdateUser overwrites the mutable fields of an existing user record
// (password, first and last name) and returns the canonical database
// representation. Login, superuser flag and creation time are immutable.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var updated models.User
	row := r.db.QueryRowContext(ctx, updateUser, user.ID, user.Password, user.FirstName, user.LastName)

	// update user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan updated user from db
	if err := row.Scan(&updated.ID, &updated.Login, &updated.Password, &updated.FirstName, &updated.LastName, &updated.IsSuperuser, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return updated, nil
}

// FindUserByLogin retrieves a user record whose Login matches the one
// provided in the input [models.User].
//
// Error handling:
//   - empty result set → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByLogin(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByLogin, user.Login)

	// find user by login
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error: row is nil")
		switch postgresError(err) {
		case pgerrcode.NoDataFound:
			return models.User{}, ErrNoUserWasFound
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan found user from db
	if err := row.Scan(&foundUser.ID, &foundUser.Login, &foundUser.Password, &foundUser.FirstName, &foundUser.LastName, &foundUser.IsSuperuser, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// FindUserByID retrieves a user record by its primary key.
//
// Error handling mirrors [userRepository.FindUserByLogin].
func (r *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByID, id)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: row is nil")
		switch postgresError(err) {
		case pgerrcode.NoDataFound:
			return models.User{}, ErrNoUserWasFound
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&foundUser.ID, &foundUser.Login, &foundUser.Password, &foundUser.FirstName, &foundUser.LastName, &foundUser.IsSuperuser, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// AppendHistory writes a single login audit record. The sign-in timestamp is
// assigned by the database.
func (r *userRepository) AppendHistory(ctx context.Context, entry models.History) (models.History, error) {
	log := logger.FromContext(ctx)

	if entry.ID == uuid.Nil {
		entry.ID = utils.NewUUID()
	}

	row := r.db.QueryRowContext(ctx, appendHistory, entry.ID, entry.UserID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.AppendHistory").Msg("error: row is nil")
		return models.History{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&entry.ID, &entry.UserID, &entry.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.AppendHistory").Msg("error: scanning error")
		return models.History{}, err
	}

	return entry, nil
}

// ListHistory returns the user's login audit records, most recent first.
// A zero limit means no limit.
func (r *userRepository) ListHistory(ctx context.Context, userID uuid.UUID, limit, offset uint64) ([]models.History, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListHistoryQuery(userID, limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListHistory").Msg("error: building query error")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListHistory").Msg("error: query execution error")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.History, 0)
	for rows.Next() {
		var entry models.History
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.ListHistory").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListHistory").Msg("error: rows iteration error")
		return nil, errors.Join(ErrExecutingQuery, err)
	}

	return entries, nil
}
