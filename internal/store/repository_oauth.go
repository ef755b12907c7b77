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

// oauthRepository is the PostgreSQL-backed implementation of
// [OauthRepository]. It manages the oauth_provider reference table and the
// user_oauth_provider identity links.
//
// An identity link, once created, is permanently bound to its local user:
// [oauthRepository.UpdateIdentity] refreshes profile attributes only and
// never touches the user_id column.
type oauthRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOauthRepository constructs an [OauthRepository] backed by the provided
// database connection and logger.
func NewOauthRepository(db *DB, logger *logger.Logger) OauthRepository {
	logger.Debug().Msg("creating oauth repository")
	return &oauthRepository{
		db:     db,
		logger: logger,
	}
}

// FindProviderByName retrieves an OAuth provider record by its unique name.
//
// Error handling:
//   - empty result set → [ErrNoProviderWasFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *oauthRepository) FindProviderByName(ctx context.Context, name string) (models.OauthProvider, error) {
	log := logger.FromContext(ctx)

	var provider models.OauthProvider
	row := r.db.QueryRowContext(ctx, findProviderByName, name)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*oauthRepository.FindProviderByName").Msg("error: row is nil")
		switch postgresError(err) {
		case pgerrcode.NoDataFound:
			return models.OauthProvider{}, ErrNoProviderWasFound
		default:
			return models.OauthProvider{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&provider.ID, &provider.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.OauthProvider{}, ErrNoProviderWasFound
		}
		log.Err(err).Str("func", "*oauthRepository.FindProviderByName").Msg("error: scanning error")
		return models.OauthProvider{}, err
	}

	return provider, nil
}

// FindIdentityByEmail retrieves a linked identity by the remote account
// email. Email is globally unique across providers.
//
// Error handling:
//   - empty result set → [ErrNoIdentityWasFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *oauthRepository) FindIdentityByEmail(ctx context.Context, email string) (models.UserOauthProvider, error) {
	log := logger.FromContext(ctx)

	var identity models.UserOauthProvider
	row := r.db.QueryRowContext(ctx, findIdentityByEmail, email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*oauthRepository.FindIdentityByEmail").Msg("error: row is nil")
		switch postgresError(err) {
		case pgerrcode.NoDataFound:
			return models.UserOauthProvider{}, ErrNoIdentityWasFound
		default:
			return models.UserOauthProvider{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&identity.ID, &identity.UserID, &identity.ProviderID, &identity.Email, &identity.FirstName, &identity.LastName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserOauthProvider{}, ErrNoIdentityWasFound
		}
		log.Err(err).Str("func", "*oauthRepository.FindIdentityByEmail").Msg("error: scanning error")
		return models.UserOauthProvider{}, err
	}

	return identity, nil
}

// CreateIdentity persists a new identity link bound to a local user.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrIdentityAlreadyLinked].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *oauthRepository) CreateIdentity(ctx context.Context, identity models.UserOauthProvider) (models.UserOauthProvider, error) {
	log := logger.FromContext(ctx)

	if identity.ID == uuid.Nil {
		identity.ID = utils.NewUUID()
	}

	row := r.db.QueryRowContext(ctx, createIdentity, identity.ID, identity.UserID, identity.ProviderID, identity.Email, identity.FirstName, identity.LastName)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*oauthRepository.CreateIdentity").Msg("error: row is nil")
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.UserOauthProvider{}, ErrIdentityAlreadyLinked
		default:
			return models.UserOauthProvider{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&identity.ID, &identity.UserID, &identity.ProviderID, &identity.Email, &identity.FirstName, &identity.LastName); err != nil {
		log.Err(err).Str("func", "*oauthRepository.CreateIdentity").Msg("error: scanning error")
		return models.UserOauthProvider{}, err
	}

	return identity, nil
}

// UpdateIdentity refreshes the profile attributes of an existing identity
// link. The user_id binding is immutable and is not part of the UPDATE.
func (r *oauthRepository) UpdateIdentity(ctx context.Context, identity models.UserOauthProvider) (models.UserOauthProvider, error) {
	log := logger.FromContext(ctx)

	var updated models.UserOauthProvider
	row := r.db.QueryRowContext(ctx, updateIdentity, identity.ID, identity.FirstName, identity.LastName)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*oauthRepository.UpdateIdentity").Msg("error: row is nil")
		return models.UserOauthProvider{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&updated.ID, &updated.UserID, &updated.ProviderID, &updated.Email, &updated.FirstName, &updated.LastName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserOauthProvider{}, ErrNoIdentityWasFound
		}
		log.Err(err).Str("func", "*oauthRepository.UpdateIdentity").Msg("error: scanning error")
		return models.UserOauthProvider{}, err
	}

	return updated, nil
}
