package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const (
	createUser = `INSERT INTO users (id, login, password, first_name, last_name, is_superuser)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, login, password, first_name, last_name, is_superuser, created_at;`

	updateUser = `UPDATE users
    SET password = $2, first_name = $3, last_name = $4
    WHERE id = $1
    RETURNING id, login, password, first_name, last_name, is_superuser, created_at;`

	findUserByLogin = `SELECT id, login, password, first_name, last_name, is_superuser, created_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT id, login, password, first_name, last_name, is_superuser, created_at
    FROM users
    WHERE id = $1;`

	appendHistory = `INSERT INTO history (id, user_id)
    VALUES ($1, $2)
    RETURNING id, user_id, created_at;`

	findRoleByName = `SELECT id, name
    FROM roles
    WHERE name = $1;`

	listUserRoles = `SELECT r.id, r.name
    FROM roles r
    JOIN user_role ur ON ur.role_id = r.id
    WHERE ur.user_id = $1
    ORDER BY r.name;`

	assignRole = `INSERT INTO user_role (id, user_id, role_id)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, role_id;`

	revokeRole = `DELETE FROM user_role
    WHERE user_id = $1 AND role_id = $2;`

	findProviderByName = `SELECT id, name
    FROM oauth_provider
    WHERE name = $1;`

	findIdentityByEmail = `SELECT id, user_id, provider_id, email, first_name, last_name
    FROM user_oauth_provider
    WHERE email = $1;`

	createIdentity = `INSERT INTO user_oauth_provider (id, user_id, provider_id, email, first_name, last_name)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, user_id, provider_id, email, first_name, last_name;`

	updateIdentity = `UPDATE user_oauth_provider
    SET first_name = $2, last_name = $3
    WHERE id = $1
    RETURNING id, user_id, provider_id, email, first_name, last_name;`
)

// buildListHistoryQuery builds the paged login history SELECT. Limit and
// offset come from the client request, so the query is assembled dynamically.
func buildListHistoryQuery(userID uuid.UUID, limit, offset uint64) (string, []any, error) {
	builder := sq.
		Select("id", "user_id", "created_at").
		From("history").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if limit > 0 {
		builder = builder.Limit(limit)
	}
	if offset > 0 {
		builder = builder.Offset(offset)
	}

	return builder.ToSql()
}
