package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoRoleWasFound is returned when a role lookup by name produces an
	// empty result set. Roles are seeded reference data, so this normally
	// means the caller supplied an unknown role name.
	ErrNoRoleWasFound = errors.New("no role was found")

	// ErrRoleAlreadyAssigned is returned when an INSERT into the user_role
	// join table violates the unique (user_id, role_id) index.
	ErrRoleAlreadyAssigned = errors.New("role is already assigned to user")

	// ErrRoleNotAssigned is returned when a role revocation targets a
	// (user, role) pair that does not exist in the join table.
	ErrRoleNotAssigned = errors.New("role is not assigned to user")

	// ErrNoProviderWasFound is returned when an OAuth provider lookup by name
	// produces an empty result set.
	ErrNoProviderWasFound = errors.New("no oauth provider was found")

	// ErrNoIdentityWasFound is returned when a linked identity lookup by
	// remote email produces an empty result set.
	ErrNoIdentityWasFound = errors.New("no linked oauth identity was found")

	// ErrIdentityAlreadyLinked is returned when an INSERT of a linked identity
	// violates the unique email index, meaning the remote account is already
	// bound to some local user.
	ErrIdentityAlreadyLinked = errors.New("oauth identity is already linked")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan result rows")
)
