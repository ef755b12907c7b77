package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong login or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrIdentityConflict is returned when an OAuth sign-in names a local
	// account but the remote identity is already bound to a different one.
	ErrIdentityConflict = errors.New("oauth identity is linked to another account")

	// ErrForbidden is returned when a non-superuser attempts an operation
	// reserved for superusers.
	ErrForbidden = errors.New("operation requires superuser privileges")
)
