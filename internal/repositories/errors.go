package repositories

import "errors"

var (
	// ErrNotFound is returned when a record does not exist or is not
	// owned by the requesting user. The two cases are indistinguishable
	// so record ids never leak across users.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)
