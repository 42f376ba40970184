package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrCannotModifySelf   = errors.New("cannot change your own role or family assignment")
	ErrCannotArchiveAdmin = errors.New("cannot archive an admin")
	ErrAlreadyArchived    = errors.New("user is already archived")
	ErrNotArchived        = errors.New("user is not archived")
)
