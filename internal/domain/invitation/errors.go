package invitation

import "errors"

var (
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvitationUsed     = errors.New("invitation was already used")
	ErrUserExists         = errors.New("a user with this email already exists")
)
