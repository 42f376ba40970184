package family

import "errors"

var (
	ErrFamilyNotFound   = errors.New("family not found")
	ErrFamilyArchived   = errors.New("family is archived")
	ErrAlreadyArchived  = errors.New("family is already archived")
	ErrNotArchived      = errors.New("family is not archived")
	ErrDuplicateName    = errors.New("family name already in use")
	ErrRestoreNameTaken = errors.New("an active family already uses this name")
)
