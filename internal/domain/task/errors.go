package task

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrNotParent    = errors.New("only parents can log volunteer tasks")
	ErrNoFamily     = errors.New("user is not assigned to a family")
	ErrNotOwner     = errors.New("task belongs to another user")
)
