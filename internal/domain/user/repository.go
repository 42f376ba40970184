package user

import (
	"context"
	"time"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]UserWithFamily, error)
	Create(ctx context.Context, user *User) error
	UpdateEmail(ctx context.Context, id, email string) error
	UpdateAssignment(ctx context.Context, id string, familyID *string, role Role) error
	SetArchivedAt(ctx context.Context, id string, archivedAt *time.Time) error
}
