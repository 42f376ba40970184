package invitation

import (
	"context"
	"time"
)

type Repository interface {
	List(ctx context.Context) ([]Details, error)
	GetByID(ctx context.Context, id string) (*Invitation, error)
	Create(ctx context.Context, invitation *Invitation) error
	Delete(ctx context.Context, id string) error
	// FindPending returns the newest unused invitation for email that has
	// not expired at now, or nil.
	FindPending(ctx context.Context, email string, now time.Time) (*Invitation, error)
	// MarkUsed is a no-op returning false when the invitation was used already.
	MarkUsed(ctx context.Context, id string, usedAt time.Time) (bool, error)
}
