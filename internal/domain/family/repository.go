package family

import (
	"context"
	"time"

	"volunteer-tracker-go/internal/domain/schoolyear"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	List(ctx context.Context) ([]Family, error)
	ListMembers(ctx context.Context, familyIDs []string) (map[string][]Member, error)
	GetByID(ctx context.Context, id string) (*Family, error)
	// ActiveNameTaken reports whether a non-archived family other than
	// excludeID uses name, ignoring case.
	ActiveNameTaken(ctx context.Context, name, excludeID string) (bool, error)
	Create(ctx context.Context, family *Family) error
	UpdateName(ctx context.Context, id, name string) error
	SetArchivedAt(ctx context.Context, id string, archivedAt *time.Time) error
	ArchiveMembers(ctx context.Context, familyID string, archivedAt time.Time) (int64, error)
	// DetachInvitations clears the family from invitations not yet used.
	DetachInvitations(ctx context.Context, familyID string) error
	CreateYearStatus(ctx context.Context, status *schoolyear.FamilyYearStatus) error
}
