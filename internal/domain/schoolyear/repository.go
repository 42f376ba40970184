package schoolyear

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	GetActive(ctx context.Context) (*SchoolYear, error)
	GetByID(ctx context.Context, id string) (*SchoolYear, error)
	List(ctx context.Context) ([]SchoolYear, error)
	Create(ctx context.Context, year *SchoolYear) error
	Update(ctx context.Context, year *SchoolYear) error
	DeactivateAll(ctx context.Context) error
	MarkActive(ctx context.Context, id string) (bool, error)
	// BackfillFamilyStatus inserts a status row for every non-archived family
	// that has none for the year and returns how many rows were created.
	BackfillFamilyStatus(ctx context.Context, yearID string) (int64, error)
}
