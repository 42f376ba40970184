package task

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	// ListByFamilyYear orders by date then creation time, newest first.
	// A limit of zero returns every task.
	ListByFamilyYear(ctx context.Context, familyID, yearID string, limit int) ([]Details, error)
	GetDetails(ctx context.Context, id string) (*Details, error)
	GetInYear(ctx context.Context, id, yearID string) (*Task, error)
	Create(ctx context.Context, task *Task) error
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id string) error
	SumHours(ctx context.Context, familyID, yearID string) (float64, error)
	// SetFamilyTotal upserts the family's status row for the year.
	SetFamilyTotal(ctx context.Context, familyID, yearID string, total float64) error
}
