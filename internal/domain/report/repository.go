package report

import "context"

type Repository interface {
	FamilyHours(ctx context.Context, yearID string) ([]FamilyHours, error)
	CategoryHours(ctx context.Context, yearID string) ([]CategoryHours, error)
}
