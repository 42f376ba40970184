package dashboard

import (
	"context"

	"volunteer-tracker-go/internal/domain/accounting"
	"volunteer-tracker-go/internal/domain/family"
	"volunteer-tracker-go/internal/domain/schoolyear"
	"volunteer-tracker-go/internal/domain/task"
	"volunteer-tracker-go/internal/domain/user"
)

const RecentTaskLimit = 5

type ActiveYearReader interface {
	Current(ctx context.Context) (*schoolyear.SchoolYear, error)
}

type FamilyReader interface {
	Get(ctx context.Context, id string) (*family.Family, error)
}

type TaskReader interface {
	TotalHours(ctx context.Context, familyID, yearID string) (float64, error)
	Recent(ctx context.Context, familyID, yearID string, limit int) ([]task.Details, error)
}

type Summary struct {
	Family      family.Family
	SchoolYear  schoolyear.SchoolYear
	Progress    accounting.Progress
	RecentTasks []task.Details
}

type Service struct {
	years    ActiveYearReader
	families FamilyReader
	tasks    TaskReader
}

func NewService(years ActiveYearReader, families FamilyReader, tasks TaskReader) *Service {
	return &Service{
		years:    years,
		families: families,
		tasks:    tasks,
	}
}

// Summary reports the actor's family progress against the active year.
func (s *Service) Summary(ctx context.Context, actor *user.User) (*Summary, error) {
	if actor.Role != user.RoleParent {
		return nil, task.ErrNotParent
	}
	if !actor.HasFamily() {
		return nil, task.ErrNoFamily
	}

	year, err := s.years.Current(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.families.Get(ctx, *actor.FamilyID)
	if err != nil {
		return nil, err
	}

	total, err := s.tasks.TotalHours(ctx, current.ID, year.ID)
	if err != nil {
		return nil, err
	}

	recent, err := s.tasks.Recent(ctx, current.ID, year.ID, RecentTaskLimit)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Family:      *current,
		SchoolYear:  *year,
		Progress:    accounting.Calculate(total, year.RequiredHours, year.HourlyRateCents),
		RecentTasks: recent,
	}, nil
}
