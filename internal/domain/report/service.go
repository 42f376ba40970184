package report

import (
	"context"

	"volunteer-tracker-go/internal/domain/accounting"
	"volunteer-tracker-go/internal/domain/schoolyear"
)

type YearReader interface {
	Current(ctx context.Context) (*schoolyear.SchoolYear, error)
	Get(ctx context.Context, id string) (*schoolyear.SchoolYear, error)
}

type Service struct {
	repo  Repository
	years YearReader
}

func NewService(repo Repository, years YearReader) *Service {
	return &Service{
		repo:  repo,
		years: years,
	}
}

// Progress applies the year's requirement to every non-archived family.
// An empty yearID means the active year.
func (s *Service) Progress(ctx context.Context, yearID string) (*ProgressReport, error) {
	year, err := s.year(ctx, yearID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FamilyHours(ctx, year.ID)
	if err != nil {
		return nil, err
	}

	result := &ProgressReport{
		SchoolYear: *year,
		Families:   make([]FamilyProgress, 0, len(rows)),
	}
	for _, row := range rows {
		progress := accounting.Calculate(row.TotalHours, year.RequiredHours, year.HourlyRateCents)
		if progress.HoursRemaining == 0 {
			result.Completed++
		}
		result.TotalHours += row.TotalHours
		result.TotalPenalty += progress.Penalty
		result.Families = append(result.Families, FamilyProgress{
			FamilyID:   row.FamilyID,
			FamilyName: row.FamilyName,
			TaskCount:  row.TaskCount,
			Progress:   progress,
		})
	}
	return result, nil
}

func (s *Service) Categories(ctx context.Context, yearID string) (*CategoryReport, error) {
	year, err := s.year(ctx, yearID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.CategoryHours(ctx, year.ID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []CategoryHours{}
	}

	result := &CategoryReport{
		SchoolYear: *year,
		Categories: rows,
	}
	for _, row := range rows {
		result.TotalHours += row.TotalHours
	}
	return result, nil
}

func (s *Service) year(ctx context.Context, yearID string) (*schoolyear.SchoolYear, error) {
	if yearID == "" {
		return s.years.Current(ctx)
	}
	return s.years.Get(ctx, yearID)
}
