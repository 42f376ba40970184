package schoolyear

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"volunteer-tracker-go/internal/domain/validation"
)

const (
	DefaultCacheTTL = time.Hour

	activeLookupTimeout = 10 * time.Second
)

type Service struct {
	repo     Repository
	cache    Cache
	cacheTTL time.Duration
	group    singleflight.Group
}

func NewService(repo Repository) *Service {
	return NewServiceWithCache(repo, nil, DefaultCacheTTL)
}

func NewServiceWithCache(repo Repository, cache Cache, ttl time.Duration) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{
		repo:     repo,
		cache:    cache,
		cacheTTL: ttl,
	}
}

// Current returns the active school year. A missing active year is not
// cached so an activation from another process is picked up immediately.
func (s *Service) Current(ctx context.Context) (*SchoolYear, error) {
	if year, ok := s.cache.Get(); ok {
		return year, nil
	}

	// the shared lookup outlives the request that started it
	results := s.group.DoChan("active", func() (any, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), activeLookupTimeout)
		defer cancel()

		year, err := s.repo.GetActive(lookupCtx)
		if err != nil {
			return nil, err
		}
		s.cache.Set(year, s.cacheTTL)
		return year, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}
		year := *result.Val.(*SchoolYear)
		return &year, nil
	}
}

func (s *Service) Invalidate() {
	s.cache.Clear()
}

func (s *Service) List(ctx context.Context) ([]SchoolYear, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*SchoolYear, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*SchoolYear, error) {
	year := SchoolYear{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(input.Name),
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		RequiredHours:   DefaultRequiredHours,
		HourlyRateCents: DefaultHourlyRate,
		IsActive:        false,
	}
	if input.RequiredHours != nil {
		year.RequiredHours = *input.RequiredHours
	}
	if input.HourlyRate != nil {
		year.HourlyRateCents = *input.HourlyRate
	}

	if err := validate(year); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &year); err != nil {
		return nil, err
	}
	return &year, nil
}

func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*SchoolYear, error) {
	if input.empty() {
		return nil, validation.New("", "no fields to update")
	}

	year, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		year.Name = strings.TrimSpace(*input.Name)
	}
	if input.StartDate != nil {
		year.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		year.EndDate = *input.EndDate
	}
	if input.RequiredHours != nil {
		year.RequiredHours = *input.RequiredHours
	}
	if input.HourlyRate != nil {
		year.HourlyRateCents = *input.HourlyRate
	}

	if err := validate(*year); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, year); err != nil {
		return nil, err
	}

	if year.IsActive {
		s.Invalidate()
	}
	return year, nil
}

// Activate makes id the only active school year and gives every
// non-archived family a status row for it. All of it commits or none of it.
func (s *Service) Activate(ctx context.Context, id string) (*SchoolYear, int64, error) {
	var (
		activated  *SchoolYear
		backfilled int64
	)

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.DeactivateAll(ctx); err != nil {
			return err
		}

		found, err := tx.MarkActive(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrSchoolYearNotFound
		}

		backfilled, err = tx.BackfillFamilyStatus(ctx, id)
		if err != nil {
			return err
		}

		activated, err = tx.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	s.Invalidate()
	return activated, backfilled, nil
}

func validate(year SchoolYear) error {
	if year.Name == "" {
		return validation.New("name", "name is required")
	}
	if year.StartDate.IsZero() {
		return validation.New("startDate", "start date is required")
	}
	if year.EndDate.IsZero() {
		return validation.New("endDate", "end date is required")
	}
	if year.EndDate.Before(year.StartDate) {
		return validation.New("endDate", "end date must not be before start date")
	}
	if year.RequiredHours <= 0 {
		return validation.New("requiredHours", "required hours must be greater than zero")
	}
	if year.HourlyRateCents < 0 {
		return validation.New("hourlyRate", "hourly rate must not be negative")
	}
	return nil
}
