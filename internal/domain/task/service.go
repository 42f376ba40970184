package task

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"volunteer-tracker-go/internal/domain/category"
	"volunteer-tracker-go/internal/domain/schoolyear"
	"volunteer-tracker-go/internal/domain/user"
	"volunteer-tracker-go/internal/domain/validation"
	"volunteer-tracker-go/pkg/civil"
)

type ActiveYearReader interface {
	Current(ctx context.Context) (*schoolyear.SchoolYear, error)
}

type CategoryReader interface {
	GetActive(ctx context.Context, id string) (*category.Category, error)
}

type Service struct {
	repo       Repository
	years      ActiveYearReader
	categories CategoryReader
	now        func() time.Time
}

func NewService(repo Repository, years ActiveYearReader, categories CategoryReader) *Service {
	return &Service{
		repo:       repo,
		years:      years,
		categories: categories,
		now:        time.Now,
	}
}

// List returns the actor's family tasks for the active school year.
func (s *Service) List(ctx context.Context, actor *user.User) ([]Details, error) {
	familyID, err := familyOf(actor)
	if err != nil {
		return nil, err
	}

	year, err := s.years.Current(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := s.repo.ListByFamilyYear(ctx, familyID, year.ID, 0)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		return []Details{}, nil
	}
	return tasks, nil
}

func (s *Service) Recent(ctx context.Context, familyID, yearID string, limit int) ([]Details, error) {
	tasks, err := s.repo.ListByFamilyYear(ctx, familyID, yearID, limit)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		return []Details{}, nil
	}
	return tasks, nil
}

func (s *Service) TotalHours(ctx context.Context, familyID, yearID string) (float64, error) {
	return s.repo.SumHours(ctx, familyID, yearID)
}

func (s *Service) Create(ctx context.Context, actor *user.User, input Input) (*Details, error) {
	familyID, err := familyOf(actor)
	if err != nil {
		return nil, err
	}

	year, err := s.years.Current(ctx)
	if err != nil {
		return nil, err
	}

	input, err = s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	created := Task{
		ID:           uuid.NewString(),
		FamilyID:     familyID,
		SchoolYearID: year.ID,
		UserID:       actor.ID,
		CategoryID:   input.CategoryID,
		Hours:        input.Hours,
		Date:         input.Date,
		Description:  input.Description,
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.Create(ctx, &created); err != nil {
			return err
		}
		return recomputeTotal(ctx, tx, familyID, year.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetDetails(ctx, created.ID)
}

func (s *Service) Update(ctx context.Context, actor *user.User, id string, input Input) (*Details, error) {
	if actor.Role != user.RoleParent {
		return nil, ErrNotParent
	}

	year, err := s.years.Current(ctx)
	if err != nil {
		return nil, err
	}

	input, err = s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		existing, err := ownedTask(ctx, tx, actor, id, year.ID)
		if err != nil {
			return err
		}

		existing.CategoryID = input.CategoryID
		existing.Hours = input.Hours
		existing.Date = input.Date
		existing.Description = input.Description
		if err := tx.Update(ctx, existing); err != nil {
			return err
		}
		return recomputeTotal(ctx, tx, existing.FamilyID, year.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetDetails(ctx, id)
}

func (s *Service) Delete(ctx context.Context, actor *user.User, id string) error {
	if actor.Role != user.RoleParent {
		return ErrNotParent
	}

	year, err := s.years.Current(ctx)
	if err != nil {
		return err
	}

	return s.repo.Transaction(ctx, func(tx Repository) error {
		existing, err := ownedTask(ctx, tx, actor, id, year.ID)
		if err != nil {
			return err
		}
		if err := tx.Delete(ctx, existing.ID); err != nil {
			return err
		}
		return recomputeTotal(ctx, tx, existing.FamilyID, year.ID)
	})
}

func (s *Service) validate(ctx context.Context, input Input) (Input, error) {
	if err := ValidateHours(input.Hours); err != nil {
		return input, err
	}

	if input.Date.IsZero() {
		return input, validation.New("date", "date is required")
	}
	if input.Date.After(civil.Of(s.now())) {
		return input, validation.New("date", "date cannot be in the future")
	}

	input.CategoryID = strings.TrimSpace(input.CategoryID)
	if input.CategoryID == "" {
		return input, validation.New("categoryId", "category is required")
	}
	if _, err := s.categories.GetActive(ctx, input.CategoryID); err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return input, validation.New("categoryId", "invalid or inactive category")
		}
		return input, err
	}

	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		if trimmed == "" {
			input.Description = nil
		} else {
			input.Description = &trimmed
		}
	}
	return input, nil
}

// maxQuarters keeps hours and their per-family sums exactly representable.
const maxQuarters = math.MaxInt32

// ValidateHours accepts positive multiples of a quarter hour.
func ValidateHours(hours float64) error {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return validation.New("hours", "hours must be positive")
	}
	quarters := hours * 4
	if quarters > maxQuarters {
		return validation.New("hours", "hours is too large")
	}
	if quarters != math.Trunc(quarters) {
		return validation.New("hours", "hours must be in 0.25 increments")
	}
	return nil
}

func familyOf(actor *user.User) (string, error) {
	if actor.Role != user.RoleParent {
		return "", ErrNotParent
	}
	if !actor.HasFamily() {
		return "", ErrNoFamily
	}
	return *actor.FamilyID, nil
}

func ownedTask(ctx context.Context, repo Repository, actor *user.User, id, yearID string) (*Task, error) {
	existing, err := repo.GetInYear(ctx, id, yearID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != actor.ID {
		return nil, ErrNotOwner
	}
	return existing, nil
}

func recomputeTotal(ctx context.Context, repo Repository, familyID, yearID string) error {
	total, err := repo.SumHours(ctx, familyID, yearID)
	if err != nil {
		return err
	}
	return repo.SetFamilyTotal(ctx, familyID, yearID, total)
}
