package family

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"volunteer-tracker-go/internal/domain/schoolyear"
	"volunteer-tracker-go/internal/domain/validation"
)

type ActiveYearReader interface {
	Current(ctx context.Context) (*schoolyear.SchoolYear, error)
}

type Service struct {
	repo  Repository
	years ActiveYearReader
	now   func() time.Time
}

func NewService(repo Repository, years ActiveYearReader) *Service {
	return &Service{
		repo:  repo,
		years: years,
		now:   time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]FamilyWithMembers, error) {
	families, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(families) == 0 {
		return []FamilyWithMembers{}, nil
	}

	ids := make([]string, 0, len(families))
	for _, family := range families {
		ids = append(ids, family.ID)
	}

	members, err := s.repo.ListMembers(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]FamilyWithMembers, 0, len(families))
	for _, family := range families {
		list := members[family.ID]
		if list == nil {
			list = []Member{}
		}
		result = append(result, FamilyWithMembers{Family: family, Members: list})
	}
	return result, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Family, error) {
	return s.repo.GetByID(ctx, id)
}

// Create adds a family and, when a school year is active, its status row
// for that year in the same transaction.
func (s *Service) Create(ctx context.Context, name string) (*Family, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validation.New("name", "name is required")
	}

	year, err := s.years.Current(ctx)
	if err != nil && !errors.Is(err, schoolyear.ErrNoActiveSchoolYear) {
		return nil, err
	}

	family := Family{
		ID:   uuid.NewString(),
		Name: name,
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		taken, err := tx.ActiveNameTaken(ctx, name, "")
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateName
		}

		if err := tx.Create(ctx, &family); err != nil {
			return err
		}

		if year == nil {
			return nil
		}
		return tx.CreateYearStatus(ctx, &schoolyear.FamilyYearStatus{
			ID:           uuid.NewString(),
			FamilyID:     family.ID,
			SchoolYearID: year.ID,
			IsActive:     true,
			TotalHours:   0,
		})
	})
	if err != nil {
		return nil, duplicateAsValidation(err)
	}
	return &family, nil
}

func (s *Service) Rename(ctx context.Context, id, name string) (*Family, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validation.New("name", "name is required")
	}

	var result *Family
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		family, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}

		taken, err := tx.ActiveNameTaken(ctx, name, id)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateName
		}

		if err := tx.UpdateName(ctx, id, name); err != nil {
			return err
		}
		family.Name = name
		result = family
		return nil
	})
	if err != nil {
		return nil, duplicateAsValidation(err)
	}
	return result, nil
}

// Archive marks the family and every user assigned to it as archived.
func (s *Service) Archive(ctx context.Context, id string) (*Family, int64, error) {
	var (
		result   *Family
		archived int64
	)

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		family, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if family.IsArchived() {
			return ErrAlreadyArchived
		}

		now := s.now().UTC()
		if err := tx.SetArchivedAt(ctx, id, &now); err != nil {
			return err
		}

		archived, err = tx.ArchiveMembers(ctx, id, now)
		if err != nil {
			return err
		}
		if err := tx.DetachInvitations(ctx, id); err != nil {
			return err
		}

		family.ArchivedAt = &now
		result = family
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return result, archived, nil
}

// Restore un-archives the family only. Its users stay archived.
func (s *Service) Restore(ctx context.Context, id string) (*Family, error) {
	var result *Family
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		family, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !family.IsArchived() {
			return ErrNotArchived
		}

		taken, err := tx.ActiveNameTaken(ctx, family.Name, id)
		if err != nil {
			return err
		}
		if taken {
			return ErrRestoreNameTaken
		}

		if err := tx.SetArchivedAt(ctx, id, nil); err != nil {
			return err
		}
		family.ArchivedAt = nil
		result = family
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return nil, ErrRestoreNameTaken
		}
		return nil, err
	}
	return result, nil
}

func duplicateAsValidation(err error) error {
	if errors.Is(err, ErrDuplicateName) {
		return validation.Wrap("name", "a family with this name already exists", ErrDuplicateName)
	}
	return err
}
