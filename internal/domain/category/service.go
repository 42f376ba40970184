package category

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"volunteer-tracker-go/internal/domain/validation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListActive returns the categories parents may pick, ordered by name.
func (s *Service) ListActive(ctx context.Context) ([]Category, error) {
	return nonNil(s.repo.ListActive(ctx))
}

// ListAll returns every category in creation order.
func (s *Service) ListAll(ctx context.Context) ([]Category, error) {
	return nonNil(s.repo.ListAll(ctx))
}

// GetActive returns the category only if it can still be used for new work.
func (s *Service) GetActive(ctx context.Context, id string) (*Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, validation.New("name", "name is required")
	}

	category := Category{
		ID:       uuid.NewString(),
		Name:     name,
		IsActive: true,
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := s.repo.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*Category, error) {
	if input.Name == nil && input.IsActive == nil {
		return nil, validation.New("", "no fields to update")
	}

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, validation.New("name", "name must not be empty")
		}
		category.Name = name
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Archive hides the category from parents. Existing tasks keep it.
func (s *Service) Archive(ctx context.Context, id string) (*Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return category, nil
	}

	category.IsActive = false
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func nonNil(categories []Category, err error) ([]Category, error) {
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []Category{}, nil
	}
	return categories, nil
}
