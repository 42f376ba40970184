package category

import (
	"context"
	"errors"

	"gorm.io/gorm"

	categorydomain "volunteer-tracker-go/internal/domain/category"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) ListActive(ctx context.Context) ([]categorydomain.Category, error) {
	var categories []categorydomain.Category
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormRepository) ListAll(ctx context.Context) ([]categorydomain.Category, error) {
	var categories []categorydomain.Category
	if err := r.db.WithContext(ctx).
		Order("created_at asc, name asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormRepository) GetByID(ctx context.Context, id string) (*categorydomain.Category, error) {
	var category categorydomain.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, categorydomain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormRepository) Create(ctx context.Context, category *categorydomain.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *GormRepository) Update(ctx context.Context, category *categorydomain.Category) error {
	result := r.db.WithContext(ctx).
		Model(&categorydomain.Category{}).
		Where("id = ?", category.ID).
		Updates(map[string]interface{}{
			"name":      category.Name,
			"is_active": category.IsActive,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return categorydomain.ErrCategoryNotFound
	}
	return nil
}
