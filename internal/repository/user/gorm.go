package user

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	userdomain "volunteer-tracker-go/internal/domain/user"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) GetByID(ctx context.Context, id string) (*userdomain.User, error) {
	var user userdomain.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, userdomain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepository) GetByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	var user userdomain.User
	err := r.db.WithContext(ctx).
		Where("lower(email) = lower(?)", email).
		Order("created_at asc").
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, userdomain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepository) List(ctx context.Context) ([]userdomain.UserWithFamily, error) {
	var users []userdomain.UserWithFamily
	if err := r.db.WithContext(ctx).
		Table("users AS u").
		Select("u.id, u.email, u.role, u.family_id, u.archived_at, u.created_at, u.updated_at, f.name AS family_name, f.archived_at AS family_archived_at").
		Joins("LEFT JOIN families f ON f.id = u.family_id").
		Order("u.email asc").
		Scan(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormRepository) Create(ctx context.Context, user *userdomain.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return userdomain.ErrDuplicateUser
	}
	return err
}

func (r *GormRepository) UpdateEmail(ctx context.Context, id, email string) error {
	return r.update(ctx, id, map[string]interface{}{"email": email})
}

func (r *GormRepository) UpdateAssignment(ctx context.Context, id string, familyID *string, role userdomain.Role) error {
	return r.update(ctx, id, map[string]interface{}{
		"family_id": familyID,
		"role":      string(role),
	})
}

func (r *GormRepository) SetArchivedAt(ctx context.Context, id string, archivedAt *time.Time) error {
	return r.update(ctx, id, map[string]interface{}{"archived_at": archivedAt})
}

func (r *GormRepository) update(ctx context.Context, id string, values map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&userdomain.User{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return userdomain.ErrUserNotFound
	}
	return nil
}
