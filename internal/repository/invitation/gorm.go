package invitation

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	invitationdomain "volunteer-tracker-go/internal/domain/invitation"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) List(ctx context.Context) ([]invitationdomain.Details, error) {
	var items []invitationdomain.Details
	if err := r.db.WithContext(ctx).
		Table("invitations AS i").
		Select("i.id, i.email, i.family_id, i.token, i.role, i.expires_at, i.used_at, i.invited_by, i.created_at, f.name AS family_name").
		Joins("LEFT JOIN families f ON f.id = i.family_id").
		Order("i.created_at desc").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepository) GetByID(ctx context.Context, id string) (*invitationdomain.Invitation, error) {
	var item invitationdomain.Invitation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, invitationdomain.ErrInvitationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepository) Create(ctx context.Context, invitation *invitationdomain.Invitation) error {
	return r.db.WithContext(ctx).Create(invitation).Error
}

func (r *GormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&invitationdomain.Invitation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return invitationdomain.ErrInvitationNotFound
	}
	return nil
}

func (r *GormRepository) FindPending(ctx context.Context, email string, now time.Time) (*invitationdomain.Invitation, error) {
	var item invitationdomain.Invitation
	err := r.db.WithContext(ctx).
		Where("lower(email) = lower(?) AND used_at IS NULL AND expires_at > ?", email, now).
		Order("created_at desc").
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepository) MarkUsed(ctx context.Context, id string, usedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&invitationdomain.Invitation{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", usedAt)
	return result.RowsAffected > 0, result.Error
}
