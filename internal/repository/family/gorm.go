package family

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	familydomain "volunteer-tracker-go/internal/domain/family"
	"volunteer-tracker-go/internal/domain/schoolyear"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Transaction(ctx context.Context, fn func(familydomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{db: tx})
	})
}

func (r *GormRepository) List(ctx context.Context) ([]familydomain.Family, error) {
	var families []familydomain.Family
	if err := r.db.WithContext(ctx).
		Order("lower(name) asc, created_at asc").
		Find(&families).Error; err != nil {
		return nil, err
	}
	return families, nil
}

func (r *GormRepository) ListMembers(ctx context.Context, familyIDs []string) (map[string][]familydomain.Member, error) {
	result := make(map[string][]familydomain.Member)
	if len(familyIDs) == 0 {
		return result, nil
	}

	var members []familydomain.Member
	if err := r.db.WithContext(ctx).
		Table("users").
		Select("id, family_id, email, role, archived_at").
		Where("family_id IN ?", familyIDs).
		Order("email asc").
		Scan(&members).Error; err != nil {
		return nil, err
	}

	for _, member := range members {
		result[member.FamilyID] = append(result[member.FamilyID], member)
	}
	return result, nil
}

func (r *GormRepository) GetByID(ctx context.Context, id string) (*familydomain.Family, error) {
	var family familydomain.Family
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&family).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, familydomain.ErrFamilyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &family, nil
}

func (r *GormRepository) ActiveNameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&familydomain.Family{}).
		Where("lower(name) = lower(?) AND archived_at IS NULL", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepository) Create(ctx context.Context, family *familydomain.Family) error {
	return mapDuplicate(r.db.WithContext(ctx).Create(family).Error)
}

func (r *GormRepository) UpdateName(ctx context.Context, id, name string) error {
	result := r.db.WithContext(ctx).
		Model(&familydomain.Family{}).
		Where("id = ?", id).
		Update("name", name)
	if result.Error != nil {
		return mapDuplicate(result.Error)
	}
	if result.RowsAffected == 0 {
		return familydomain.ErrFamilyNotFound
	}
	return nil
}

func (r *GormRepository) SetArchivedAt(ctx context.Context, id string, archivedAt *time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&familydomain.Family{}).
		Where("id = ?", id).
		Update("archived_at", archivedAt)
	if result.Error != nil {
		return mapDuplicate(result.Error)
	}
	if result.RowsAffected == 0 {
		return familydomain.ErrFamilyNotFound
	}
	return nil
}

func (r *GormRepository) ArchiveMembers(ctx context.Context, familyID string, archivedAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Table("users").
		Where("family_id = ? AND archived_at IS NULL", familyID).
		Updates(map[string]interface{}{
			"archived_at": archivedAt,
			"updated_at":  archivedAt,
		})
	return result.RowsAffected, result.Error
}

func (r *GormRepository) DetachInvitations(ctx context.Context, familyID string) error {
	return r.db.WithContext(ctx).
		Table("invitations").
		Where("family_id = ? AND used_at IS NULL", familyID).
		Update("family_id", nil).Error
}

func (r *GormRepository) CreateYearStatus(ctx context.Context, status *schoolyear.FamilyYearStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

func mapDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return familydomain.ErrDuplicateName
	}
	return err
}
