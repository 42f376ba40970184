package schoolyear

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	yeardomain "volunteer-tracker-go/internal/domain/schoolyear"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Transaction(ctx context.Context, fn func(yeardomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{db: tx})
	})
}

func (r *GormRepository) GetActive(ctx context.Context) (*yeardomain.SchoolYear, error) {
	var year yeardomain.SchoolYear
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at desc").
		First(&year).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, yeardomain.ErrNoActiveSchoolYear
	}
	if err != nil {
		return nil, err
	}
	return &year, nil
}

func (r *GormRepository) GetByID(ctx context.Context, id string) (*yeardomain.SchoolYear, error) {
	var year yeardomain.SchoolYear
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&year).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, yeardomain.ErrSchoolYearNotFound
	}
	if err != nil {
		return nil, err
	}
	return &year, nil
}

func (r *GormRepository) List(ctx context.Context) ([]yeardomain.SchoolYear, error) {
	var years []yeardomain.SchoolYear
	if err := r.db.WithContext(ctx).
		Order("start_date desc, created_at desc").
		Find(&years).Error; err != nil {
		return nil, err
	}
	return years, nil
}

func (r *GormRepository) Create(ctx context.Context, year *yeardomain.SchoolYear) error {
	return r.db.WithContext(ctx).Create(year).Error
}

func (r *GormRepository) Update(ctx context.Context, year *yeardomain.SchoolYear) error {
	result := r.db.WithContext(ctx).
		Model(&yeardomain.SchoolYear{}).
		Where("id = ?", year.ID).
		Updates(map[string]interface{}{
			"name":              year.Name,
			"start_date":        year.StartDate,
			"end_date":          year.EndDate,
			"required_hours":    year.RequiredHours,
			"hourly_rate_cents": year.HourlyRateCents,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return yeardomain.ErrSchoolYearNotFound
	}
	return nil
}

func (r *GormRepository) DeactivateAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&yeardomain.SchoolYear{}).
		Where("is_active = ?", true).
		Update("is_active", false).Error
}

func (r *GormRepository) MarkActive(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&yeardomain.SchoolYear{}).
		Where("id = ?", id).
		Update("is_active", true)
	return result.RowsAffected > 0, result.Error
}

type familyTotal struct {
	FamilyID string
	Total    float64
}

func (r *GormRepository) BackfillFamilyStatus(ctx context.Context, yearID string) (int64, error) {
	var totals []familyTotal
	if err := r.db.WithContext(ctx).
		Table("families AS f").
		Select("f.id AS family_id, COALESCE(SUM(t.hours), 0) AS total").
		Joins("LEFT JOIN tasks t ON t.family_id = f.id AND t.school_year_id = ?", yearID).
		Where("f.archived_at IS NULL").
		Group("f.id").
		Scan(&totals).Error; err != nil {
		return 0, err
	}
	if len(totals) == 0 {
		return 0, nil
	}

	rows := make([]yeardomain.FamilyYearStatus, 0, len(totals))
	for _, item := range totals {
		rows = append(rows, yeardomain.FamilyYearStatus{
			ID:           uuid.NewString(),
			FamilyID:     item.FamilyID,
			SchoolYearID: yearID,
			IsActive:     true,
			TotalHours:   item.Total,
		})
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "family_id"}, {Name: "school_year_id"}},
			DoNothing: true,
		}).
		Create(&rows)
	return result.RowsAffected, result.Error
}
