package task

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"volunteer-tracker-go/internal/domain/schoolyear"
	taskdomain "volunteer-tracker-go/internal/domain/task"
)

const detailsColumns = "t.id, t.family_id, t.school_year_id, t.user_id, t.category_id, t.hours, t.date, t.description, t.created_at, t.updated_at, " +
	"c.name AS category_name, u.email AS submitted_by_email"

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Transaction(ctx context.Context, fn func(taskdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{db: tx})
	})
}

func (r *GormRepository) details(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("tasks AS t").
		Select(detailsColumns).
		Joins("LEFT JOIN task_categories c ON c.id = t.category_id").
		Joins("LEFT JOIN users u ON u.id = t.user_id")
}

func (r *GormRepository) ListByFamilyYear(ctx context.Context, familyID, yearID string, limit int) ([]taskdomain.Details, error) {
	query := r.details(ctx).
		Where("t.family_id = ? AND t.school_year_id = ?", familyID, yearID).
		Order("t.date desc, t.created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var tasks []taskdomain.Details
	if err := query.Scan(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormRepository) GetDetails(ctx context.Context, id string) (*taskdomain.Details, error) {
	var tasks []taskdomain.Details
	if err := r.details(ctx).
		Where("t.id = ?", id).
		Limit(1).
		Scan(&tasks).Error; err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, taskdomain.ErrTaskNotFound
	}
	return &tasks[0], nil
}

func (r *GormRepository) GetInYear(ctx context.Context, id, yearID string) (*taskdomain.Task, error) {
	var task taskdomain.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND school_year_id = ?", id, yearID).
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, taskdomain.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *GormRepository) Create(ctx context.Context, task *taskdomain.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *GormRepository) Update(ctx context.Context, task *taskdomain.Task) error {
	result := r.db.WithContext(ctx).
		Model(&taskdomain.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"category_id": task.CategoryID,
			"hours":       task.Hours,
			"date":        task.Date,
			"description": task.Description,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return taskdomain.ErrTaskNotFound
	}
	return nil
}

func (r *GormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&taskdomain.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return taskdomain.ErrTaskNotFound
	}
	return nil
}

func (r *GormRepository) SumHours(ctx context.Context, familyID, yearID string) (float64, error) {
	var total float64
	if err := r.db.WithContext(ctx).
		Model(&taskdomain.Task{}).
		Select("COALESCE(SUM(hours), 0)").
		Where("family_id = ? AND school_year_id = ?", familyID, yearID).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormRepository) SetFamilyTotal(ctx context.Context, familyID, yearID string, total float64) error {
	status := schoolyear.FamilyYearStatus{
		ID:           uuid.NewString(),
		FamilyID:     familyID,
		SchoolYearID: yearID,
		IsActive:     true,
		TotalHours:   total,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "family_id"}, {Name: "school_year_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_hours"}),
		}).
		Create(&status).Error
}
