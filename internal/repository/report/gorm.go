package report

import (
	"context"

	"gorm.io/gorm"

	reportdomain "volunteer-tracker-go/internal/domain/report"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) FamilyHours(ctx context.Context, yearID string) ([]reportdomain.FamilyHours, error) {
	query := "SELECT f.id AS family_id, f.name AS family_name, COALESCE(SUM(t.hours), 0) AS total_hours, COUNT(t.id) AS task_count " +
		"FROM families f LEFT JOIN tasks t ON t.family_id = f.id AND t.school_year_id = ? " +
		"WHERE f.archived_at IS NULL GROUP BY f.id, f.name ORDER BY f.name"

	var rows []reportdomain.FamilyHours
	if err := r.db.WithContext(ctx).Raw(query, yearID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepository) CategoryHours(ctx context.Context, yearID string) ([]reportdomain.CategoryHours, error) {
	query := "SELECT c.id AS category_id, c.name AS category_name, COALESCE(SUM(t.hours), 0) AS total_hours, COUNT(t.id) AS task_count " +
		"FROM tasks t JOIN task_categories c ON c.id = t.category_id " +
		"WHERE t.school_year_id = ? GROUP BY c.id, c.name ORDER BY total_hours DESC, c.name"

	var rows []reportdomain.CategoryHours
	if err := r.db.WithContext(ctx).Raw(query, yearID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
