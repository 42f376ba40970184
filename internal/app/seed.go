package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"volunteer-tracker-go/internal/domain/category"
	"volunteer-tracker-go/internal/domain/family"
	"volunteer-tracker-go/internal/domain/schoolyear"
	"volunteer-tracker-go/internal/domain/user"
	"volunteer-tracker-go/pkg/civil"
)

const (
	SeedFamilyName = "Sample Family"
	SeedYearID     = "2024-2025"
)

var seedCategories = []string{"Classroom Help", "Event Setup", "Fundraising"}

type SeedOptions struct {
	AdminID    string
	AdminEmail string
}

type SeedResult struct {
	FamilyCreated     bool
	YearActivated     bool
	CategoriesCreated int
}

// Seed loads development data. Running it again changes nothing.
func Seed(ctx context.Context, gormDB *gorm.DB, services *Services, opts SeedOptions) (SeedResult, error) {
	var result SeedResult

	if opts.AdminID == "" {
		opts.AdminID = "admin_1"
	}
	if opts.AdminEmail == "" {
		opts.AdminEmail = "admin@example.com"
	}
	admin := user.User{ID: opts.AdminID, Email: user.NormalizeEmail(opts.AdminEmail), Role: user.RoleAdmin}
	err := gormDB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "role", "updated_at"}),
	}).Create(&admin).Error
	if err != nil {
		return result, fmt.Errorf("seed admin: %w", err)
	}

	year := schoolyear.SchoolYear{
		ID:              SeedYearID,
		Name:            SeedYearID,
		StartDate:       civil.MustParse("2024-08-15"),
		EndDate:         civil.MustParse("2025-06-15"),
		RequiredHours:   schoolyear.DefaultRequiredHours,
		HourlyRateCents: schoolyear.DefaultHourlyRate,
	}
	err = gormDB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&year).Error
	if err != nil {
		return result, fmt.Errorf("seed school year: %w", err)
	}

	if _, err := services.Families.Create(ctx, SeedFamilyName); err == nil {
		result.FamilyCreated = true
	} else if !errors.Is(err, family.ErrDuplicateName) {
		return result, fmt.Errorf("seed family: %w", err)
	}

	if _, err := services.Years.Current(ctx); errors.Is(err, schoolyear.ErrNoActiveSchoolYear) {
		if _, _, err := services.Years.Activate(ctx, SeedYearID); err != nil {
			return result, fmt.Errorf("seed activate year: %w", err)
		}
		result.YearActivated = true
	} else if err != nil {
		return result, fmt.Errorf("seed current year: %w", err)
	}

	existing, err := services.Categories.ListAll(ctx)
	if err != nil {
		return result, fmt.Errorf("seed categories: %w", err)
	}
	known := make(map[string]struct{}, len(existing))
	for _, item := range existing {
		known[strings.ToLower(item.Name)] = struct{}{}
	}
	for _, name := range seedCategories {
		if _, ok := known[strings.ToLower(name)]; ok {
			continue
		}
		if _, err := services.Categories.Create(ctx, category.CreateInput{Name: name}); err != nil {
			return result, fmt.Errorf("seed category %q: %w", name, err)
		}
		result.CategoriesCreated++
	}

	return result, nil
}
