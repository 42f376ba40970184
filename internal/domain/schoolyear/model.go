package schoolyear

import (
	"time"

	"volunteer-tracker-go/internal/domain/accounting"
	"volunteer-tracker-go/pkg/civil"
)

const (
	DefaultRequiredHours = 50
	DefaultHourlyRate    = accounting.Cents(2000)
)

type SchoolYear struct {
	ID              string           `gorm:"primaryKey"`
	Name            string           `gorm:"not null"`
	StartDate       civil.Date       `gorm:"type:date;not null"`
	EndDate         civil.Date       `gorm:"type:date;not null"`
	RequiredHours   int              `gorm:"not null"`
	HourlyRateCents accounting.Cents `gorm:"column:hourly_rate_cents;not null"`
	IsActive        bool             `gorm:"not null"`
	CreatedAt       time.Time        `gorm:"autoCreateTime"`
}

func (SchoolYear) TableName() string {
	return "school_years"
}

// FamilyYearStatus links a family to a school year and carries its logged hours.
type FamilyYearStatus struct {
	ID           string    `gorm:"primaryKey"`
	FamilyID     string    `gorm:"not null"`
	SchoolYearID string    `gorm:"not null"`
	IsActive     bool      `gorm:"not null"`
	TotalHours   float64   `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (FamilyYearStatus) TableName() string {
	return "family_year_status"
}

type CreateInput struct {
	Name          string
	StartDate     civil.Date
	EndDate       civil.Date
	RequiredHours *int
	HourlyRate    *accounting.Cents
}

type UpdateInput struct {
	Name          *string
	StartDate     *civil.Date
	EndDate       *civil.Date
	RequiredHours *int
	HourlyRate    *accounting.Cents
}

func (in UpdateInput) empty() bool {
	return in.Name == nil && in.StartDate == nil && in.EndDate == nil &&
		in.RequiredHours == nil && in.HourlyRate == nil
}
